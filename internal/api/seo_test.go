package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/golang/mock/gomock"
	mockdb "github.com/ruhan312/bangalore-connect/internal/db/mock"
	"github.com/ruhan312/bangalore-connect/internal/seo"
	"github.com/stretchr/testify/require"
)

func TestSitemapAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().All().Times(1).Return(generateJobs(2))

	server := newTestServer(t, store)

	request, err := http.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Header().Get("Content-Type"), "application/xml")

	body := recorder.Body.String()
	require.Contains(t, body, "<loc>http://localhost:8080/</loc>")
	require.Contains(t, body, "<loc>http://localhost:8080/job/1</loc>")
	require.Contains(t, body, "<loc>http://localhost:8080/job/2</loc>")
	require.Contains(t, body, "<loc>http://localhost:8080/blog</loc>")
}

func TestRobotsAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := newTestServer(t, mockdb.NewMockStore(ctrl))

	request, err := http.NewRequest(http.MethodGet, "/robots.txt", nil)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Header().Get("Content-Type"), "text/plain")

	body := recorder.Body.String()
	require.Contains(t, body, "Disallow: /admin")
	require.Contains(t, body, "Sitemap: http://localhost:8080/sitemap.xml")
}

func TestResourcePagesAPI(t *testing.T) {
	for _, page := range seo.ResourcePages {
		page := page
		t.Run(page.Path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			server := newTestServer(t, mockdb.NewMockStore(ctrl))

			request, err := http.NewRequest(http.MethodGet, "/"+page.Path, nil)
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			server.router.ServeHTTP(recorder, request)

			require.Equal(t, http.StatusOK, recorder.Code)

			doc, err := goquery.NewDocumentFromReader(recorder.Body)
			require.NoError(t, err)
			require.Equal(t, page.Meta.Title, doc.Find("title").Text())
		})
	}
}

func TestUnknownRouteRenders404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := newTestServer(t, mockdb.NewMockStore(ctrl))

	request, err := http.NewRequest(http.MethodGet, "/no-such-page", nil)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusNotFound, recorder.Code)

	doc, err := goquery.NewDocumentFromReader(recorder.Body)
	require.NoError(t, err)
	require.Equal(t, "Page Not Found", doc.Find("main h1").Text())
}
