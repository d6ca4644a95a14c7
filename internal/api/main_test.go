package api

import (
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ruhan312/bangalore-connect/internal/config"
	"github.com/ruhan312/bangalore-connect/internal/db"
	"github.com/ruhan312/bangalore-connect/internal/session"
	"github.com/ruhan312/bangalore-connect/pkg/utils"
	"github.com/stretchr/testify/require"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "test-password"
)

func newTestServer(t *testing.T, store db.Store) *Server {
	cfg := config.Config{
		AdminUser:       testAdminUser,
		AdminPassword:   testAdminPassword,
		SessionSecret:   utils.RandomString(32),
		SessionDuration: time.Hour,
		Environment:     "development",
		BaseURL:         "http://localhost:8080",
		ContactEmail:    "test@example.com",
	}

	server, err := NewServer(cfg, store)
	require.NoError(t, err)

	return server
}

// addSessionCookie authenticates the request with a fresh admin session.
func addSessionCookie(t *testing.T, server *Server, request *http.Request) {
	t.Helper()

	sess := server.sessions.Create(time.Now())
	request.AddCookie(&http.Cookie{
		Name:  session.CookieName,
		Value: server.sessions.Token(sess.ID),
	})
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	os.Exit(m.Run())
}
