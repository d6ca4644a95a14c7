package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ruhan312/bangalore-connect/internal/seo"
)

// sitemap serves sitemap.xml built from the current job collection.
func (server *Server) sitemap(c *gin.Context) {
	body := seo.Sitemap(server.baseURL(), server.store.All(), time.Now())
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(body))
}

// robots serves robots.txt.
func (server *Server) robots(c *gin.Context) {
	body := seo.Robots(server.baseURL(), server.config.ContactEmail)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}
