package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ruhan312/bangalore-connect/internal/seo"
)

// renderResourcePage renders one of the static content pages.
func (server *Server) renderResourcePage(c *gin.Context, page seo.Page) {
	c.HTML(http.StatusOK, "page.tmpl", gin.H{
		"meta":         page.Meta,
		"canonical":    server.baseURL() + "/" + page.Path,
		"contactEmail": server.config.ContactEmail,
	})
}

// notFound renders the 404 page for unknown routes.
func (server *Server) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.tmpl", gin.H{
		"meta":         seo.NotFound,
		"canonical":    server.baseURL() + c.Request.URL.Path,
		"contactEmail": server.config.ContactEmail,
	})
}
