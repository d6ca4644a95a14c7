package api

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/ruhan312/bangalore-connect/internal/db"
	"github.com/ruhan312/bangalore-connect/internal/seo"
	"github.com/ruhan312/bangalore-connect/internal/session"
	"github.com/ruhan312/bangalore-connect/pkg/utils"
)

// loginPage handles the login form. Visiting it always clears any
// existing session first.
func (server *Server) loginPage(c *gin.Context) {
	server.destroySessionFromCookie(c)
	server.clearSessionCookie(c)

	server.renderLogin(c, c.Query("error"), c.Query("redirect"))
}

type loginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	Redirect string `form:"redirect"`
}

// login handles the credential submission.
func (server *Server) login(c *gin.Context) {
	var request loginRequest
	if err := c.ShouldBind(&request); err != nil {
		server.renderLogin(c, "Invalid username or password", c.PostForm("redirect"))
		return
	}

	if !server.loginLimiter.allow(c.ClientIP()) {
		log.Warn().Str("ip", c.ClientIP()).Msg("login rate limit hit")
		server.renderLogin(c, "Too many login attempts. Please try again later.", request.Redirect)
		return
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(request.Username), []byte(server.config.AdminUser)) == 1
	passwordOK := utils.CheckPassword(request.Password, server.adminPasswordHash) == nil
	if !usernameOK || !passwordOK {
		server.renderLogin(c, "Invalid username or password", request.Redirect)
		return
	}

	// a fresh session identity on every login, so a pre-login id can
	// never be promoted
	oldID := ""
	if token, err := c.Cookie(session.CookieName); err == nil {
		if id, ok := server.sessions.ParseToken(token); ok {
			oldID = id
		}
	}
	sess := server.sessions.Regenerate(oldID, time.Now())

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		session.CookieName,
		server.sessions.Token(sess.ID),
		int(server.config.SessionDuration.Seconds()),
		"/",
		"",
		server.config.IsProduction(),
		true,
	)

	c.Redirect(http.StatusFound, safeRedirectTarget(request.Redirect))
}

// logout destroys the session and clears the cookie.
func (server *Server) logout(c *gin.Context) {
	server.destroySessionFromCookie(c)
	server.clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}

// dashboard handles the admin overview: summary counts, the full job
// list and any one-shot flash message from the query string.
func (server *Server) dashboard(c *gin.Context) {
	jobs := server.store.All()

	itJobs := 0
	nonItJobs := 0
	featuredJobs := 0
	for _, job := range jobs {
		switch job.Type {
		case "IT":
			itJobs++
		case "Non-IT":
			nonItJobs++
		}
		if job.Featured {
			featuredJobs++
		}
	}

	c.HTML(http.StatusOK, "dashboard.tmpl", gin.H{
		"meta":         seo.Dashboard,
		"canonical":    server.baseURL() + "/dashboard",
		"jobs":         jobs,
		"totalJobs":    len(jobs),
		"itJobs":       itJobs,
		"nonItJobs":    nonItJobs,
		"featuredJobs": featuredJobs,
		"experiences":  db.ExperienceLevels,
		"locations":    db.Locations,
		"success":      c.Query("success"),
		"error":        c.Query("error"),
		"contactEmail": server.config.ContactEmail,
	})
}

func (server *Server) renderLogin(c *gin.Context, errorMessage, redirect string) {
	if redirect == "" {
		redirect = "/dashboard"
	}

	c.HTML(http.StatusOK, "admin-login.tmpl", gin.H{
		"meta":         seo.AdminLogin,
		"canonical":    server.baseURL() + "/admin",
		"error":        errorMessage,
		"redirect":     redirect,
		"contactEmail": server.config.ContactEmail,
	})
}

// destroySessionFromCookie drops the server-side session the request's
// cookie points at, if any.
func (server *Server) destroySessionFromCookie(c *gin.Context) {
	token, err := c.Cookie(session.CookieName)
	if err != nil {
		return
	}
	if id, ok := server.sessions.ParseToken(token); ok {
		server.sessions.Destroy(id)
	}
}

// safeRedirectTarget keeps post-login redirects on this site.
func safeRedirectTarget(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/dashboard"
	}
	return target
}
