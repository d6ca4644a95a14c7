package api

import (
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/ruhan312/bangalore-connect/internal/seo"
	"github.com/ruhan312/bangalore-connect/internal/session"
	"golang.org/x/time/rate"
)

// requestLogger logs every request with zerolog.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// recovery turns a handler panic into the generic error page. Production
// mode hides the panic message.
func (server *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Error().Interface("error", err).Str("path", c.Request.URL.Path).Msg("handler panicked")

		message := "Something went wrong! Please try again later."
		if !server.config.IsProduction() {
			message = fmt.Sprint(err)
		}

		c.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{
			"meta":         seo.ServerError,
			"message":      message,
			"canonical":    server.baseURL(),
			"contactEmail": server.config.ContactEmail,
		})
	})
}

// requireAuth gates the admin routes. A missing, forged or expired session
// is destroyed and the browser is redirected to the login page with the
// original URL as the return target.
func (server *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err == nil {
			if id, ok := server.sessions.ParseToken(token); ok {
				if _, valid := server.sessions.Validate(id, time.Now()); valid {
					c.Next()
					return
				}
				server.sessions.Destroy(id)
			}
		}

		server.clearSessionCookie(c)
		c.Redirect(http.StatusFound, "/admin?redirect="+url.QueryEscape(c.Request.URL.RequestURI()))
		c.Abort()
	}
}

// clearSessionCookie expires the session cookie on the client.
func (server *Server) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, "", -1, "/", "", server.config.IsProduction(), true)
}

// loginLimiter throttles credential checks per client IP.
type loginLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newLoginLimiter() *loginLimiter {
	return &loginLimiter{
		limiters: make(map[string]*rate.Limiter),
	}
}

// allow reports whether the client may attempt a login right now.
// Each IP gets a small burst refilled at one attempt per 10 seconds.
func (l *loginLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(10*time.Second), 5)
		l.limiters[ip] = limiter
	}
	return limiter.Allow()
}
