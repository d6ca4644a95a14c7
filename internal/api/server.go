package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ruhan312/bangalore-connect/internal/config"
	"github.com/ruhan312/bangalore-connect/internal/db"
	"github.com/ruhan312/bangalore-connect/internal/seo"
	"github.com/ruhan312/bangalore-connect/internal/session"
	"github.com/ruhan312/bangalore-connect/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// Server serves the HTTP pages of the job portal
type Server struct {
	config            config.Config
	store             db.Store
	sessions          *session.Manager
	router            *gin.Engine
	adminPasswordHash string
	loginLimiter      *loginLimiter
	startedAt         time.Time
}

// NewServer creates a new HTTP server and setups routing
func NewServer(cfg config.Config, store db.Store) (*Server, error) {
	// the admin password is configured in plain text; hash it once so the
	// login path only ever compares against the hash
	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("cannot hash admin password: %w", err)
	}

	server := &Server{
		config:            cfg,
		store:             store,
		sessions:          session.NewManager(cfg.SessionSecret, cfg.SessionDuration),
		adminPasswordHash: hash,
		loginLimiter:      newLoginLimiter(),
		startedAt:         time.Now(),
	}

	server.setupRouter()

	return server, nil
}

// setupRouter sets up the HTTP routing
func (server *Server) setupRouter() {
	if server.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(requestLogger(), server.recovery())

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	router.Use(cors.New(corsConfig))

	router.SetHTMLTemplate(loadTemplates())
	router.Static("/static", "./public")

	// === public pages ===
	router.GET("/", server.listJobs)
	router.GET("/job/:id", server.getJob)
	router.GET("/health", server.healthCheck)

	// === admin ===
	router.GET("/admin", server.loginPage)
	router.POST("/admin", server.login)
	router.GET("/logout", server.logout)

	// ===== routes that require an authenticated admin session =====
	authRoutes := router.Group("/").Use(server.requireAuth())

	authRoutes.GET("/dashboard", server.dashboard)
	authRoutes.GET("/post-job", server.createJobForm)
	authRoutes.POST("/post-job", server.createJob)
	authRoutes.GET("/delete-job/:id", server.deleteJob)

	// === resource pages ===
	for _, page := range seo.ResourcePages {
		page := page
		router.GET("/"+page.Path, func(c *gin.Context) {
			server.renderResourcePage(c, page)
		})
	}

	// === crawler files ===
	router.GET("/sitemap.xml", server.sitemap)
	router.GET("/robots.txt", server.robots)

	router.NoRoute(server.notFound)

	server.router = router
}

// Start runs the HTTP server on the given address until ctx is cancelled,
// then drains in-flight requests.
func (server *Server) Start(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:    address,
		Handler: server.router,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// baseURL is the canonical origin used in SEO output.
func (server *Server) baseURL() string {
	return server.config.BaseURL
}
