// ABOUTME: HTTP server setup: router, middleware stack and graceful shutdown
// ABOUTME: Wires the fragment handlers onto a gin engine

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cs-embed-api/api/handlers"
	"cs-embed-api/api/middleware"
	"cs-embed-api/core/interfaces"
	"cs-embed-api/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Server wraps the HTTP server with lifecycle management.
type Server struct {
	server *http.Server
	logger interfaces.Logger
}

// NewServer builds the router and middleware stack. Fragments are public and
// read-only, so CORS allows any origin for GET.
func NewServer(cfg config.ServerConfig, deps interfaces.Dependencies) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging(deps.Logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Accept"},
		MaxAge:       12 * time.Hour,
	}))
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	if cfg.RateLimitPerSecond > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
		router.Use(middleware.RateLimit(limiter))
	}

	fragments := handlers.NewFragmentHandler(deps)
	router.GET("/fragments/:name", fragments.Render)
	router.GET("/health", handlers.Health)

	return &Server{
		server: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: deps.Logger,
	}
}

// Start runs the server until it is shut down. http.ErrServerClosed is the
// normal shutdown signal, not an error.
func (s *Server) Start() error {
	s.logger.Info("starting server", map[string]interface{}{
		"address": s.server.Addr,
	})
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server", nil)
	return s.server.Shutdown(ctx)
}
