// Package http provides the HTTP API server, its middleware and the metrics server.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	auditHTTP "github.com/allisson/cardcheck/internal/audit/http"
	cardHTTP "github.com/allisson/cardcheck/internal/card/http"
	"github.com/allisson/cardcheck/internal/metrics"
)

// ReadinessCheck reports whether a dependency can serve requests.
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// RouterConfig holds the middleware settings of the API router.
type RouterConfig struct {
	CORSEnabled             bool
	CORSAllowOrigins        string
	RateLimitEnabled        bool
	RateLimitRequestsPerSec float64
	RateLimitBurst          int
	MetricsNamespace        string
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	checks []ReadinessCheck
	logger *slog.Logger
}

const (
	apiWriteTimeout     = 30 * time.Second
	metricsWriteTimeout = 15 * time.Second
)

// newHTTPServer applies the read and idle timeouts shared by the API and metrics listeners.
func newHTTPServer(host string, port int, handler http.Handler, writeTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:         net.JoinHostPort(host, strconv.Itoa(port)),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}
}

// NewServer creates a new HTTP server. SetupRouter must be called before Start.
func NewServer(host string, port int, logger *slog.Logger, checks ...ReadinessCheck) *Server {
	return &Server{
		server: newHTTPServer(host, port, nil, apiWriteTimeout),
		checks: checks,
		logger: logger,
	}
}

// SetupRouter builds the API routes and middleware chain. metricsProvider may be nil
// when metrics are disabled. Background work started by middleware stops with ctx.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg RouterConfig,
	cardHandler *cardHTTP.CardHandler,
	auditRecordHandler *auditHTTP.AuditRecordHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	cards := v1.Group("/cards")
	cards.POST("/validate", cardHandler.ValidateHandler)
	cards.POST("/validate-batch", cardHandler.ValidateBatchHandler)

	if auditRecordHandler != nil {
		v1.GET("/audit-records", auditRecordHandler.ListHandler)
	}

	s.router = router
}

// GetHandler returns the configured router, or nil before SetupRouter.
func (s *Server) GetHandler() http.Handler {
	if s.router == nil {
		return nil
	}
	return s.router
}

// Start serves requests until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler runs every readiness check with a short timeout.
func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	ready := true
	components := make(map[string]string, len(s.checks))
	for _, check := range s.checks {
		if err := check.Check(ctx); err != nil {
			ready = false
			components[check.Name] = "error"
			s.logger.Warn("readiness check failed", slog.String("component", check.Name), slog.Any("error", err))
			continue
		}
		components[check.Name] = "ok"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}
