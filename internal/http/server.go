// Package http provides the API and metrics servers.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/passgen/internal/config"
	"github.com/allisson/passgen/internal/metrics"
	passwordHTTP "github.com/allisson/passgen/internal/passwords/http"
)

// EntropyChecker reports whether the random source can be read. The readiness
// probe uses it.
type EntropyChecker interface {
	Intn(n int) (int, error)
}

// Server is the password API server.
type Server struct {
	server       *http.Server
	router       *gin.Engine
	logger       *slog.Logger
	entropy      EntropyChecker
	shuttingDown atomic.Bool
	stopLimiter  context.CancelFunc
}

// NewServer creates the API server. SetupRouter must be called before Start.
func NewServer(entropy EntropyChecker, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		logger:  logger,
		entropy: entropy,
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// SetupRouter builds the gin engine with middleware and routes.
// metricsProvider may be nil when metrics are disabled.
func (s *Server) SetupRouter(
	cfg *config.Config,
	passwordHandler *passwordHTTP.PasswordHandler,
	metricsProvider *metrics.Provider,
) {
	gin.SetMode(cfg.GetGinMode())

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
	passwords := v1.Group("/passwords")
	if cfg.RateLimitEnabled {
		limiterCtx, cancel := context.WithCancel(context.Background())
		s.stopLimiter = cancel
		passwords.Use(RateLimitMiddleware(limiterCtx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}
	passwords.POST("/generate", passwordHandler.GenerateHandler)
	passwords.POST("/score", passwordHandler.ScoreHandler)

	s.router = router
}

// GetHandler returns the configured router, or nil before SetupRouter.
func (s *Server) GetHandler() http.Handler {
	if s.router == nil {
		return nil
	}
	return s.router
}

// Start serves until Shutdown is called.
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

// Shutdown marks the server as not ready and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	s.shuttingDown.Store(true)
	if s.stopLimiter != nil {
		s.stopLimiter()
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"entropy": "ok"}
	ready := true

	if s.entropy == nil {
		components["entropy"] = "error"
		ready = false
	} else if _, err := s.entropy.Intn(2); err != nil {
		s.logger.Error("entropy source check failed", slog.Any("error", err))
		components["entropy"] = "error"
		ready = false
	}

	if s.shuttingDown.Load() {
		components["server"] = "shutting_down"
		ready = false
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}
