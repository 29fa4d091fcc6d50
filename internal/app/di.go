// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/passgen/internal/config"
	"github.com/allisson/passgen/internal/history"
	"github.com/allisson/passgen/internal/http"
	"github.com/allisson/passgen/internal/metrics"
	passwordHTTP "github.com/allisson/passgen/internal/passwords/http"
	passwordService "github.com/allisson/passgen/internal/passwords/service"
	passwordUseCase "github.com/allisson/passgen/internal/passwords/usecase"
)

// Container holds all application dependencies. Components are created on first
// access and cached.
type Container struct {
	config    *config.Config
	logOutput io.Writer

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	historySink     history.Sink
	randomSource    passwordService.RandomSource

	// Use cases and handlers
	passwordUseCase passwordUseCase.PasswordUseCase
	passwordHandler *passwordHTTP.PasswordHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	mu                  sync.Mutex
	loggerInit          sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	historySinkInit     sync.Once
	randomSourceInit    sync.Once
	passwordUseCaseInit sync.Once
	passwordHandlerInit sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		logOutput:  os.Stdout,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// SetLogOutput redirects the logger. It only has an effect before the first call to Logger.
func (c *Container) SetLogOutput(w io.Writer) {
	c.logOutput = w
}

// Logger returns the JSON logger configured for LOG_LEVEL.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. It is a no-op when
// metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// HistorySink returns the password history sink.
func (c *Container) HistorySink() (history.Sink, error) {
	var err error
	c.historySinkInit.Do(func() {
		c.historySink, err = c.initHistorySink()
		if err != nil {
			c.initErrors["historySink"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["historySink"]; exists {
		return nil, storedErr
	}
	return c.historySink, nil
}

// DisableHistory replaces the history sink with a no-op. It only has an effect
// before the first call to HistorySink.
func (c *Container) DisableHistory() {
	c.historySinkInit.Do(func() {
		c.historySink = history.NewNoOpSink()
	})
}

// RandomSource returns the crypto/rand backed random source.
func (c *Container) RandomSource() passwordService.RandomSource {
	c.randomSourceInit.Do(func() {
		c.randomSource = passwordService.NewCryptoSource()
	})
	return c.randomSource
}

// PasswordUseCase returns the password use case, decorated with metrics when enabled.
func (c *Container) PasswordUseCase() (passwordUseCase.PasswordUseCase, error) {
	var err error
	c.passwordUseCaseInit.Do(func() {
		c.passwordUseCase, err = c.initPasswordUseCase()
		if err != nil {
			c.initErrors["passwordUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["passwordUseCase"]; exists {
		return nil, storedErr
	}
	return c.passwordUseCase, nil
}

// PasswordHandler returns the password HTTP handler.
func (c *Container) PasswordHandler() (*passwordHTTP.PasswordHandler, error) {
	var err error
	c.passwordHandlerInit.Do(func() {
		c.passwordHandler, err = c.initPasswordHandler()
		if err != nil {
			c.initErrors["passwordHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["passwordHandler"]; exists {
		return nil, storedErr
	}
	return c.passwordHandler, nil
}

// HTTPServer returns the API server with its router configured.
func (c *Container) HTTPServer() (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown releases every initialized resource. Servers are stopped first so
// in-flight requests can still record metrics and history.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.historySink != nil {
		if err := c.historySink.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("history sink close: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(c.logOutput, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

func (c *Container) initHistorySink() (history.Sink, error) {
	if !c.config.HistoryEnabled {
		return history.NewNoOpSink(), nil
	}

	sink, err := history.OpenFileSink(context.Background(), c.config.HistoryFile, c.config.HistoryKMSKeyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open history sink: %w", err)
	}
	return sink, nil
}

func (c *Container) initPasswordUseCase() (passwordUseCase.PasswordUseCase, error) {
	historySink, err := c.HistorySink()
	if err != nil {
		return nil, fmt.Errorf("failed to get history sink for password use case: %w", err)
	}

	useCase := passwordUseCase.NewPasswordUseCase(
		passwordUseCase.Config{
			MaxLength:    c.config.PasswordMaxLength,
			MaxBatchSize: c.config.PasswordMaxBatch,
			MaxAttempts:  c.config.PasswordMaxRetries,
		},
		c.RandomSource(),
		passwordService.NewStrengthEstimator(),
		historySink,
		c.Logger(),
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for password use case: %w", err)
		}
		return passwordUseCase.NewPasswordUseCaseWithMetrics(useCase, businessMetrics), nil
	}

	return useCase, nil
}

func (c *Container) initPasswordHandler() (*passwordHTTP.PasswordHandler, error) {
	useCase, err := c.PasswordUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get password use case for password handler: %w", err)
	}
	return passwordHTTP.NewPasswordHandler(useCase, c.Logger()), nil
}

func (c *Container) initHTTPServer() (*http.Server, error) {
	handler, err := c.PasswordHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get password handler for http server: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(c.RandomSource(), c.config.ServerHost, c.config.ServerPort, c.Logger())
	server.SetupRouter(c.config, handler, provider)

	return server, nil
}

func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}
	if provider == nil {
		return nil, nil
	}

	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
}
