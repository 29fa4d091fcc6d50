package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/passgen/internal/config"
	"github.com/allisson/passgen/internal/history"
	"github.com/allisson/passgen/internal/metrics"
	"github.com/allisson/passgen/internal/passwords/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerHost:              "localhost",
		ServerPort:              8080,
		LogLevel:                "info",
		RateLimitEnabled:        true,
		RateLimitRequestsPerSec: 10,
		RateLimitBurst:          20,
		MetricsEnabled:          true,
		MetricsNamespace:        "passgen_test",
		MetricsPort:             8081,
		PasswordMaxRetries:      5000,
		PasswordMaxLength:       128,
		PasswordMaxBatch:        50,
		HistoryFile:             "password_history.txt",
	}
}

func newTestContainer(t *testing.T, cfg *config.Config) *Container {
	t.Helper()
	container := NewContainer(cfg)
	container.SetLogOutput(&bytes.Buffer{})
	t.Cleanup(func() {
		assert.NoError(t, container.Shutdown(context.Background()))
	})
	return container
}

func TestNewContainer(t *testing.T) {
	cfg := testConfig()

	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

func TestContainerLogger(t *testing.T) {
	cfg := testConfig()
	cfg.LogLevel = "warn"
	var buf bytes.Buffer

	container := NewContainer(cfg)
	container.SetLogOutput(&buf)
	logger := container.Logger()

	require.NotNil(t, logger)
	assert.Same(t, logger, container.Logger())

	logger.Info("hidden")
	logger.Warn("visible")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"visible"`)
}

func TestContainerMetrics(t *testing.T) {
	t.Run("Enabled", func(t *testing.T) {
		container := newTestContainer(t, testConfig())

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		require.NotNil(t, provider)

		businessMetrics, err := container.BusinessMetrics()
		require.NoError(t, err)
		assert.NotNil(t, businessMetrics)

		metricsServer, err := container.MetricsServer()
		require.NoError(t, err)
		assert.NotNil(t, metricsServer)
	})

	t.Run("Disabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.MetricsEnabled = false
		container := newTestContainer(t, cfg)

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		assert.Nil(t, provider)

		businessMetrics, err := container.BusinessMetrics()
		require.NoError(t, err)
		assert.IsType(t, &metrics.NoOpBusinessMetrics{}, businessMetrics)

		metricsServer, err := container.MetricsServer()
		require.NoError(t, err)
		assert.Nil(t, metricsServer)
	})
}

func TestContainerHistorySink(t *testing.T) {
	t.Run("DisabledUsesNoOp", func(t *testing.T) {
		container := newTestContainer(t, testConfig())

		sink, err := container.HistorySink()
		require.NoError(t, err)
		assert.IsType(t, &history.NoOpSink{}, sink)
	})

	t.Run("EnabledWritesFile", func(t *testing.T) {
		cfg := testConfig()
		cfg.HistoryEnabled = true
		cfg.HistoryFile = filepath.Join(t.TempDir(), "history.txt")
		container := newTestContainer(t, cfg)

		useCase, err := container.PasswordUseCase()
		require.NoError(t, err)

		result, err := useCase.Generate(context.Background(), domain.DefaultRequest())
		require.NoError(t, err)

		data, err := os.ReadFile(cfg.HistoryFile)
		require.NoError(t, err)
		assert.Equal(t, result.Password+"\n", string(data))
	})

	t.Run("DisableHistoryOverridesConfig", func(t *testing.T) {
		cfg := testConfig()
		cfg.HistoryEnabled = true
		cfg.HistoryFile = filepath.Join(t.TempDir(), "history.txt")
		container := newTestContainer(t, cfg)

		container.DisableHistory()

		sink, err := container.HistorySink()
		require.NoError(t, err)
		assert.IsType(t, &history.NoOpSink{}, sink)
	})

	t.Run("InvalidKeyURI", func(t *testing.T) {
		cfg := testConfig()
		cfg.HistoryEnabled = true
		cfg.HistoryKMSKeyURI = "invalid://uri"
		container := newTestContainer(t, cfg)

		_, err := container.HistorySink()
		require.Error(t, err)

		_, err = container.PasswordUseCase()
		assert.Error(t, err)

		// The error is cached on subsequent calls
		_, err = container.HistorySink()
		assert.Error(t, err)
	})
}

func TestContainerPasswordUseCase(t *testing.T) {
	container := newTestContainer(t, testConfig())

	useCase, err := container.PasswordUseCase()
	require.NoError(t, err)

	useCase2, err := container.PasswordUseCase()
	require.NoError(t, err)
	assert.Same(t, useCase, useCase2)

	results, err := useCase.GenerateBatch(context.Background(), domain.DefaultRequest(), 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)

	provider, err := container.MetricsProvider()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.True(t, strings.Contains(w.Body.String(), "passgen_test_operations_total"))
}

func TestContainerHTTPServer(t *testing.T) {
	container := newTestContainer(t, testConfig())

	server, err := container.HTTPServer()
	require.NoError(t, err)
	require.NotNil(t, server)

	server2, err := container.HTTPServer()
	require.NoError(t, err)
	assert.Same(t, server, server2)
}
