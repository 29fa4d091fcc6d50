// Package integration provides end-to-end tests for the password API. Requests go
// through the fully wired container: router, rate limiter, use case, metrics and
// the sealed history file.
package integration

import (
	"bufio"
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/passgen/internal/app"
	"github.com/allisson/passgen/internal/config"
	"github.com/allisson/passgen/internal/history"
	"github.com/allisson/passgen/internal/httputil"
	"github.com/allisson/passgen/internal/passwords/http/dto"
)

// integrationTestContext holds all dependencies and state for integration testing.
type integrationTestContext struct {
	container   *app.Container
	server      *httptest.Server
	historyFile string
	keyURI      string
}

// makeRequest performs an HTTP request and returns the response and body.
func (ctx *integrationTestContext) makeRequest(
	t *testing.T,
	method, path string,
	body any,
) (*http.Response, []byte) {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, ctx.server.URL+path, bodyReader)
	require.NoError(t, err, "failed to create request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	//nolint:gosec // controlled test environment with localhost URLs
	resp, err := client.Do(req)
	require.NoError(t, err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	if closeErr := resp.Body.Close(); closeErr != nil {
		t.Logf("Warning: failed to close response body: %v", closeErr)
	}

	return resp, respBody
}

// generateKeyURI creates an ephemeral localsecrets keeper URI.
func generateKeyURI(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err, "failed to generate history key")
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

// setupIntegrationTest initializes all components for integration testing.
func setupIntegrationTest(t *testing.T) *integrationTestContext {
	t.Helper()

	gin.SetMode(gin.TestMode)

	historyFile := filepath.Join(t.TempDir(), "history.txt")
	keyURI := generateKeyURI(t)

	cfg := &config.Config{
		ServerHost:              "localhost",
		ServerPort:              8080,
		ShutdownTimeout:         5 * time.Second,
		LogLevel:                "error",
		RateLimitEnabled:        true,
		RateLimitRequestsPerSec: 1000,
		RateLimitBurst:          1000,
		MetricsEnabled:          true,
		MetricsNamespace:        "passgen_it",
		MetricsPort:             8081,
		PasswordMaxRetries:      5000,
		PasswordMaxLength:       128,
		PasswordMaxBatch:        50,
		HistoryEnabled:          true,
		HistoryFile:             historyFile,
		HistoryKMSKeyURI:        keyURI,
	}
	require.NoError(t, cfg.Validate())

	container := app.NewContainer(cfg)
	container.SetLogOutput(io.Discard)

	httpSrv, err := container.HTTPServer()
	require.NoError(t, err, "failed to get HTTP server")

	handler := httpSrv.GetHandler()
	require.NotNil(t, handler, "handler should not be nil after SetupRouter")

	return &integrationTestContext{
		container:   container,
		server:      httptest.NewServer(handler),
		historyFile: historyFile,
		keyURI:      keyURI,
	}
}

// teardownIntegrationTest cleans up all resources.
func teardownIntegrationTest(t *testing.T, ctx *integrationTestContext) {
	t.Helper()

	if ctx.server != nil {
		ctx.server.Close()
	}

	if ctx.container != nil {
		if err := ctx.container.Shutdown(context.Background()); err != nil {
			t.Logf("Warning: container shutdown error: %v", err)
		}
	}
}

// readHistory decrypts every history line with the test keeper.
func readHistory(t *testing.T, ctx *integrationTestContext) []string {
	t.Helper()

	keeper, err := history.OpenKeeper(context.Background(), ctx.keyURI)
	require.NoError(t, err)
	defer func() { _ = keeper.Close() }()

	f, err := os.Open(ctx.historyFile)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	var passwords []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		sealed, err := base64.StdEncoding.DecodeString(scanner.Text())
		require.NoError(t, err)
		plain, err := keeper.Decrypt(context.Background(), sealed)
		require.NoError(t, err)
		passwords = append(passwords, string(plain))
	}
	require.NoError(t, scanner.Err())
	return passwords
}

func TestIntegration_PasswordAPI(t *testing.T) {
	ctx := setupIntegrationTest(t)
	defer teardownIntegrationTest(t, ctx)

	var generated []string

	t.Run("01_Health", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "healthy")
	})

	t.Run("02_Ready", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodGet, "/ready", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "ready")
	})

	t.Run("03_GenerateDefault", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/passwords/generate", map[string]any{})
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

		var response dto.GenerateResponse
		require.NoError(t, json.Unmarshal(body, &response))
		require.Len(t, response.Passwords, 1)

		password := response.Passwords[0]
		assert.Len(t, []rune(password.Password), 16)
		assert.Equal(t, "policy", password.Mode)
		assert.Contains(t, []string{"strong", "very_strong"}, password.Strength)
		generated = append(generated, password.Password)
	})

	t.Run("04_GenerateBatchPronounceable", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/passwords/generate", map[string]any{
			"length": 9,
			"mode":   "pronounceable",
			"count":  3,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

		var response dto.GenerateResponse
		require.NoError(t, json.Unmarshal(body, &response))
		require.Len(t, response.Passwords, 3)
		for _, p := range response.Passwords {
			assert.Len(t, p.Password, 9)
			assert.Equal(t, strings.ToLower(p.Password), p.Password)
			generated = append(generated, p.Password)
		}
	})

	t.Run("05_GenerateTooShort", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/passwords/generate", map[string]any{
			"length": 8,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		var response httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &response))
		assert.Equal(t, "invalid_input", response.Error)
		assert.Contains(t, response.Message, "at least 12")
	})

	t.Run("06_GenerateNoClasses", func(t *testing.T) {
		resp, _ := ctx.makeRequest(t, http.MethodPost, "/v1/passwords/generate", map[string]any{
			"include_upper":   false,
			"include_lower":   false,
			"include_digits":  false,
			"include_symbols": false,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("07_Score", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/passwords/score", map[string]any{
			"password": "Xq7#mPz2!kLwR4$b",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

		var response dto.ScoreResponse
		require.NoError(t, json.Unmarshal(body, &response))
		assert.Equal(t, 80, response.Score)
		assert.Equal(t, "very_strong", response.Strength)
		assert.Equal(t, []string{"upper", "lower", "digit", "symbol"}, response.Classes)
	})

	t.Run("08_ScoreMissingPassword", func(t *testing.T) {
		resp, _ := ctx.makeRequest(t, http.MethodPost, "/v1/passwords/score", map[string]any{})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("09_HistoryIsSealed", func(t *testing.T) {
		raw, err := os.ReadFile(ctx.historyFile)
		require.NoError(t, err)
		for _, password := range generated {
			assert.NotContains(t, string(raw), password)
		}

		// batch members are generated concurrently, so only the set is stable
		assert.ElementsMatch(t, generated, readHistory(t, ctx))
	})

	t.Run("10_Metrics", func(t *testing.T) {
		provider, err := ctx.container.MetricsProvider()
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		provider.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		output := rec.Body.String()
		assert.Contains(t, output, "passgen_it_operations_total")
		assert.Contains(t, output, `operation="generate"`)
		assert.Contains(t, output, "passgen_it_http_requests_total")
	})
}
