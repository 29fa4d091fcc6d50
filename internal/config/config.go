// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the API server binds to.
	ServerHost string
	// ServerPort is the port the API server listens on.
	ServerPort int
	// ShutdownTimeout bounds graceful shutdown of the servers.
	ShutdownTimeout time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// RateLimitEnabled enables per-IP rate limiting on the password endpoints.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the sustained request rate allowed per IP.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size allowed per IP.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace prefixes every metric name.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int

	// PasswordMaxRetries is the attempt budget of the policy generator.
	PasswordMaxRetries int
	// PasswordMaxLength is the longest password a caller may request.
	PasswordMaxLength int
	// PasswordMaxBatch is the largest count accepted by batch generation.
	PasswordMaxBatch int

	// HistoryEnabled turns the password history file on.
	HistoryEnabled bool
	// HistoryFile is the path of the history file.
	HistoryFile string
	// HistoryKMSKeyURI, when set, seals every history line with this keeper.
	HistoryKMSKeyURI string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		// Server
		ServerHost:      env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:      env.GetInt("SERVER_PORT", 8080),
		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Rate limiting (IP-based)
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "passgen"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),

		// Password generation
		PasswordMaxRetries: env.GetInt("PASSWORD_MAX_RETRIES", 5000),
		PasswordMaxLength:  env.GetInt("PASSWORD_MAX_LENGTH", 128),
		PasswordMaxBatch:   env.GetInt("PASSWORD_MAX_BATCH", 50),

		// History
		HistoryEnabled:   env.GetBool("HISTORY_ENABLED", false),
		HistoryFile:      env.GetString("HISTORY_FILE", "password_history.txt"),
		HistoryKMSKeyURI: env.GetString("HISTORY_KMS_KEY_URI", ""),
	}
}

// Validate rejects values the application cannot start with.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ServerPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.MetricsPort, validation.When(c.MetricsEnabled,
			validation.Required, validation.Min(1), validation.Max(65535))),
		validation.Field(&c.MetricsNamespace, validation.When(c.MetricsEnabled, validation.Required)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.RateLimitRequestsPerSec, validation.When(c.RateLimitEnabled,
			validation.Required, validation.Min(0.0).Exclusive())),
		validation.Field(&c.RateLimitBurst, validation.When(c.RateLimitEnabled, validation.Required, validation.Min(1))),
		validation.Field(&c.PasswordMaxRetries, validation.Required, validation.Min(1)),
		validation.Field(&c.PasswordMaxLength, validation.Required, validation.Min(12)),
		validation.Field(&c.PasswordMaxBatch, validation.Required, validation.Min(1)),
		validation.Field(&c.HistoryFile, validation.When(c.HistoryEnabled, validation.Required)),
	)
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// loadDotEnv walks from the working directory up to the root and loads the first
// .env file it finds.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
