// Package config provides centralized configuration management for elc.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import "time"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Source   SourceConfig
	Cache    CacheConfig
	Ingest   IngestConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings for "elc serve".
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// SourceConfig holds settings for downloading published result files.
type SourceConfig struct {
	// BaseURL is the results host (default: https://results.aec.gov.au)
	BaseURL string `env:"SOURCE_BASE_URL" default:"https://results.aec.gov.au"`

	// Timeout bounds a single HTTP request (default: 30s)
	Timeout time.Duration `env:"SOURCE_TIMEOUT" default:"30s"`

	// Retries is how many times a failed request is retried (default: 2)
	Retries int `env:"SOURCE_RETRIES" default:"2"`

	// RetryWait is the initial backoff between retries (default: 500ms)
	RetryWait time.Duration `env:"SOURCE_RETRY_WAIT" default:"500ms"`

	// UserAgent is sent with every request
	UserAgent string `env:"SOURCE_USER_AGENT" default:"elc/1.0"`

	// MaxConcurrent is the maximum number of parallel downloads (default: 3)
	MaxConcurrent int `env:"SOURCE_MAX_CONCURRENT" default:"3"`

	// MaxWaitTime is how long a download waits for a slot (default: 2m)
	MaxWaitTime time.Duration `env:"SOURCE_MAX_WAIT_TIME" default:"2m"`
}

// Cache backends.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// CacheConfig holds settings for the decoded-dataset cache.
type CacheConfig struct {
	// Backend selects storage: file, postgres or sqlite (default: file)
	Backend string `env:"CACHE_BACKEND" default:"file"`

	// Dir holds one JSON file per year for the file backend (default: cache)
	Dir string `env:"CACHE_DIR" default:"cache"`

	// DatabaseURL is the PostgreSQL connection string, required for the postgres backend.
	// Supports both DATABASE_URL and DB_URL env vars for compatibility
	DatabaseURL string `env:"DATABASE_URL" envAlt:"DB_URL"`

	// MaxConns is the maximum number of connections in the pool (default: 4)
	MaxConns int `env:"DB_MAX_CONNS" default:"4"`

	// MinConns is the minimum number of connections to keep open (default: 0)
	MinConns int `env:"DB_MIN_CONNS" default:"0"`

	// MaxConnLifetime is the maximum lifetime of a connection (default: 1h)
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" default:"1h"`

	// MaxConnIdleTime is the maximum idle time before a connection is closed (default: 30m)
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`

	// SQLitePath is the database file for the sqlite backend (default: cache/elc.db)
	SQLitePath string `env:"CACHE_SQLITE_PATH" default:"cache/elc.db"`
}

// IngestConfig holds decode settings.
type IngestConfig struct {
	// Workers bounds concurrent group decodes per file; 0 uses GOMAXPROCS
	Workers int `env:"INGEST_WORKERS" default:"0"`

	// ElectionsFile is an optional YAML list of elections replacing the built-in table
	ElectionsFile string `env:"ELECTIONS_FILE"`

	// Timeout bounds a whole load run (default: 10m)
	Timeout time.Duration `env:"INGEST_TIMEOUT" default:"10m"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// APIKeys is a comma-separated list of keys accepted by the API
	APIKeys []string `env:"API_KEYS"`

	// RequireAPIKey rejects API requests without a valid key (default: false)
	RequireAPIKey bool `env:"REQUIRE_API_KEY" default:"false"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`

	// File receives a copy of all log output; "-" disables it (default: elc.log)
	File string `env:"LOG_FILE" default:"elc.log"`
}

// FilePath returns the log file path, or "" when file logging is disabled.
func (c *LoggingConfig) FilePath() string {
	if c.File == "-" {
		return ""
	}
	return c.File
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	if c.Host == "" {
		return ":" + itoa(c.Port)
	}
	return c.Host + ":" + itoa(c.Port)
}

// itoa converts an int to string without importing strconv in this file.
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var b [20]byte
	n := len(b)
	neg := i < 0
	if neg {
		i = -i
	}
	for i > 0 {
		n--
		b[n] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		n--
		b[n] = '-'
	}
	return string(b[n:])
}
