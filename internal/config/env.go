// Package config provides application configuration.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
// Nested structs use underscore delimiter (e.g. CHAT_ENDPOINT_BASE_URL).
type EnvConfig struct {
	// DBPath is the path to the DevDigger SQLite database file.
	// Env: DB_PATH
	// Default: <data home>/devdigger/devdigger.db
	DBPath string `envconfig:"DB_PATH"`

	// Host is the server host to bind to.
	// Env: HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// SearchLimit is the default search result limit.
	// Env: SEARCH_LIMIT (default: 10)
	SearchLimit int `envconfig:"SEARCH_LIMIT" default:"10"`

	// ChatEndpoint configures the OpenAI-compatible chat service used by
	// the ask command.
	ChatEndpoint EndpointEnv `envconfig:"CHAT_ENDPOINT"`
}

// EndpointEnv holds environment configuration for an AI endpoint.
type EndpointEnv struct {
	// BaseURL is the base URL for the endpoint.
	// Env: *_BASE_URL (empty means the provider default)
	BaseURL string `envconfig:"BASE_URL"`

	// Model is the model identifier.
	// Env: *_MODEL (default: gpt-4o-mini)
	Model string `envconfig:"MODEL" default:"gpt-4o-mini"`

	// APIKey is the API key for authentication.
	// Env: *_API_KEY
	APIKey string `envconfig:"API_KEY"`

	// Timeout is the request timeout in seconds.
	// Env: *_TIMEOUT (default: 60)
	Timeout float64 `envconfig:"TIMEOUT" default:"60"`

	// MaxRetries is the maximum number of retries.
	// Env: *_MAX_RETRIES (default: 3)
	MaxRetries int `envconfig:"MAX_RETRIES" default:"3"`
}

// LoadFromEnv reads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts the raw environment values into an AppConfig,
// filling in defaults that depend on the running platform.
func (e EnvConfig) ToAppConfig() AppConfig {
	dbPath := e.DBPath
	if dbPath == "" {
		dbPath = DefaultDatabasePath()
	}

	return AppConfig{
		dbPath:      dbPath,
		host:        e.Host,
		port:        e.Port,
		logLevel:    e.LogLevel,
		logFormat:   parseLogFormat(e.LogFormat),
		searchLimit: e.SearchLimit,
		chat: Endpoint{
			baseURL:    e.ChatEndpoint.BaseURL,
			model:      e.ChatEndpoint.Model,
			apiKey:     e.ChatEndpoint.APIKey,
			timeout:    e.ChatEndpoint.Timeout,
			maxRetries: e.ChatEndpoint.MaxRetries,
		},
	}
}
