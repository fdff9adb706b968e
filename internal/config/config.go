package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 8080
	DefaultLogLevel    = "INFO"
	DefaultSearchLimit = 10
	DefaultChatModel   = "gpt-4o-mini"
)

// appDirName is the crawler's application-support directory name. The
// crawler writes its database there; digkit only reads it.
const appDirName = "devdigger"

// databaseFileName is the crawler's database file name.
const databaseFileName = "devdigger.db"

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

func parseLogFormat(s string) LogFormat {
	if strings.EqualFold(s, string(LogFormatJSON)) {
		return LogFormatJSON
	}
	return LogFormatPretty
}

// DefaultDatabasePath returns the platform application-support location of
// the crawler database: ~/Library/Application Support/devdigger/devdigger.db
// on macOS, the XDG data home equivalent elsewhere.
func DefaultDatabasePath() string {
	return filepath.Join(xdg.DataHome, appDirName, databaseFileName)
}

// Endpoint configures an OpenAI-compatible chat endpoint.
type Endpoint struct {
	baseURL    string
	model      string
	apiKey     string
	timeout    float64
	maxRetries int
}

// EndpointOption is a functional option for NewEndpoint.
type EndpointOption func(*Endpoint)

// WithBaseURL sets the endpoint base URL.
func WithBaseURL(url string) EndpointOption {
	return func(e *Endpoint) { e.baseURL = url }
}

// WithModel sets the chat model.
func WithModel(model string) EndpointOption {
	return func(e *Endpoint) { e.model = model }
}

// WithAPIKey sets the API key.
func WithAPIKey(key string) EndpointOption {
	return func(e *Endpoint) { e.apiKey = key }
}

// WithTimeout sets the request timeout in seconds.
func WithTimeout(seconds float64) EndpointOption {
	return func(e *Endpoint) { e.timeout = seconds }
}

// WithMaxRetries sets the maximum retry count.
func WithMaxRetries(n int) EndpointOption {
	return func(e *Endpoint) { e.maxRetries = n }
}

// NewEndpoint creates an Endpoint with defaults overridden by options.
func NewEndpoint(opts ...EndpointOption) Endpoint {
	e := Endpoint{model: DefaultChatModel, timeout: 60, maxRetries: 3}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// BaseURL returns the base URL, empty for the provider default.
func (e Endpoint) BaseURL() string { return e.baseURL }

// Model returns the model identifier.
func (e Endpoint) Model() string { return e.model }

// APIKey returns the API key.
func (e Endpoint) APIKey() string { return e.apiKey }

// Timeout returns the request timeout.
func (e Endpoint) Timeout() time.Duration {
	return time.Duration(e.timeout * float64(time.Second))
}

// MaxRetries returns the maximum retry count.
func (e Endpoint) MaxRetries() int { return e.maxRetries }

// Configured reports whether the endpoint has an API key set.
func (e Endpoint) Configured() bool { return e.apiKey != "" }

// AppConfig is the resolved application configuration.
type AppConfig struct {
	dbPath      string
	host        string
	port        int
	logLevel    string
	logFormat   LogFormat
	searchLimit int
	chat        Endpoint
}

// NewAppConfig creates an AppConfig with defaults, for tests and library
// callers that bypass the environment.
func NewAppConfig() AppConfig {
	return AppConfig{
		dbPath:      DefaultDatabasePath(),
		host:        DefaultHost,
		port:        DefaultPort,
		logLevel:    DefaultLogLevel,
		logFormat:   LogFormatPretty,
		searchLimit: DefaultSearchLimit,
		chat:        Endpoint{model: DefaultChatModel, timeout: 60, maxRetries: 3},
	}
}

// DBPath returns the database file path.
func (c AppConfig) DBPath() string { return c.dbPath }

// Host returns the server bind host.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port.
func (c AppConfig) Port() int { return c.port }

// Addr returns the host:port address for the HTTP server.
func (c AppConfig) Addr() string { return fmt.Sprintf("%s:%d", c.host, c.port) }

// LogLevel returns the log verbosity level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log output format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// SearchLimit returns the default search result limit.
func (c AppConfig) SearchLimit() int { return c.searchLimit }

// ChatEndpoint returns the chat endpoint configuration.
func (c AppConfig) ChatEndpoint() Endpoint { return c.chat }

// AppConfigOption mutates an AppConfig during Apply.
type AppConfigOption func(*AppConfig)

// WithDBPath overrides the database path.
func WithDBPath(path string) AppConfigOption {
	return func(c *AppConfig) {
		if path != "" {
			c.dbPath = path
		}
	}
}

// WithHost overrides the server host.
func WithHost(host string) AppConfigOption {
	return func(c *AppConfig) {
		if host != "" {
			c.host = host
		}
	}
}

// WithPort overrides the server port.
func WithPort(port int) AppConfigOption {
	return func(c *AppConfig) {
		if port != 0 {
			c.port = port
		}
	}
}

// Apply returns a copy of the config with the given overrides applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LogAttrs returns the config as slog attributes for startup logging.
// The API key is never included.
func (c AppConfig) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("db_path", c.dbPath),
		slog.String("log_level", c.logLevel),
		slog.String("log_format", string(c.logFormat)),
		slog.Int("search_limit", c.searchLimit),
	}
}
