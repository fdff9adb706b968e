package digkit

import (
	"log/slog"

	"github.com/devdigger/digkit/infrastructure/provider"
	"github.com/devdigger/digkit/internal/config"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	dbPath      string
	searchLimit int
	logger      *slog.Logger
	endpoint    config.Endpoint
	chat        provider.ChatProvider
}

// newClientConfig creates a clientConfig with defaults from
// internal/config.
func newClientConfig() *clientConfig {
	return &clientConfig{
		dbPath:      config.DefaultDatabasePath(),
		searchLimit: config.DefaultSearchLimit,
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithDatabasePath sets the crawler database file path. Empty values keep
// the platform default.
func WithDatabasePath(path string) Option {
	return func(c *clientConfig) {
		if path != "" {
			c.dbPath = path
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) { c.logger = logger }
}

// WithSearchLimit sets the default search result limit.
func WithSearchLimit(n int) Option {
	return func(c *clientConfig) {
		if n > 0 {
			c.searchLimit = n
		}
	}
}

// WithChatEndpoint configures an OpenAI-compatible chat endpoint for the
// Assistant. Ignored when the endpoint has no API key.
func WithChatEndpoint(endpoint config.Endpoint) Option {
	return func(c *clientConfig) { c.endpoint = endpoint }
}

// WithChatProvider sets a pre-built chat provider, taking precedence over
// WithChatEndpoint.
func WithChatProvider(p provider.ChatProvider) Option {
	return func(c *clientConfig) { c.chat = p }
}
