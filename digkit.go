// Package digkit provides a read-only Go client over the SQLite database
// produced by the DevDigger crawler.
//
// Basic usage:
//
//	client, err := digkit.New(ctx, digkit.WithDatabasePath("~/devdigger.db"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	stats, err := client.Reader.Stats(ctx)
//	hits, err := client.Reader.Search(ctx, "goroutine", 10)
//
// The database is opened read-only; all writes are the crawler's job.
package digkit

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/devdigger/digkit/application/service"
	"github.com/devdigger/digkit/infrastructure/persistence"
	"github.com/devdigger/digkit/infrastructure/provider"
	"github.com/devdigger/digkit/internal/database"
)

// ErrDatabaseNotFound is returned when the database file does not exist.
// The crawler creates it; digkit never does.
var ErrDatabaseNotFound = errors.New("database file not found")

// ErrNoChatProvider is returned when Assistant is requested without a
// configured chat endpoint.
var ErrNoChatProvider = errors.New("no chat provider configured")

// Client is the main entry point for the digkit library.
type Client struct {
	// Reader exposes the read operations over the crawler database.
	Reader service.Reader

	db     database.Database
	chat   provider.ChatProvider
	limit  int
	logger *slog.Logger
	closed atomic.Bool
}

// New creates a Client over the crawler database. The database file must
// already exist; ErrDatabaseNotFound is returned otherwise.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if _, err := os.Stat(cfg.dbPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatabaseNotFound, cfg.dbPath)
		}
		return nil, fmt.Errorf("stat database file: %w", err)
	}

	db, err := database.Open(ctx, cfg.dbPath)
	if err != nil {
		return nil, err
	}

	chat := cfg.chat
	if chat == nil && cfg.endpoint.Configured() {
		chat, err = provider.NewOpenAIProviderFromEndpoint(cfg.endpoint)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	reader := service.NewReader(
		persistence.NewSourceStore(db),
		persistence.NewDocumentStore(db),
		persistence.NewExampleStore(db),
		persistence.NewStatsStore(db),
		cfg.logger,
	)

	return &Client{
		Reader: reader,
		db:     db,
		chat:   chat,
		limit:  cfg.searchLimit,
		logger: cfg.logger,
	}, nil
}

// Assistant returns the ask-with-context service. Requires a chat
// provider, configured via WithChatEndpoint or WithChatProvider.
func (c *Client) Assistant() (service.Assistant, error) {
	if c.chat == nil {
		return service.Assistant{}, ErrNoChatProvider
	}
	return service.NewAssistant(c.Reader, c.chat, c.limit, c.logger), nil
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	if c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

// Close releases the database connection and any provider resources.
// Safe to call more than once.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	var errs []error
	if c.chat != nil {
		if err := c.chat.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chat provider: %w", err))
		}
	}
	if err := c.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}
	return errors.Join(errs...)
}
