package catalog

import (
	"context"

	"github.com/devdigger/digkit/domain/record"
)

// SourceStore reads crawled sources.
type SourceStore interface {
	// Find returns sources matching the given options.
	Find(ctx context.Context, options ...record.Option) ([]Source, error)
}

// DocumentStore reads document chunks.
type DocumentStore interface {
	// Find returns documents matching the given options.
	Find(ctx context.Context, options ...record.Option) ([]Document, error)

	// Search returns documents joined with their owning source's URL and
	// title. Callers filter with WithContentMatch and cap with WithLimit.
	Search(ctx context.Context, options ...record.Option) ([]SearchHit, error)

	// Embedded returns all documents with a non-null embedding, blobs
	// decoded, joined with their owning source's URL and title.
	Embedded(ctx context.Context) ([]EmbeddedDocument, error)
}

// ExampleStore reads extracted code examples, always joined with the
// owning source's URL.
type ExampleStore interface {
	// Find returns code examples matching the given options.
	Find(ctx context.Context, options ...record.Option) ([]CodeExample, error)
}

// StatsStore counts rows in the crawler tables.
type StatsStore interface {
	// Stats returns row counts for the four crawler tables.
	Stats(ctx context.Context) (Stats, error)
}
