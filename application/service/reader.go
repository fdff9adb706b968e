// Package service provides application layer services that orchestrate
// reads over the crawler database.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/devdigger/digkit/domain/catalog"
	"github.com/devdigger/digkit/domain/record"
	"github.com/devdigger/digkit/infrastructure/export"
	"github.com/devdigger/digkit/internal/config"
)

// Reader orchestrates the read operations over the crawler database.
type Reader struct {
	sources   catalog.SourceStore
	documents catalog.DocumentStore
	examples  catalog.ExampleStore
	stats     catalog.StatsStore
	logger    *slog.Logger
}

// NewReader creates a Reader over the given stores.
func NewReader(
	sources catalog.SourceStore,
	documents catalog.DocumentStore,
	examples catalog.ExampleStore,
	stats catalog.StatsStore,
	logger *slog.Logger,
) Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return Reader{
		sources:   sources,
		documents: documents,
		examples:  examples,
		stats:     stats,
		logger:    logger,
	}
}

// Stats returns row counts for the crawler tables.
func (r Reader) Stats(ctx context.Context) (catalog.Stats, error) {
	return r.stats.Stats(ctx)
}

// Sources returns all sources, newest first.
func (r Reader) Sources(ctx context.Context) ([]catalog.Source, error) {
	return r.sources.Find(ctx, catalog.ByCreatedDesc())
}

// Search returns up to limit documents whose content contains query as a
// substring, joined with the owning source's URL and title. A non-positive
// limit falls back to the default.
func (r Reader) Search(ctx context.Context, query string, limit int) ([]catalog.SearchHit, error) {
	if limit <= 0 {
		limit = config.DefaultSearchLimit
	}

	hits, err := r.documents.Search(ctx,
		catalog.WithContentMatch(query),
		record.WithLimit(limit),
	)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("search complete", "query", query, "limit", limit, "hits", len(hits))
	return hits, nil
}

// Documents returns document chunks. With a non-empty sourceID the result
// is filtered to that source and ordered by chunk index.
func (r Reader) Documents(ctx context.Context, sourceID string) ([]catalog.Document, error) {
	if sourceID == "" {
		return r.documents.Find(ctx)
	}
	return r.documents.Find(ctx, catalog.WithSourceID(sourceID), catalog.ByChunkIndex())
}

// Examples returns code examples joined with their source URL. With a
// non-empty language the result is filtered to that language tag.
func (r Reader) Examples(ctx context.Context, language string) ([]catalog.CodeExample, error) {
	if language == "" {
		return r.examples.Find(ctx)
	}
	return r.examples.Find(ctx, catalog.WithLanguage(language))
}

// Embeddings returns all documents carrying an embedding, decoded and
// joined with the owning source's URL and title.
func (r Reader) Embeddings(ctx context.Context) ([]catalog.EmbeddedDocument, error) {
	return r.documents.Embedded(ctx)
}

// Export writes a snapshot of sources, documents, and code examples to
// path in the given format and returns the path.
func (r Reader) Export(ctx context.Context, path string, format export.Format) (string, error) {
	sources, err := r.Sources(ctx)
	if err != nil {
		return "", fmt.Errorf("export sources: %w", err)
	}
	documents, err := r.Documents(ctx, "")
	if err != nil {
		return "", fmt.Errorf("export documents: %w", err)
	}
	examples, err := r.Examples(ctx, "")
	if err != nil {
		return "", fmt.Errorf("export code examples: %w", err)
	}

	written, err := export.NewSnapshot(sources, documents, examples).WriteFile(path, format)
	if err != nil {
		return "", err
	}

	r.logger.Info("exported snapshot",
		"path", written,
		"sources", len(sources),
		"documents", len(documents),
		"code_examples", len(examples),
	)
	return written, nil
}
