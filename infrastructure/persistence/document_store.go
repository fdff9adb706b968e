package persistence

import (
	"context"
	"fmt"

	"github.com/devdigger/digkit/domain/catalog"
	"github.com/devdigger/digkit/domain/record"
	"github.com/devdigger/digkit/internal/database"
)

// DocumentStore implements catalog.DocumentStore using GORM.
type DocumentStore struct {
	db     database.Database
	mapper DocumentMapper
}

// NewDocumentStore creates a new DocumentStore.
func NewDocumentStore(db database.Database) DocumentStore {
	return DocumentStore{db: db}
}

// Find returns documents matching the given options.
func (s DocumentStore) Find(ctx context.Context, options ...record.Option) ([]catalog.Document, error) {
	var models []DocumentModel

	session := database.ApplyOptions(s.db.Session(ctx).Model(&DocumentModel{}), options...)
	if err := session.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("find documents: %w", err)
	}

	docs := make([]catalog.Document, len(models))
	for i, m := range models {
		docs[i] = s.mapper.ToDomain(m)
	}
	return docs, nil
}

// searchRow is the scan target for document/source join queries.
type searchRow struct {
	ID         string `gorm:"column:id"`
	SourceID   string `gorm:"column:source_id"`
	Content    string `gorm:"column:content"`
	ChunkIndex int    `gorm:"column:chunk_index"`
	URL        string `gorm:"column:url"`
	Title      string `gorm:"column:title"`
	Embedding  []byte `gorm:"column:embedding"`
}

// Search returns documents joined with their owning source's URL and
// title. Filtering and the result cap come from the options
// (WithContentMatch, WithLimit). Matching is plain substring containment
// via LIKE — not ranked or tokenized search.
func (s DocumentStore) Search(ctx context.Context, options ...record.Option) ([]catalog.SearchHit, error) {
	var rows []searchRow

	session := s.db.Session(ctx).
		Table("documents").
		Select("documents.id, documents.source_id, documents.content, documents.chunk_index, sources.url, sources.title").
		Joins("JOIN sources ON documents.source_id = sources.id")

	session = database.ApplyOptions(session, options...)
	if err := session.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}

	hits := make([]catalog.SearchHit, len(rows))
	for i, row := range rows {
		doc := catalog.NewDocument(row.ID, row.SourceID, row.Content, row.ChunkIndex, nil)
		hits[i] = catalog.NewSearchHit(doc, row.URL, row.Title)
	}
	return hits, nil
}

// Embedded returns all documents with a non-null embedding, blobs decoded,
// joined with their owning source's URL and title.
func (s DocumentStore) Embedded(ctx context.Context) ([]catalog.EmbeddedDocument, error) {
	var rows []searchRow

	session := s.db.Session(ctx).
		Table("documents").
		Select("documents.id, documents.content, documents.embedding, sources.url, sources.title").
		Joins("JOIN sources ON documents.source_id = sources.id").
		Where("documents.embedding IS NOT NULL")

	if err := session.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("load embedded documents: %w", err)
	}

	docs := make([]catalog.EmbeddedDocument, 0, len(rows))
	for _, row := range rows {
		vec, err := catalog.DecodeEmbedding(row.Embedding)
		if err != nil {
			return nil, fmt.Errorf("document %s: %w", row.ID, err)
		}
		docs = append(docs, catalog.NewEmbeddedDocument(row.ID, row.Content, row.URL, row.Title, vec))
	}
	return docs, nil
}
