package persistence

import (
	"context"
	"fmt"

	"github.com/devdigger/digkit/domain/catalog"
	"github.com/devdigger/digkit/domain/record"
	"github.com/devdigger/digkit/internal/database"
)

// SourceStore implements catalog.SourceStore using GORM.
type SourceStore struct {
	db     database.Database
	mapper SourceMapper
}

// NewSourceStore creates a new SourceStore.
func NewSourceStore(db database.Database) SourceStore {
	return SourceStore{db: db}
}

// Find returns sources matching the given options.
func (s SourceStore) Find(ctx context.Context, options ...record.Option) ([]catalog.Source, error) {
	var models []SourceModel

	session := database.ApplyOptions(s.db.Session(ctx).Model(&SourceModel{}), options...)
	if err := session.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("find sources: %w", err)
	}

	sources := make([]catalog.Source, len(models))
	for i, m := range models {
		sources[i] = s.mapper.ToDomain(m)
	}
	return sources, nil
}
