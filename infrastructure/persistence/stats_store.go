package persistence

import (
	"context"
	"fmt"

	"github.com/devdigger/digkit/domain/catalog"
	"github.com/devdigger/digkit/internal/database"
)

// StatsStore implements catalog.StatsStore with COUNT queries over the
// four crawler tables.
type StatsStore struct {
	db database.Database
}

// NewStatsStore creates a new StatsStore.
func NewStatsStore(db database.Database) StatsStore {
	return StatsStore{db: db}
}

// Stats returns row counts for the four crawler tables.
func (s StatsStore) Stats(ctx context.Context) (catalog.Stats, error) {
	counts := make(map[string]int64, 4)

	for _, table := range catalog.StatTables() {
		var count int64
		if err := s.db.Session(ctx).Table(table).Count(&count).Error; err != nil {
			return catalog.Stats{}, fmt.Errorf("count %s: %w", table, err)
		}
		counts[table] = count
	}

	return catalog.NewStats(
		counts[catalog.TableSources],
		counts[catalog.TableDocuments],
		counts[catalog.TableCodeExamples],
		counts[catalog.TableCollections],
	), nil
}
