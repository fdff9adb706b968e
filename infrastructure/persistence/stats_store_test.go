package persistence_test

import (
	"context"
	"testing"

	"github.com/devdigger/digkit/domain/catalog"
	"github.com/devdigger/digkit/infrastructure/persistence"
	"github.com/devdigger/digkit/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsStore_Stats(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	store := persistence.NewStatsStore(db)

	t.Run("empty database", func(t *testing.T) {
		stats, err := store.Stats(ctx)
		require.NoError(t, err)

		assert.True(t, stats.Empty())
		for _, table := range catalog.StatTables() {
			assert.Zero(t, stats.Count(table))
		}
	})

	t.Run("counts every table", func(t *testing.T) {
		testdb.InsertSource(t, db, "src-1", "https://go.dev/doc", "Go Documentation", "completed", "2024-03-01 10:00:00")
		testdb.InsertDocument(t, db, "doc-1", "src-1", "first chunk", 0, nil)
		testdb.InsertDocument(t, db, "doc-2", "src-1", "second chunk", 1, nil)
		testdb.InsertExample(t, db, "ex-1", "src-1", "go", "", `fmt.Println("hello")`)
		testdb.InsertCollection(t, db, "col-1", "golang")

		stats, err := store.Stats(ctx)
		require.NoError(t, err)

		assert.False(t, stats.Empty())
		assert.EqualValues(t, 1, stats.Sources())
		assert.EqualValues(t, 2, stats.Documents())
		assert.EqualValues(t, 1, stats.CodeExamples())
		assert.EqualValues(t, 1, stats.Collections())

		for _, table := range catalog.StatTables() {
			assert.GreaterOrEqual(t, stats.Count(table), int64(0))
		}
	})
}
