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

func TestExampleStore_Find(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	store := persistence.NewExampleStore(db)

	testdb.InsertSource(t, db, "src-1", "https://go.dev/doc", "Go Documentation", "completed", "2024-03-01 10:00:00")
	testdb.InsertSource(t, db, "src-2", "https://go.dev/blog", "The Go Blog", "completed", "2024-02-20 12:00:00")

	testdb.InsertExample(t, db, "ex-1", "src-1", "go", "hello world", `fmt.Println("hello")`)
	testdb.InsertExample(t, db, "ex-2", "src-1", "python", "hello world", `print("hello")`)
	testdb.InsertExample(t, db, "ex-3", "src-2", "go", "error wrapping", `fmt.Errorf("read: %w", err)`)

	t.Run("all examples carry their source url", func(t *testing.T) {
		examples, err := store.Find(ctx)
		require.NoError(t, err)
		require.Len(t, examples, 3)

		for _, ex := range examples {
			assert.NotEmpty(t, ex.SourceURL())
		}
	})

	t.Run("filtered by language", func(t *testing.T) {
		examples, err := store.Find(ctx, catalog.WithLanguage("go"))
		require.NoError(t, err)
		require.Len(t, examples, 2)

		for _, ex := range examples {
			assert.Equal(t, "go", ex.Language())
		}
	})

	t.Run("maps all fields", func(t *testing.T) {
		examples, err := store.Find(ctx, catalog.WithLanguage("python"))
		require.NoError(t, err)
		require.Len(t, examples, 1)

		ex := examples[0]
		assert.Equal(t, "ex-2", ex.ID())
		assert.Equal(t, "src-1", ex.SourceID())
		assert.Equal(t, "hello world", ex.Description())
		assert.Equal(t, `print("hello")`, ex.Code())
		assert.Equal(t, "https://go.dev/doc", ex.SourceURL())
	})

	t.Run("unknown language yields nothing", func(t *testing.T) {
		examples, err := store.Find(ctx, catalog.WithLanguage("cobol"))
		require.NoError(t, err)
		assert.Empty(t, examples)
	})
}
