package service_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/devdigger/digkit/application/service"
	"github.com/devdigger/digkit/infrastructure/export"
	"github.com/devdigger/digkit/infrastructure/persistence"
	"github.com/devdigger/digkit/internal/database"
	"github.com/devdigger/digkit/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReader(t *testing.T) (service.Reader, database.Database) {
	t.Helper()
	db := testdb.New(t)
	reader := service.NewReader(
		persistence.NewSourceStore(db),
		persistence.NewDocumentStore(db),
		persistence.NewExampleStore(db),
		persistence.NewStatsStore(db),
		nil,
	)
	return reader, db
}

func seedReader(t *testing.T, db database.Database) {
	t.Helper()
	testdb.InsertSource(t, db, "src-1", "https://go.dev/doc", "Go Documentation", "completed", "2024-03-01 10:00:00")
	testdb.InsertSource(t, db, "src-2", "https://go.dev/blog", "The Go Blog", "completed", "2024-03-05 08:30:00")
	testdb.InsertDocument(t, db, "doc-1", "src-1", "Goroutines are lightweight threads", 0, testdb.PackEmbedding(0.1, 0.2))
	testdb.InsertDocument(t, db, "doc-2", "src-1", "Channels connect goroutines", 1, nil)
	testdb.InsertDocument(t, db, "doc-3", "src-2", "Generics arrived in Go 1.18", 0, nil)
	testdb.InsertExample(t, db, "ex-1", "src-1", "go", "hello world", `fmt.Println("hello")`)
	testdb.InsertCollection(t, db, "col-1", "golang")
}

func TestReader_Stats(t *testing.T) {
	reader, db := newReader(t)
	seedReader(t, db)

	stats, err := reader.Stats(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.Sources())
	assert.EqualValues(t, 3, stats.Documents())
	assert.EqualValues(t, 1, stats.CodeExamples())
	assert.EqualValues(t, 1, stats.Collections())
}

func TestReader_Sources(t *testing.T) {
	reader, db := newReader(t)
	seedReader(t, db)

	sources, err := reader.Sources(context.Background())
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "src-2", sources[0].ID(), "newest source first")
}

func TestReader_Search(t *testing.T) {
	reader, db := newReader(t)
	seedReader(t, db)

	t.Run("limit respected", func(t *testing.T) {
		hits, err := reader.Search(context.Background(), "o", 1)
		require.NoError(t, err)
		assert.Len(t, hits, 1)
	})

	t.Run("non-positive limit uses default", func(t *testing.T) {
		hits, err := reader.Search(context.Background(), "goroutine", 0)
		require.NoError(t, err)
		assert.Len(t, hits, 1)
	})
}

func TestReader_Documents(t *testing.T) {
	reader, db := newReader(t)
	seedReader(t, db)

	t.Run("all", func(t *testing.T) {
		docs, err := reader.Documents(context.Background(), "")
		require.NoError(t, err)
		assert.Len(t, docs, 3)
	})

	t.Run("filtered and ordered", func(t *testing.T) {
		docs, err := reader.Documents(context.Background(), "src-1")
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, 0, docs[0].ChunkIndex())
		assert.Equal(t, 1, docs[1].ChunkIndex())
	})
}

func TestReader_Examples(t *testing.T) {
	reader, db := newReader(t)
	seedReader(t, db)

	examples, err := reader.Examples(context.Background(), "go")
	require.NoError(t, err)
	require.Len(t, examples, 1)
	assert.Equal(t, "https://go.dev/doc", examples[0].SourceURL())

	none, err := reader.Examples(context.Background(), "rust")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestReader_Embeddings(t *testing.T) {
	reader, db := newReader(t)
	seedReader(t, db)

	embedded, err := reader.Embeddings(context.Background())
	require.NoError(t, err)
	require.Len(t, embedded, 1)
	assert.Equal(t, "doc-1", embedded[0].ID())
	assert.Equal(t, 2, embedded[0].Embedding().Dim())
}

func TestReader_Export(t *testing.T) {
	reader, db := newReader(t)
	seedReader(t, db)

	path := filepath.Join(t.TempDir(), "snapshot.json")
	written, err := reader.Export(context.Background(), path, export.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var snap export.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))

	// Export counts must match the list operations.
	assert.Len(t, snap.Sources, 2)
	assert.Len(t, snap.Documents, 3)
	assert.Len(t, snap.CodeExamples, 1)
}
