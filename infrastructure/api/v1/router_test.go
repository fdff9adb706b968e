package v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devdigger/digkit/application/service"
	v1 "github.com/devdigger/digkit/infrastructure/api/v1"
	"github.com/devdigger/digkit/infrastructure/persistence"
	"github.com/devdigger/digkit/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	db := testdb.New(t)

	testdb.InsertSource(t, db, "src-1", "https://go.dev/doc", "Go Documentation", "completed", "2024-03-01 10:00:00")
	testdb.InsertSource(t, db, "src-2", "https://go.dev/blog", "The Go Blog", "completed", "2024-03-05 08:30:00")
	testdb.InsertDocument(t, db, "doc-1", "src-1", "Goroutines are lightweight threads", 0, testdb.PackEmbedding(0.1, 0.2))
	testdb.InsertDocument(t, db, "doc-2", "src-1", "Channels connect goroutines", 1, nil)
	testdb.InsertExample(t, db, "ex-1", "src-1", "go", "hello world", `fmt.Println("hello")`)
	testdb.InsertCollection(t, db, "col-1", "golang")

	reader := service.NewReader(
		persistence.NewSourceStore(db),
		persistence.NewDocumentStore(db),
		persistence.NewExampleStore(db),
		persistence.NewStatsStore(db),
		nil,
	)
	return v1.NewRouter(reader, nil).Routes()
}

func doGet(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRouter_Stats(t *testing.T) {
	handler := newTestRouter(t)

	rec := doGet(t, handler, "/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var body v1.StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 2, body.Sources)
	assert.EqualValues(t, 2, body.Documents)
	assert.EqualValues(t, 1, body.CodeExamples)
	assert.EqualValues(t, 1, body.Collections)
}

func TestRouter_Sources(t *testing.T) {
	handler := newTestRouter(t)

	rec := doGet(t, handler, "/sources")
	require.Equal(t, http.StatusOK, rec.Code)

	var body v1.SourcesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Sources, 2)
	assert.Equal(t, "src-2", body.Sources[0].ID, "newest first")
	assert.Equal(t, "2024-03-05 08:30:00", body.Sources[0].CreatedAt)
}

func TestRouter_Search(t *testing.T) {
	handler := newTestRouter(t)

	t.Run("ok", func(t *testing.T) {
		rec := doGet(t, handler, "/search?q=goroutine&limit=5")
		require.Equal(t, http.StatusOK, rec.Code)

		var body v1.SearchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "goroutine", body.Query)
		require.Len(t, body.Results, 1)
		assert.Equal(t, "doc-2", body.Results[0].ID)
		assert.Equal(t, "https://go.dev/doc", body.Results[0].URL)
		assert.Equal(t, "Go Documentation", body.Results[0].Title)
	})

	t.Run("missing q", func(t *testing.T) {
		rec := doGet(t, handler, "/search")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad limit", func(t *testing.T) {
		rec := doGet(t, handler, "/search?q=go&limit=zero")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_Documents(t *testing.T) {
	handler := newTestRouter(t)

	t.Run("all", func(t *testing.T) {
		rec := doGet(t, handler, "/documents")
		require.Equal(t, http.StatusOK, rec.Code)

		var body v1.DocumentsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Documents, 2)
	})

	t.Run("filtered by source", func(t *testing.T) {
		rec := doGet(t, handler, "/documents?source=src-1")
		require.Equal(t, http.StatusOK, rec.Code)

		var body v1.DocumentsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Documents, 2)
		assert.Equal(t, 0, body.Documents[0].ChunkIndex)
		assert.True(t, body.Documents[0].HasEmbedding)
		assert.False(t, body.Documents[1].HasEmbedding)
	})
}

func TestRouter_Examples(t *testing.T) {
	handler := newTestRouter(t)

	rec := doGet(t, handler, "/examples?language=go")
	require.Equal(t, http.StatusOK, rec.Code)

	var body v1.ExamplesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Examples, 1)
	assert.Equal(t, "https://go.dev/doc", body.Examples[0].SourceURL)

	rec = doGet(t, handler, "/examples?language=rust")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Examples)
}
