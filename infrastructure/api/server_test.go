package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devdigger/digkit/infrastructure/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_Health(t *testing.T) {
	server := api.NewServer("127.0.0.1:0", nil)

	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_ShutdownBeforeStart(t *testing.T) {
	server := api.NewServer("127.0.0.1:0", nil)
	assert.NoError(t, server.Shutdown(t.Context()))
}
