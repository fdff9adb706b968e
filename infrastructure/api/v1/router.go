// Package v1 exposes read-only JSON endpoints over the crawler database.
package v1

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/devdigger/digkit/application/service"
	"github.com/devdigger/digkit/infrastructure/api/middleware"
)

// Router handles the v1 read endpoints.
type Router struct {
	reader service.Reader
	logger *slog.Logger
}

// NewRouter creates a v1 Router over the given reader.
func NewRouter(reader service.Reader, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{reader: reader, logger: logger}
}

// Routes returns the chi router for the v1 endpoints.
func (rt *Router) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/stats", rt.Stats)
	router.Get("/sources", rt.Sources)
	router.Get("/search", rt.Search)
	router.Get("/documents", rt.Documents)
	router.Get("/examples", rt.Examples)

	return router
}

// Stats handles GET /api/v1/stats.
func (rt *Router) Stats(w http.ResponseWriter, req *http.Request) {
	stats, err := rt.reader.Stats(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, rt.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, newStatsResponse(stats))
}

// Sources handles GET /api/v1/sources.
func (rt *Router) Sources(w http.ResponseWriter, req *http.Request) {
	sources, err := rt.reader.Sources(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, rt.logger)
		return
	}

	dtos := make([]SourceDTO, len(sources))
	for i, s := range sources {
		dtos[i] = newSourceDTO(s)
	}
	middleware.WriteJSON(w, http.StatusOK, SourcesResponse{Sources: dtos})
}

// Search handles GET /api/v1/search?q=...&limit=N.
func (rt *Router) Search(w http.ResponseWriter, req *http.Request) {
	query := req.URL.Query().Get("q")
	if query == "" {
		middleware.WriteError(w, req,
			middleware.NewValidationError("missing required query parameter: q"), rt.logger)
		return
	}

	limit := 0
	if raw := req.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			middleware.WriteError(w, req,
				middleware.NewValidationError("limit must be a positive integer"), rt.logger)
			return
		}
		limit = parsed
	}

	hits, err := rt.reader.Search(req.Context(), query, limit)
	if err != nil {
		middleware.WriteError(w, req, err, rt.logger)
		return
	}

	dtos := make([]SearchHitDTO, len(hits))
	for i, h := range hits {
		dtos[i] = newSearchHitDTO(h)
	}
	middleware.WriteJSON(w, http.StatusOK, SearchResponse{Query: query, Results: dtos})
}

// Documents handles GET /api/v1/documents?source=ID.
func (rt *Router) Documents(w http.ResponseWriter, req *http.Request) {
	documents, err := rt.reader.Documents(req.Context(), req.URL.Query().Get("source"))
	if err != nil {
		middleware.WriteError(w, req, err, rt.logger)
		return
	}

	dtos := make([]DocumentDTO, len(documents))
	for i, d := range documents {
		dtos[i] = newDocumentDTO(d)
	}
	middleware.WriteJSON(w, http.StatusOK, DocumentsResponse{Documents: dtos})
}

// Examples handles GET /api/v1/examples?language=L.
func (rt *Router) Examples(w http.ResponseWriter, req *http.Request) {
	examples, err := rt.reader.Examples(req.Context(), req.URL.Query().Get("language"))
	if err != nil {
		middleware.WriteError(w, req, err, rt.logger)
		return
	}

	dtos := make([]CodeExampleDTO, len(examples))
	for i, e := range examples {
		dtos[i] = newCodeExampleDTO(e)
	}
	middleware.WriteJSON(w, http.StatusOK, ExamplesResponse{Examples: dtos})
}
