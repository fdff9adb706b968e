package v1

import "github.com/devdigger/digkit/domain/catalog"

// StatsResponse is the GET /stats body.
type StatsResponse struct {
	Sources      int64 `json:"sources"`
	Documents    int64 `json:"documents"`
	CodeExamples int64 `json:"code_examples"`
	Collections  int64 `json:"collections"`
}

func newStatsResponse(stats catalog.Stats) StatsResponse {
	return StatsResponse{
		Sources:      stats.Sources(),
		Documents:    stats.Documents(),
		CodeExamples: stats.CodeExamples(),
		Collections:  stats.Collections(),
	}
}

// SourceDTO is one source in API responses.
type SourceDTO struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	CrawlStatus string `json:"crawl_status"`
	CreatedAt   string `json:"created_at"`
}

func newSourceDTO(s catalog.Source) SourceDTO {
	createdAt := ""
	if !s.CreatedAt().IsZero() {
		createdAt = s.CreatedAt().Format("2006-01-02 15:04:05")
	}
	return SourceDTO{
		ID:          s.ID(),
		Type:        s.Type(),
		URL:         s.URL(),
		Title:       s.Title(),
		CrawlStatus: string(s.CrawlStatus()),
		CreatedAt:   createdAt,
	}
}

// SourcesResponse is the GET /sources body.
type SourcesResponse struct {
	Sources []SourceDTO `json:"sources"`
}

// SearchHitDTO is one search result.
type SearchHitDTO struct {
	ID         string `json:"id"`
	SourceID   string `json:"source_id"`
	Content    string `json:"content"`
	ChunkIndex int    `json:"chunk_index"`
	URL        string `json:"url"`
	Title      string `json:"title"`
}

func newSearchHitDTO(h catalog.SearchHit) SearchHitDTO {
	doc := h.Document()
	return SearchHitDTO{
		ID:         doc.ID(),
		SourceID:   doc.SourceID(),
		Content:    doc.Content(),
		ChunkIndex: doc.ChunkIndex(),
		URL:        h.URL(),
		Title:      h.Title(),
	}
}

// SearchResponse is the GET /search body.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchHitDTO `json:"results"`
}

// DocumentDTO is one document in API responses. The embedding blob is
// summarized, not dumped.
type DocumentDTO struct {
	ID           string `json:"id"`
	SourceID     string `json:"source_id"`
	Content      string `json:"content"`
	ChunkIndex   int    `json:"chunk_index"`
	HasEmbedding bool   `json:"has_embedding"`
}

func newDocumentDTO(d catalog.Document) DocumentDTO {
	return DocumentDTO{
		ID:           d.ID(),
		SourceID:     d.SourceID(),
		Content:      d.Content(),
		ChunkIndex:   d.ChunkIndex(),
		HasEmbedding: d.HasEmbedding(),
	}
}

// DocumentsResponse is the GET /documents body.
type DocumentsResponse struct {
	Documents []DocumentDTO `json:"documents"`
}

// CodeExampleDTO is one code example in API responses.
type CodeExampleDTO struct {
	ID          string `json:"id"`
	SourceID    string `json:"source_id"`
	Language    string `json:"language"`
	Description string `json:"description"`
	Code        string `json:"code"`
	SourceURL   string `json:"source_url"`
}

func newCodeExampleDTO(e catalog.CodeExample) CodeExampleDTO {
	return CodeExampleDTO{
		ID:          e.ID(),
		SourceID:    e.SourceID(),
		Language:    e.Language(),
		Description: e.Description(),
		Code:        e.Code(),
		SourceURL:   e.SourceURL(),
	}
}

// ExamplesResponse is the GET /examples body.
type ExamplesResponse struct {
	Examples []CodeExampleDTO `json:"examples"`
}
