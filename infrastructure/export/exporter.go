// Package export renders a full snapshot of the crawler database to a
// file. JSON is the primary format; YAML is available for humans.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/devdigger/digkit/domain/catalog"
	"gopkg.in/yaml.v3"
)

// Format selects the snapshot encoding.
type Format string

// Supported snapshot encodings.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want json or yaml)", s)
	}
}

// SourceRecord is the flat export shape of a source.
type SourceRecord struct {
	ID          string `json:"id" yaml:"id"`
	Type        string `json:"type" yaml:"type"`
	URL         string `json:"url" yaml:"url"`
	Title       string `json:"title" yaml:"title"`
	CrawlStatus string `json:"crawl_status" yaml:"crawl_status"`
	CreatedAt   string `json:"created_at" yaml:"created_at"`
}

// DocumentRecord is the flat export shape of a document. The raw embedding
// blob is not dumped; its presence and dimension are recorded instead.
type DocumentRecord struct {
	ID           string `json:"id" yaml:"id"`
	SourceID     string `json:"source_id" yaml:"source_id"`
	Content      string `json:"content" yaml:"content"`
	ChunkIndex   int    `json:"chunk_index" yaml:"chunk_index"`
	HasEmbedding bool   `json:"has_embedding" yaml:"has_embedding"`
	EmbeddingDim int    `json:"embedding_dim" yaml:"embedding_dim"`
}

// CodeExampleRecord is the flat export shape of a code example.
type CodeExampleRecord struct {
	ID          string `json:"id" yaml:"id"`
	SourceID    string `json:"source_id" yaml:"source_id"`
	Language    string `json:"language" yaml:"language"`
	Description string `json:"description" yaml:"description"`
	Code        string `json:"code" yaml:"code"`
	SourceURL   string `json:"source_url" yaml:"source_url"`
}

// Snapshot is the full export document. Key names are fixed: downstream
// tooling reads them.
type Snapshot struct {
	Sources      []SourceRecord      `json:"sources" yaml:"sources"`
	Documents    []DocumentRecord    `json:"documents" yaml:"documents"`
	CodeExamples []CodeExampleRecord `json:"code_examples" yaml:"code_examples"`
}

// NewSnapshot flattens domain values into an export snapshot. Slices are
// always non-nil so empty tables encode as [] rather than null.
func NewSnapshot(sources []catalog.Source, documents []catalog.Document, examples []catalog.CodeExample) Snapshot {
	snap := Snapshot{
		Sources:      make([]SourceRecord, len(sources)),
		Documents:    make([]DocumentRecord, len(documents)),
		CodeExamples: make([]CodeExampleRecord, len(examples)),
	}

	for i, s := range sources {
		createdAt := ""
		if !s.CreatedAt().IsZero() {
			createdAt = s.CreatedAt().Format("2006-01-02 15:04:05")
		}
		snap.Sources[i] = SourceRecord{
			ID:          s.ID(),
			Type:        s.Type(),
			URL:         s.URL(),
			Title:       s.Title(),
			CrawlStatus: string(s.CrawlStatus()),
			CreatedAt:   createdAt,
		}
	}

	for i, d := range documents {
		dim := 0
		if vector, err := d.Embedding(); err == nil {
			dim = vector.Dim()
		}
		snap.Documents[i] = DocumentRecord{
			ID:           d.ID(),
			SourceID:     d.SourceID(),
			Content:      d.Content(),
			ChunkIndex:   d.ChunkIndex(),
			HasEmbedding: d.HasEmbedding(),
			EmbeddingDim: dim,
		}
	}

	for i, e := range examples {
		snap.CodeExamples[i] = CodeExampleRecord{
			ID:          e.ID(),
			SourceID:    e.SourceID(),
			Language:    e.Language(),
			Description: e.Description(),
			Code:        e.Code(),
			SourceURL:   e.SourceURL(),
		}
	}

	return snap
}

// Encode renders the snapshot in the requested format.
func (s Snapshot) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode snapshot: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("encode snapshot: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// WriteFile encodes the snapshot and writes it to path, returning the path
// on success.
func (s Snapshot) WriteFile(path string, format Format) (string, error) {
	data, err := s.Encode(format)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	return path, nil
}
