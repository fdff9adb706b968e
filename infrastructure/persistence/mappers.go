package persistence

import (
	"time"

	"github.com/devdigger/digkit/domain/catalog"
)

// createdAtLayouts are the timestamp renditions observed in crawler
// databases. SQLite has no timestamp type, so the column is text.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseCreatedAt parses the crawler's created_at text. Unparseable values
// map to the zero time rather than failing the whole read.
func parseCreatedAt(s string) time.Time {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// SourceMapper converts between SourceModel and catalog.Source.
type SourceMapper struct{}

// ToDomain converts a model row into a domain Source.
func (SourceMapper) ToDomain(m SourceModel) catalog.Source {
	return catalog.NewSource(
		m.ID,
		m.Type,
		m.URL,
		m.Title,
		catalog.CrawlStatus(m.CrawlStatus),
		parseCreatedAt(m.CreatedAt),
	)
}

// DocumentMapper converts between DocumentModel and catalog.Document.
type DocumentMapper struct{}

// ToDomain converts a model row into a domain Document.
func (DocumentMapper) ToDomain(m DocumentModel) catalog.Document {
	return catalog.NewDocument(m.ID, m.SourceID, m.Content, m.ChunkIndex, m.Embedding)
}

// ExampleMapper converts a code example row (joined with its source URL)
// into a catalog.CodeExample.
type ExampleMapper struct{}

// ToDomain converts a joined row into a domain CodeExample.
func (ExampleMapper) ToDomain(m CodeExampleModel, sourceURL string) catalog.CodeExample {
	return catalog.NewCodeExample(m.ID, m.SourceID, m.Language, m.Description, m.Code, sourceURL)
}
