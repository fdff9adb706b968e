// Package catalog defines the read-only domain model over the DevDigger
// crawler database: sources, documents, code examples, and their
// embeddings. All entities are produced by the external crawler; this
// package only describes them.
package catalog

import "time"

// CrawlStatus reports where a source is in the crawler's lifecycle.
// The set of values is owned by the crawler; unknown values pass through.
type CrawlStatus string

// CrawlStatus values observed in crawler databases.
const (
	CrawlStatusPending   CrawlStatus = "pending"
	CrawlStatusCrawling  CrawlStatus = "crawling"
	CrawlStatusCompleted CrawlStatus = "completed"
	CrawlStatusFailed    CrawlStatus = "failed"
)

// Source is one crawled origin (a web page or similar).
type Source struct {
	id          string
	sourceType  string
	url         string
	title       string
	crawlStatus CrawlStatus
	createdAt   time.Time
}

// NewSource creates a Source from its stored fields.
func NewSource(id, sourceType, url, title string, status CrawlStatus, createdAt time.Time) Source {
	return Source{
		id:          id,
		sourceType:  sourceType,
		url:         url,
		title:       title,
		crawlStatus: status,
		createdAt:   createdAt,
	}
}

// ID returns the source identifier.
func (s Source) ID() string { return s.id }

// Type returns the source type tag (e.g. "website").
func (s Source) Type() string { return s.sourceType }

// URL returns the crawled URL.
func (s Source) URL() string { return s.url }

// Title returns the page title, possibly empty.
func (s Source) Title() string { return s.title }

// CrawlStatus returns the crawler's status for this source.
func (s Source) CrawlStatus() CrawlStatus { return s.crawlStatus }

// CreatedAt returns when the crawler recorded the source.
func (s Source) CreatedAt() time.Time { return s.createdAt }

// DisplayName returns the title when present, otherwise the URL.
func (s Source) DisplayName() string {
	if s.title != "" {
		return s.title
	}
	return s.url
}
