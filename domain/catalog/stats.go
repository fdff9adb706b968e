package catalog

// Table names counted by Stats, in display order.
const (
	TableSources      = "sources"
	TableDocuments    = "documents"
	TableCodeExamples = "code_examples"
	TableCollections  = "collections"
)

// StatTables lists the counted tables in display order.
func StatTables() []string {
	return []string{TableSources, TableDocuments, TableCodeExamples, TableCollections}
}

// Stats holds row counts for the four crawler tables.
type Stats struct {
	sources      int64
	documents    int64
	codeExamples int64
	collections  int64
}

// NewStats creates a Stats value.
func NewStats(sources, documents, codeExamples, collections int64) Stats {
	return Stats{
		sources:      sources,
		documents:    documents,
		codeExamples: codeExamples,
		collections:  collections,
	}
}

// Sources returns the sources row count.
func (s Stats) Sources() int64 { return s.sources }

// Documents returns the documents row count.
func (s Stats) Documents() int64 { return s.documents }

// CodeExamples returns the code_examples row count.
func (s Stats) CodeExamples() int64 { return s.codeExamples }

// Collections returns the collections row count.
func (s Stats) Collections() int64 { return s.collections }

// Count returns the count for a table name, or -1 for unknown tables.
func (s Stats) Count(table string) int64 {
	switch table {
	case TableSources:
		return s.sources
	case TableDocuments:
		return s.documents
	case TableCodeExamples:
		return s.codeExamples
	case TableCollections:
		return s.collections
	default:
		return -1
	}
}

// Empty reports whether the crawler has produced no sources yet.
func (s Stats) Empty() bool { return s.sources == 0 }
