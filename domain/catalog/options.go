package catalog

import "github.com/devdigger/digkit/domain/record"

// WithSourceID filters by the "source_id" column.
func WithSourceID(id string) record.Option {
	return record.WithCondition("source_id", id)
}

// WithLanguage filters code examples by the "language" column.
func WithLanguage(language string) record.Option {
	return record.WithCondition("language", language)
}

// WithContentMatch filters documents whose content contains the query as a
// substring.
func WithContentMatch(query string) record.Option {
	return record.WithContains("content", query)
}

// WithEmbedding filters documents that carry an embedding blob.
func WithEmbedding() record.Option {
	return record.WithNotNull("embedding")
}

// ByCreatedDesc orders sources newest first.
func ByCreatedDesc() record.Option {
	return record.WithOrderDesc("created_at")
}

// ByChunkIndex orders documents by their position within a source.
func ByChunkIndex() record.Option {
	return record.WithOrderAsc("chunk_index")
}
