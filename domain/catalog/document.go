package catalog

// Document is one text chunk derived from a Source, optionally carrying a
// vector embedding stored as a raw byte blob.
type Document struct {
	id         string
	sourceID   string
	content    string
	chunkIndex int
	embedding  []byte
}

// NewDocument creates a Document from its stored fields. The embedding
// blob may be nil when the crawler has not embedded the chunk.
func NewDocument(id, sourceID, content string, chunkIndex int, embedding []byte) Document {
	var blob []byte
	if embedding != nil {
		blob = make([]byte, len(embedding))
		copy(blob, embedding)
	}
	return Document{
		id:         id,
		sourceID:   sourceID,
		content:    content,
		chunkIndex: chunkIndex,
		embedding:  blob,
	}
}

// ID returns the document identifier.
func (d Document) ID() string { return d.id }

// SourceID returns the identifier of the owning source.
func (d Document) SourceID() string { return d.sourceID }

// Content returns the chunk text.
func (d Document) Content() string { return d.content }

// ChunkIndex returns the position of this chunk within its source.
func (d Document) ChunkIndex() int { return d.chunkIndex }

// HasEmbedding reports whether the crawler stored an embedding blob.
func (d Document) HasEmbedding() bool { return len(d.embedding) > 0 }

// EmbeddingBytes returns a copy of the raw embedding blob, or nil.
func (d Document) EmbeddingBytes() []byte {
	if d.embedding == nil {
		return nil
	}
	blob := make([]byte, len(d.embedding))
	copy(blob, d.embedding)
	return blob
}

// Embedding decodes the stored blob into a float32 vector.
// Returns ErrNoEmbedding when the document has no blob and
// ErrInvalidEmbedding when the blob length is not a multiple of 4.
func (d Document) Embedding() (Embedding, error) {
	if !d.HasEmbedding() {
		return nil, ErrNoEmbedding
	}
	return DecodeEmbedding(d.embedding)
}

// SearchHit is a document matched by substring search, joined with its
// owning source's URL and title.
type SearchHit struct {
	document Document
	url      string
	title    string
}

// NewSearchHit creates a SearchHit.
func NewSearchHit(document Document, url, title string) SearchHit {
	return SearchHit{document: document, url: url, title: title}
}

// Document returns the matched document.
func (h SearchHit) Document() Document { return h.document }

// URL returns the owning source's URL.
func (h SearchHit) URL() string { return h.url }

// Title returns the owning source's title.
func (h SearchHit) Title() string { return h.title }

// EmbeddedDocument is a document with a non-null embedding, decoded, and
// joined with its owning source's URL and title.
type EmbeddedDocument struct {
	id        string
	content   string
	url       string
	title     string
	embedding Embedding
}

// NewEmbeddedDocument creates an EmbeddedDocument.
func NewEmbeddedDocument(id, content, url, title string, embedding Embedding) EmbeddedDocument {
	return EmbeddedDocument{
		id:        id,
		content:   content,
		url:       url,
		title:     title,
		embedding: embedding,
	}
}

// ID returns the document identifier.
func (e EmbeddedDocument) ID() string { return e.id }

// Content returns the chunk text.
func (e EmbeddedDocument) Content() string { return e.content }

// URL returns the owning source's URL.
func (e EmbeddedDocument) URL() string { return e.url }

// Title returns the owning source's title.
func (e EmbeddedDocument) Title() string { return e.title }

// Embedding returns the decoded vector.
func (e EmbeddedDocument) Embedding() Embedding { return e.embedding }
