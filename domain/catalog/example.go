package catalog

// CodeExample is one extracted code snippet associated with a Source.
// The source URL is denormalized onto the example because every read path
// joins it.
type CodeExample struct {
	id          string
	sourceID    string
	language    string
	description string
	code        string
	sourceURL   string
}

// NewCodeExample creates a CodeExample from its stored fields.
func NewCodeExample(id, sourceID, language, description, code, sourceURL string) CodeExample {
	return CodeExample{
		id:          id,
		sourceID:    sourceID,
		language:    language,
		description: description,
		code:        code,
		sourceURL:   sourceURL,
	}
}

// ID returns the example identifier.
func (c CodeExample) ID() string { return c.id }

// SourceID returns the identifier of the owning source.
func (c CodeExample) SourceID() string { return c.sourceID }

// Language returns the language tag (e.g. "go", "python").
func (c CodeExample) Language() string { return c.language }

// Description returns the crawler's description, possibly empty.
func (c CodeExample) Description() string { return c.description }

// Code returns the snippet body.
func (c CodeExample) Code() string { return c.code }

// SourceURL returns the owning source's URL.
func (c CodeExample) SourceURL() string { return c.sourceURL }
