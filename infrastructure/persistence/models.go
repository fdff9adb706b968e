// Package persistence implements the catalog stores over the crawler's
// SQLite schema.
package persistence

// SourceModel maps the crawler's sources table. Columns are owned by the
// crawler; digkit never migrates or writes them.
type SourceModel struct {
	ID          string `gorm:"column:id;primaryKey"`
	Type        string `gorm:"column:type"`
	URL         string `gorm:"column:url"`
	Title       string `gorm:"column:title"`
	CrawlStatus string `gorm:"column:crawl_status"`
	CreatedAt   string `gorm:"column:created_at"`
}

// TableName returns the crawler's table name.
func (SourceModel) TableName() string { return "sources" }

// DocumentModel maps the crawler's documents table.
type DocumentModel struct {
	ID         string `gorm:"column:id;primaryKey"`
	SourceID   string `gorm:"column:source_id"`
	Content    string `gorm:"column:content"`
	ChunkIndex int    `gorm:"column:chunk_index"`
	Embedding  []byte `gorm:"column:embedding"`
}

// TableName returns the crawler's table name.
func (DocumentModel) TableName() string { return "documents" }

// CodeExampleModel maps the crawler's code_examples table.
type CodeExampleModel struct {
	ID          string `gorm:"column:id;primaryKey"`
	SourceID    string `gorm:"column:source_id"`
	Language    string `gorm:"column:language"`
	Description string `gorm:"column:description"`
	Code        string `gorm:"column:code"`
}

// TableName returns the crawler's table name.
func (CodeExampleModel) TableName() string { return "code_examples" }
