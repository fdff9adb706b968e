package persistence

import (
	"context"
	"fmt"

	"github.com/devdigger/digkit/domain/catalog"
	"github.com/devdigger/digkit/domain/record"
	"github.com/devdigger/digkit/internal/database"
)

// ExampleStore implements catalog.ExampleStore using GORM. Every read
// joins the owning source for its URL, mirroring how the crawler's own
// tooling presents examples.
type ExampleStore struct {
	db     database.Database
	mapper ExampleMapper
}

// NewExampleStore creates a new ExampleStore.
func NewExampleStore(db database.Database) ExampleStore {
	return ExampleStore{db: db}
}

// exampleRow is the scan target for the code_examples/sources join.
type exampleRow struct {
	ID          string `gorm:"column:id"`
	SourceID    string `gorm:"column:source_id"`
	Language    string `gorm:"column:language"`
	Description string `gorm:"column:description"`
	Code        string `gorm:"column:code"`
	SourceURL   string `gorm:"column:source_url"`
}

// Find returns code examples matching the given options, joined with
// their owning source's URL.
func (s ExampleStore) Find(ctx context.Context, options ...record.Option) ([]catalog.CodeExample, error) {
	var rows []exampleRow

	session := s.db.Session(ctx).
		Table("code_examples").
		Select("code_examples.id, code_examples.source_id, code_examples.language, code_examples.description, code_examples.code, sources.url AS source_url").
		Joins("JOIN sources ON code_examples.source_id = sources.id")

	session = database.ApplyOptions(session, options...)
	if err := session.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("find code examples: %w", err)
	}

	examples := make([]catalog.CodeExample, len(rows))
	for i, row := range rows {
		model := CodeExampleModel{
			ID:          row.ID,
			SourceID:    row.SourceID,
			Language:    row.Language,
			Description: row.Description,
			Code:        row.Code,
		}
		examples[i] = s.mapper.ToDomain(model, row.SourceURL)
	}
	return examples, nil
}
