package persistence_test

import (
	"testing"
	"time"

	"github.com/devdigger/digkit/infrastructure/persistence"
	"github.com/stretchr/testify/assert"
)

func TestSourceMapper_CreatedAtLayouts(t *testing.T) {
	tests := []struct {
		name      string
		createdAt string
		want      time.Time
	}{
		{
			name:      "rfc3339",
			createdAt: "2024-03-01T10:00:00Z",
			want:      time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:      "space separated with micros",
			createdAt: "2024-03-01 10:00:00.123456",
			want:      time.Date(2024, 3, 1, 10, 0, 0, 123456000, time.UTC),
		},
		{
			name:      "space separated",
			createdAt: "2024-03-01 10:00:00",
			want:      time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:      "date only",
			createdAt: "2024-03-01",
			want:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "garbage maps to zero time",
			createdAt: "yesterday-ish",
			want:      time.Time{},
		},
	}

	var mapper persistence.SourceMapper
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := mapper.ToDomain(persistence.SourceModel{
				ID:        "src-1",
				Type:      "website",
				URL:       "https://go.dev",
				CreatedAt: tt.createdAt,
			})
			assert.True(t, tt.want.Equal(source.CreatedAt()),
				"want %v, got %v", tt.want, source.CreatedAt())
		})
	}
}
