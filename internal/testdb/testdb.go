// Package testdb provides an in-memory database with the crawler's schema
// for fast, realistic testing.
package testdb

import (
	"context"
	"encoding/binary"
	"math"
	"testing"

	"github.com/devdigger/digkit/internal/database"
)

// schema mirrors the tables the DevDigger crawler creates. Only the
// columns digkit reads are declared.
var schema = []string{
	`CREATE TABLE sources (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		url TEXT NOT NULL,
		title TEXT,
		crawl_status TEXT NOT NULL DEFAULT 'pending',
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE documents (
		id TEXT PRIMARY KEY,
		source_id TEXT NOT NULL REFERENCES sources(id),
		content TEXT NOT NULL,
		chunk_index INTEGER NOT NULL DEFAULT 0,
		embedding BLOB
	)`,
	`CREATE TABLE code_examples (
		id TEXT PRIMARY KEY,
		source_id TEXT NOT NULL REFERENCES sources(id),
		language TEXT NOT NULL,
		description TEXT,
		code TEXT NOT NULL
	)`,
	`CREATE TABLE collections (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`,
}

// New creates an in-memory database with the crawler schema. It is closed
// automatically when the test finishes.
func New(t *testing.T) database.Database {
	t.Helper()
	ctx := context.Background()

	db, err := database.OpenMemory(ctx)
	if err != nil {
		t.Fatalf("testdb.New: open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	for _, stmt := range schema {
		if err := db.Session(ctx).Exec(stmt).Error; err != nil {
			t.Fatalf("testdb.New: create schema: %v\nSQL: %s", err, stmt)
		}
	}
	return db
}

// InsertSource adds a source row.
func InsertSource(t *testing.T, db database.Database, id, url, title, status, createdAt string) {
	t.Helper()
	err := db.Session(context.Background()).Exec(
		`INSERT INTO sources (id, type, url, title, crawl_status, created_at) VALUES (?, 'website', ?, ?, ?, ?)`,
		id, url, title, status, createdAt,
	).Error
	if err != nil {
		t.Fatalf("testdb.InsertSource: %v", err)
	}
}

// InsertDocument adds a document row; embedding may be nil.
func InsertDocument(t *testing.T, db database.Database, id, sourceID, content string, chunkIndex int, embedding []byte) {
	t.Helper()
	err := db.Session(context.Background()).Exec(
		`INSERT INTO documents (id, source_id, content, chunk_index, embedding) VALUES (?, ?, ?, ?, ?)`,
		id, sourceID, content, chunkIndex, embedding,
	).Error
	if err != nil {
		t.Fatalf("testdb.InsertDocument: %v", err)
	}
}

// InsertExample adds a code example row.
func InsertExample(t *testing.T, db database.Database, id, sourceID, language, description, code string) {
	t.Helper()
	err := db.Session(context.Background()).Exec(
		`INSERT INTO code_examples (id, source_id, language, description, code) VALUES (?, ?, ?, ?, ?)`,
		id, sourceID, language, description, code,
	).Error
	if err != nil {
		t.Fatalf("testdb.InsertExample: %v", err)
	}
}

// InsertCollection adds a collection row.
func InsertCollection(t *testing.T, db database.Database, id, name string) {
	t.Helper()
	err := db.Session(context.Background()).Exec(
		`INSERT INTO collections (id, name) VALUES (?, ?)`,
		id, name,
	).Error
	if err != nil {
		t.Fatalf("testdb.InsertCollection: %v", err)
	}
}

// PackEmbedding encodes a float32 vector the way the crawler stores it:
// packed little-endian bytes.
func PackEmbedding(values ...float32) []byte {
	blob := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(blob[i*4:], math.Float32bits(v))
	}
	return blob
}
