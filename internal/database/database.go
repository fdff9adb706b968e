// Package database provides connection and session management over the
// crawler's SQLite database using GORM.
package database

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Database wraps a GORM connection with lifecycle management. The
// underlying store is opened read-only: all writes are the crawler's job.
type Database struct {
	db *gorm.DB
}

// Open opens the SQLite database file at path in read-only mode and
// verifies the connection. The caller is responsible for checking that
// the file exists beforehand; a missing file surfaces here as an open or
// ping error.
func Open(ctx context.Context, path string) (Database, error) {
	// LIKE must compare case-sensitively to match the crawler's own
	// tooling; SQLite's default folds ASCII.
	dsn := fmt.Sprintf("file:%s?mode=ro&_case_sensitive_like=true", path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: slogGormLogger{},
	})
	if err != nil {
		return Database{}, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return Database{}, fmt.Errorf("get underlying db: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return Database{}, fmt.Errorf("ping database: %w", err)
	}

	return Database{db: db}, nil
}

// memorySeq disambiguates in-memory databases so every OpenMemory call
// gets its own store even though cache=shared is needed to let GORM's
// connection pool see one database.
var memorySeq atomic.Int64

// OpenMemory opens a private in-memory database for tests and fixtures.
// Unlike Open, the connection is writable so schemas can be seeded.
func OpenMemory(ctx context.Context) (Database, error) {
	dsn := fmt.Sprintf("file:memdb%d?mode=memory&cache=shared&_fk=1&_case_sensitive_like=true", memorySeq.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: slogGormLogger{},
	})
	if err != nil {
		return Database{}, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return Database{}, fmt.Errorf("get underlying db: %w", err)
	}

	// A shared-cache memory database disappears when its last connection
	// closes. Pinning one idle connection keeps it alive for the
	// lifetime of the Database value.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := sqlDB.PingContext(ctx); err != nil {
		return Database{}, fmt.Errorf("ping database: %w", err)
	}

	return Database{db: db}, nil
}

// Session returns a GORM session with the given context.
func (d Database) Session(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx)
}

// ConfigurePool sets connection pool parameters.
func (d Database) ConfigurePool(maxOpen, maxIdle int, maxLifetime time.Duration) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("get underlying db: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(maxLifetime)
	return nil
}

// Close closes the database connection.
func (d Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("get underlying db: %w", err)
	}
	return sqlDB.Close()
}
