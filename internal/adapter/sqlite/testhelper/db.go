// Package testhelper bootstraps throwaway databases for adapter and service tests.
package testhelper

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/graymanconcepts/prompt-manager/internal/adapter/sqlite"
	"github.com/graymanconcepts/prompt-manager/internal/config"
)

// SetupTestDB opens a private in-memory database, applies every migration and
// returns the handle. The database is closed (and discarded) via t.Cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db := OpenEmptyDB(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := sqlite.EnsureSchema(ctx, db); err != nil {
		t.Fatalf("testhelper: failed to apply schema: %v", err)
	}

	return db
}

// OpenEmptyDB opens a private in-memory database without applying migrations.
// Tests use it to lay down tables from older releases.
func OpenEmptyDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sqlite.Open(ctx, config.DatabaseConfig{
		Path:        sqlite.MemoryPath,
		BusyTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("testhelper: failed to open database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}
