// Package sqlite holds the shared plumbing for the embedded SQLite store:
// opening the single connection, transactions carried in context, driver
// error mapping, and the schema manager.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"github.com/graymanconcepts/prompt-manager/internal/config"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// TimeLayout is the ISO-8601 form used for every stored timestamp.
// It sorts lexically in chronological order.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Open opens the database described by cfg and returns a handle limited to a
// single connection. Every statement is therefore serialized by the driver
// and an in-memory database lives exactly as long as the handle.
// Pragmas are passed through the DSN so they apply to every connection the
// pool ever creates.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	if cfg.Path != MemoryPath {
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create data directory %s: %w", dir, err)
			}
		}
	}

	db, err := sql.Open("sqlite", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", cfg.Path, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database %s: %w", cfg.Path, err)
	}

	return db, nil
}

func dsn(cfg config.DatabaseConfig) string {
	params := url.Values{}
	params.Add("_pragma", "foreign_keys(1)")
	params.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", cfg.BusyTimeout/time.Millisecond))
	if cfg.Path != MemoryPath && cfg.JournalMode != "" {
		params.Add("_pragma", fmt.Sprintf("journal_mode(%s)", strings.ToUpper(cfg.JournalMode)))
	}
	return cfg.Path + "?" + params.Encode()
}

// FormatTime renders t in TimeLayout (UTC).
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime parses a stored ISO-8601 timestamp. Values written by older
// clients with or without fractional seconds are accepted.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

// BoolToInt converts a boolean into its stored INTEGER form.
func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
