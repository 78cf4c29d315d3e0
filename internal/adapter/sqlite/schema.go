package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// addColumnsVersion is the Go migration that brings prompts tables created by
// older releases up to the current column set.
const addColumnsVersion = 2

// LatestVersion is the schema version EnsureSchema migrates to.
const LatestVersion = addColumnsVersion

// column is one additive column of the prompts table.
type column struct {
	name       string
	definition string
}

// promptColumns are the columns added after the first release. The
// definitions mirror 00001_init.sql so a migrated table and a fresh one
// behave identically.
var promptColumns = []column{
	{name: "isActive", definition: "INTEGER NOT NULL DEFAULT 1"},
	{name: "historyId", definition: "TEXT REFERENCES upload_history (id)"},
	{name: "rating", definition: "INTEGER DEFAULT 0 CHECK (rating IS NULL OR rating BETWEEN 0 AND 5)"},
	{name: "ratingCount", definition: "INTEGER NOT NULL DEFAULT 0 CHECK (ratingCount >= 0)"},
	{name: "isFavorite", definition: "INTEGER NOT NULL DEFAULT 0"},
}

// NewProvider builds the goose provider holding every schema version: the
// embedded SQL files plus the column migration.
func NewProvider(db *sql.DB) (*goose.Provider, error) {
	fsys, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("migrations fs: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys,
		goose.WithGoMigrations(
			goose.NewGoMigration(addColumnsVersion, &goose.GoFunc{RunTx: addMissingPromptColumns}, nil),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create goose provider: %w", err)
	}
	return provider, nil
}

// EnsureSchema applies every pending migration. It is idempotent and only
// ever adds tables, columns and indexes, so it is safe to run on each start
// against a database written by any earlier release. Each version runs in
// its own transaction; a failing version leaves the database as it was
// before that version.
func EnsureSchema(ctx context.Context, db *sql.DB) ([]*goose.MigrationResult, error) {
	provider, err := NewProvider(db)
	if err != nil {
		return nil, err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return results, fmt.Errorf("apply migrations: %w", err)
	}
	return results, nil
}

// SchemaVersion reports the highest applied migration version.
func SchemaVersion(ctx context.Context, db *sql.DB) (int64, error) {
	provider, err := NewProvider(db)
	if err != nil {
		return 0, err
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("get schema version: %w", err)
	}
	return version, nil
}

// TableColumns returns the column names of table as reported by SQLite.
func TableColumns(ctx context.Context, q Querier, table string) (map[string]bool, error) {
	rows, err := q.QueryContext(ctx, "SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return nil, fmt.Errorf("inspect table %s: %w", table, err)
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("inspect table %s: %w", table, err)
		}
		cols[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("inspect table %s: %w", table, err)
	}
	return cols, nil
}

func addMissingPromptColumns(ctx context.Context, tx *sql.Tx) error {
	existing, err := TableColumns(ctx, tx, "prompts")
	if err != nil {
		return err
	}

	for _, c := range promptColumns {
		if existing[c.name] {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE prompts ADD COLUMN %s %s", c.name, c.definition)
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("add column prompts.%s: %w", c.name, err)
		}
	}

	if _, err := tx.ExecContext(ctx, "UPDATE prompts SET rating = 0 WHERE rating IS NULL"); err != nil {
		return fmt.Errorf("backfill prompts.rating: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS idx_prompts_history_id ON prompts (historyId)"); err != nil {
		return fmt.Errorf("create index on prompts.historyId: %w", err)
	}

	return nil
}
