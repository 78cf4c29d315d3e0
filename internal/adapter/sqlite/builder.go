package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
)

// Builder returns a squirrel statement builder using SQLite placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// Exec renders query and executes it on q, returning the number of rows affected.
func Exec(ctx context.Context, q Querier, query squirrel.Sqlizer) (int64, error) {
	stmt, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	res, err := q.ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Select renders query and scans every row into dst, a pointer to a slice.
func Select(ctx context.Context, q Querier, dst any, query squirrel.Sqlizer) error {
	stmt, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return sqlscan.Select(ctx, q, dst, stmt, args...)
}

// Get renders query and scans exactly one row into dst. A missing row is
// reported as sql.ErrNoRows wrapped by the scanner, which MapError understands.
func Get(ctx context.Context, q Querier, dst any, query squirrel.Sqlizer) error {
	stmt, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return sqlscan.Get(ctx, q, dst, stmt, args...)
}

// Count runs a single-value COUNT query.
func Count(ctx context.Context, q Querier, query squirrel.SelectBuilder) (int, error) {
	stmt, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n sql.NullInt64
	if err := q.QueryRowContext(ctx, stmt, args...).Scan(&n); err != nil {
		return 0, err
	}
	return int(n.Int64), nil
}
