// Package history implements the upload history store on SQLite.
package history

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/graymanconcepts/prompt-manager/internal/adapter/sqlite"
	"github.com/graymanconcepts/prompt-manager/internal/domain"
)

// Repo provides upload history persistence backed by SQLite.
type Repo struct {
	db *sql.DB
}

// New creates a new history repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

const table = "upload_history"

var selectColumns = []string{
	"id",
	"fileName AS file_name",
	"uploadDate AS upload_date",
	"status",
	"isActive AS is_active",
	"promptCount AS prompt_count",
	"errorMessage AS error_message",
}

type row struct {
	ID           string         `db:"id"`
	FileName     string         `db:"file_name"`
	UploadDate   string         `db:"upload_date"`
	Status       string         `db:"status"`
	IsActive     bool           `db:"is_active"`
	PromptCount  int            `db:"prompt_count"`
	ErrorMessage sql.NullString `db:"error_message"`
}

func (r row) toDomain() (domain.UploadHistory, error) {
	uploaded, err := sqlite.ParseTime(r.UploadDate)
	if err != nil {
		return domain.UploadHistory{}, fmt.Errorf("upload_history %s: uploadDate: %w", r.ID, err)
	}
	status, err := domain.ParseUploadStatus(r.Status)
	if err != nil {
		return domain.UploadHistory{}, fmt.Errorf("upload_history %s: %w", r.ID, err)
	}

	h := domain.UploadHistory{
		ID:          r.ID,
		FileName:    r.FileName,
		UploadDate:  uploaded,
		Status:      status,
		IsActive:    r.IsActive,
		PromptCount: r.PromptCount,
	}
	if r.ErrorMessage.Valid {
		msg := r.ErrorMessage.String
		h.ErrorMessage = &msg
	}
	return h, nil
}

// List returns every batch, most recent upload first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]domain.UploadHistory, error) {
	query := sqlite.Builder().
		Select(selectColumns...).
		From(table).
		OrderBy("uploadDate DESC", "id")

	var rows []row
	if err := sqlite.Select(ctx, sqlite.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, fmt.Errorf("list upload history: %w", err)
	}

	out := make([]domain.UploadHistory, 0, len(rows))
	for _, rw := range rows {
		h, err := rw.toDomain()
		if err != nil {
			return nil, fmt.Errorf("list upload history: %w", err)
		}
		out = append(out, h)
	}
	return out, nil
}

// GetByID returns a batch by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.UploadHistory, error) {
	query := sqlite.Builder().
		Select(selectColumns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	var rw row
	if err := sqlite.Get(ctx, sqlite.QuerierFromCtx(ctx, r.db), &rw, query); err != nil {
		return nil, sqlite.MapError(err, "upload_history", id)
	}

	h, err := rw.toDomain()
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Count returns the number of recorded batches.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := sqlite.Count(ctx, sqlite.QuerierFromCtx(ctx, r.db),
		sqlite.Builder().Select("COUNT(*)").From(table))
	if err != nil {
		return 0, fmt.Errorf("count upload history: %w", err)
	}
	return n, nil
}

// Create inserts h as given.
// Returns domain.ErrAlreadyExists on a duplicate id.
func (r *Repo) Create(ctx context.Context, h *domain.UploadHistory) error {
	if !h.Status.IsValid() {
		return domain.NewValidationError("status", fmt.Sprintf("unknown status %q", h.Status))
	}

	var errMsg any
	if h.ErrorMessage != nil {
		errMsg = *h.ErrorMessage
	}

	query := sqlite.Builder().
		Insert(table).
		Columns("id", "fileName", "uploadDate", "status", "isActive", "promptCount", "errorMessage").
		Values(h.ID, h.FileName, sqlite.FormatTime(h.UploadDate), string(h.Status),
			sqlite.BoolToInt(h.IsActive), h.PromptCount, errMsg)

	if _, err := sqlite.Exec(ctx, sqlite.QuerierFromCtx(ctx, r.db), query); err != nil {
		return sqlite.MapError(err, "upload_history", h.ID)
	}
	return nil
}

// ToggleActive flips isActive in place. Prompts linked to the batch keep
// their own flags.
// Returns domain.ErrNotFound if the batch does not exist.
func (r *Repo) ToggleActive(ctx context.Context, id string) error {
	query := sqlite.Builder().
		Update(table).
		Set("isActive", squirrel.Expr("CASE WHEN isActive = 1 THEN 0 ELSE 1 END")).
		Where(squirrel.Eq{"id": id})

	n, err := sqlite.Exec(ctx, sqlite.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return sqlite.MapError(err, "upload_history", id)
	}
	if n == 0 {
		return fmt.Errorf("upload_history %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
