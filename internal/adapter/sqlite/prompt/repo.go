// Package prompt implements the prompt record store on SQLite.
// Reads join upload_history so every returned prompt carries the activity
// flag of its source batch.
package prompt

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/graymanconcepts/prompt-manager/internal/adapter/sqlite"
	"github.com/graymanconcepts/prompt-manager/internal/domain"
)

// Repo provides prompt persistence backed by SQLite.
type Repo struct {
	db *sql.DB
}

// New creates a new prompt repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

const table = "prompts"

var selectColumns = []string{
	"p.id AS id",
	"p.title AS title",
	"p.description AS description",
	"p.content AS content",
	"p.tags AS tags",
	"p.created AS created",
	"p.lastModified AS last_modified",
	"p.isActive AS is_active",
	"p.historyId AS history_id",
	"h.isActive AS history_is_active",
	"p.rating AS rating",
	"p.ratingCount AS rating_count",
	"p.isFavorite AS is_favorite",
}

type row struct {
	ID              string         `db:"id"`
	Title           string         `db:"title"`
	Description     sql.NullString `db:"description"`
	Content         string         `db:"content"`
	Tags            sql.NullString `db:"tags"`
	Created         string         `db:"created"`
	LastModified    string         `db:"last_modified"`
	IsActive        bool           `db:"is_active"`
	HistoryID       sql.NullString `db:"history_id"`
	HistoryIsActive sql.NullBool   `db:"history_is_active"`
	Rating          sql.NullInt64  `db:"rating"`
	RatingCount     int            `db:"rating_count"`
	IsFavorite      bool           `db:"is_favorite"`
}

func (r row) toDomain() (domain.Prompt, error) {
	created, err := sqlite.ParseTime(r.Created)
	if err != nil {
		return domain.Prompt{}, fmt.Errorf("prompt %s: created: %w", r.ID, err)
	}
	modified, err := sqlite.ParseTime(r.LastModified)
	if err != nil {
		return domain.Prompt{}, fmt.Errorf("prompt %s: lastModified: %w", r.ID, err)
	}

	p := domain.Prompt{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description.String,
		Content:      r.Content,
		Tags:         domain.DeserializeTags(r.Tags.String),
		Created:      created,
		LastModified: modified,
		IsActive:     r.IsActive,
		Rating:       int(r.Rating.Int64),
		RatingCount:  r.RatingCount,
		IsFavorite:   r.IsFavorite,

		// A prompt without a batch, or whose batch row is gone, is not
		// hidden by it.
		HistoryIsActive: !r.HistoryIsActive.Valid || r.HistoryIsActive.Bool,
	}
	if r.HistoryID.Valid {
		id := r.HistoryID.String
		p.HistoryID = &id
	}
	return p, nil
}

func nullableString(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func selectBuilder() squirrel.SelectBuilder {
	return sqlite.Builder().
		Select(selectColumns...).
		From(table + " p").
		LeftJoin("upload_history h ON p.historyId = h.id")
}

// viewCondition returns the WHERE clause for a view, or nil for ViewAll.
// The management view treats a missing batch row as active, matching toDomain.
func viewCondition(view domain.View) squirrel.Sqlizer {
	switch view {
	case domain.ViewDashboard:
		return squirrel.Eq{"p.isActive": 1}
	case domain.ViewManagement:
		return squirrel.And{
			squirrel.Eq{"p.isActive": 1},
			squirrel.Expr("COALESCE(h.isActive, 1) = 1"),
		}
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func searchCondition(search string) squirrel.Sqlizer {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
	return squirrel.Or{
		squirrel.Expr(`lower(p.title) LIKE ? ESCAPE '\'`, pattern),
		squirrel.Expr(`lower(COALESCE(p.description, '')) LIKE ? ESCAPE '\'`, pattern),
		squirrel.Expr(`lower(COALESCE(p.tags, '')) LIKE ? ESCAPE '\'`, pattern),
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns prompts matching f, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, f domain.PromptFilter) ([]domain.Prompt, error) {
	query := selectBuilder().OrderBy("p.created DESC", "p.id")

	if cond := viewCondition(f.View); cond != nil {
		query = query.Where(cond)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		query = query.Where(searchCondition(s))
	}
	if f.FavoritesOnly {
		query = query.Where(squirrel.Eq{"p.isFavorite": 1})
	}
	if f.HistoryID != "" {
		query = query.Where(squirrel.Eq{"p.historyId": f.HistoryID})
	}

	var rows []row
	if err := sqlite.Select(ctx, sqlite.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}

	tag := strings.TrimSpace(f.Tag)
	prompts := make([]domain.Prompt, 0, len(rows))
	for _, rw := range rows {
		p, err := rw.toDomain()
		if err != nil {
			return nil, fmt.Errorf("list prompts: %w", err)
		}
		if tag != "" && !slices.Contains(p.Tags, tag) {
			continue
		}
		prompts = append(prompts, p)
	}

	return prompts, nil
}

// GetByID returns a prompt by primary key.
// Returns domain.ErrNotFound if the prompt does not exist.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Prompt, error) {
	query := selectBuilder().Where(squirrel.Eq{"p.id": id})

	var rw row
	if err := sqlite.Get(ctx, sqlite.QuerierFromCtx(ctx, r.db), &rw, query); err != nil {
		return nil, sqlite.MapError(err, "prompt", id)
	}

	p, err := rw.toDomain()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Count returns the number of stored prompts, active or not.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := sqlite.Count(ctx, sqlite.QuerierFromCtx(ctx, r.db),
		sqlite.Builder().Select("COUNT(*)").From(table))
	if err != nil {
		return 0, fmt.Errorf("count prompts: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts p as given. Tags are normalized before storage.
// Returns domain.ErrAlreadyExists on a duplicate id, domain.ErrNotFound when
// HistoryID references no batch, and a validation error for a rating
// outside 0..5.
func (r *Repo) Create(ctx context.Context, p *domain.Prompt) error {
	if err := domain.ValidateRating(p.Rating); err != nil {
		return err
	}

	query := sqlite.Builder().
		Insert(table).
		Columns("id", "title", "description", "content", "tags", "created", "lastModified",
			"isActive", "historyId", "rating", "ratingCount", "isFavorite").
		Values(p.ID, p.Title, p.Description, p.Content, domain.SerializeTags(p.Tags),
			sqlite.FormatTime(p.Created), sqlite.FormatTime(p.LastModified),
			sqlite.BoolToInt(p.IsActive), nullableString(p.HistoryID), p.Rating, p.RatingCount,
			sqlite.BoolToInt(p.IsFavorite))

	if _, err := sqlite.Exec(ctx, sqlite.QuerierFromCtx(ctx, r.db), query); err != nil {
		return sqlite.MapError(err, "prompt", p.ID)
	}
	return nil
}

// Update overwrites the mutable content fields of an existing prompt:
// title, description, content, tags, lastModified, isActive, historyId and
// isFavorite. Rating and ratingCount change only through SetRating; created
// never changes.
// Returns domain.ErrNotFound if the prompt does not exist.
func (r *Repo) Update(ctx context.Context, p *domain.Prompt) error {
	query := sqlite.Builder().
		Update(table).
		Set("title", p.Title).
		Set("description", p.Description).
		Set("content", p.Content).
		Set("tags", domain.SerializeTags(p.Tags)).
		Set("lastModified", sqlite.FormatTime(p.LastModified)).
		Set("isActive", sqlite.BoolToInt(p.IsActive)).
		Set("historyId", nullableString(p.HistoryID)).
		Set("isFavorite", sqlite.BoolToInt(p.IsFavorite)).
		Where(squirrel.Eq{"id": p.ID})

	n, err := sqlite.Exec(ctx, sqlite.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return sqlite.MapError(err, "prompt", p.ID)
	}
	if n == 0 {
		return fmt.Errorf("prompt %s: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a prompt.
// Returns domain.ErrNotFound if the prompt does not exist.
func (r *Repo) Delete(ctx context.Context, id string) error {
	query := sqlite.Builder().Delete(table).Where(squirrel.Eq{"id": id})

	n, err := sqlite.Exec(ctx, sqlite.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return sqlite.MapError(err, "prompt", id)
	}
	if n == 0 {
		return fmt.Errorf("prompt %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SetRating stores a new rating and adjusts ratingCount in the same
// statement, so concurrent writers cannot interleave between reading the
// old rating and writing the new count:
//   - unrated -> rated: count + 1
//   - rated -> unrated: count - 1, never below zero
//   - otherwise: unchanged
//
// Returns a validation error for a rating outside 0..5 and domain.ErrNotFound
// if the prompt does not exist. Neither case touches storage.
func (r *Repo) SetRating(ctx context.Context, id string, rating int, now time.Time) error {
	if err := domain.ValidateRating(rating); err != nil {
		return err
	}

	query := sqlite.Builder().
		Update(table).
		Set("ratingCount", squirrel.Expr(`CASE
			WHEN ? > 0 AND COALESCE(rating, 0) = 0 THEN ratingCount + 1
			WHEN ? = 0 AND COALESCE(rating, 0) > 0 THEN MAX(ratingCount - 1, 0)
			ELSE ratingCount
		END`, rating, rating)).
		Set("rating", rating).
		Set("lastModified", sqlite.FormatTime(now)).
		Where(squirrel.Eq{"id": id})

	n, err := sqlite.Exec(ctx, sqlite.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return sqlite.MapError(err, "prompt", id)
	}
	if n == 0 {
		return fmt.Errorf("prompt %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ToggleActive flips isActive in place.
// Returns domain.ErrNotFound if the prompt does not exist.
func (r *Repo) ToggleActive(ctx context.Context, id string, now time.Time) error {
	query := sqlite.Builder().
		Update(table).
		Set("isActive", squirrel.Expr("CASE WHEN isActive = 1 THEN 0 ELSE 1 END")).
		Set("lastModified", sqlite.FormatTime(now)).
		Where(squirrel.Eq{"id": id})

	n, err := sqlite.Exec(ctx, sqlite.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return sqlite.MapError(err, "prompt", id)
	}
	if n == 0 {
		return fmt.Errorf("prompt %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SetFavorite marks or unmarks a prompt as favorite.
// Returns domain.ErrNotFound if the prompt does not exist.
func (r *Repo) SetFavorite(ctx context.Context, id string, favorite bool, now time.Time) error {
	query := sqlite.Builder().
		Update(table).
		Set("isFavorite", sqlite.BoolToInt(favorite)).
		Set("lastModified", sqlite.FormatTime(now)).
		Where(squirrel.Eq{"id": id})

	n, err := sqlite.Exec(ctx, sqlite.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return sqlite.MapError(err, "prompt", id)
	}
	if n == 0 {
		return fmt.Errorf("prompt %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
