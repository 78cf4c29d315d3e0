package prompt_test

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/graymanconcepts/prompt-manager/internal/adapter/sqlite/prompt"
	"github.com/graymanconcepts/prompt-manager/internal/adapter/sqlite/testhelper"
	"github.com/graymanconcepts/prompt-manager/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + db.
func newRepo(t *testing.T) (*prompt.Repo, *sql.DB) {
	t.Helper()
	db := testhelper.SetupTestDB(t)
	return prompt.New(db), db
}

func newPrompt(title string) *domain.Prompt {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Prompt{
		ID:           uuid.New().String(),
		Title:        title,
		Description:  "desc of " + title,
		Content:      "content of " + title,
		Tags:         []string{"x"},
		Created:      now,
		LastModified: now,
		IsActive:     true,
	}
}

func mustGet(t *testing.T, repo *prompt.Repo, id string) *domain.Prompt {
	t.Helper()
	p, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID(%s): unexpected error: %v", id, err)
	}
	return p
}

func setHistoryActive(t *testing.T, db *sql.DB, id string, active bool) {
	t.Helper()
	v := 0
	if active {
		v = 1
	}
	if _, err := db.ExecContext(context.Background(), `UPDATE upload_history SET isActive = ? WHERE id = ?`, v, id); err != nil {
		t.Fatalf("update history: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Create + GetByID tests
// ---------------------------------------------------------------------------

func TestRepo_Create_AndGetByID(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	p := newPrompt("A")
	p.Content = "B"
	p.Tags = []string{"x", " y ", ""}

	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	got := mustGet(t, repo, p.ID)
	if got.Title != "A" || got.Content != "B" {
		t.Errorf("title/content mismatch: got %q/%q", got.Title, got.Content)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "x" || got.Tags[1] != "y" {
		t.Errorf("Tags = %v, want [x y]", got.Tags)
	}
	if got.RatingCount != 0 {
		t.Errorf("RatingCount = %d, want 0", got.RatingCount)
	}
	if !got.IsActive {
		t.Error("expected prompt to be active")
	}
	if got.HistoryID != nil {
		t.Errorf("expected nil HistoryID, got %v", *got.HistoryID)
	}
	if !got.HistoryIsActive {
		t.Error("a prompt without a batch must report HistoryIsActive")
	}
	if !got.Created.Equal(p.Created) {
		t.Errorf("Created = %v, want %v", got.Created, p.Created)
	}
}

func TestRepo_Create_DuplicateID(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	p := newPrompt("dup")
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create first: %v", err)
	}

	err := repo.Create(ctx, p)
	assertIsDomainError(t, err, domain.ErrAlreadyExists)
}

func TestRepo_Create_UnknownHistory(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	p := newPrompt("orphan")
	missing := "no-such-batch"
	p.HistoryID = &missing

	err := repo.Create(context.Background(), p)
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_Create_RatingOutOfRange(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	p := newPrompt("bad rating")
	p.Rating = 6

	err := repo.Create(context.Background(), p)
	assertIsDomainError(t, err, domain.ErrValidation)
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.GetByID(context.Background(), "missing")
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_GetByID_MalformedTimestamp(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)

	p := testhelper.SeedPrompt(t, db)
	if _, err := db.ExecContext(context.Background(), `UPDATE prompts SET created = 'yesterday' WHERE id = ?`, p.ID); err != nil {
		t.Fatalf("corrupt row: %v", err)
	}

	_, err := repo.GetByID(context.Background(), p.ID)
	if err == nil {
		t.Fatal("expected decode error for malformed timestamp, got nil")
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("decode failure must not look like a missing row: %v", err)
	}
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func TestRepo_List_Empty(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	got, err := repo.List(context.Background(), domain.PromptFilter{})
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected 0 prompts, got %d", len(got))
	}
}

func TestRepo_List_NewestFirst(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	older := testhelper.SeedPrompt(t, db, func(p *domain.Prompt) { p.Created = base })
	newer := testhelper.SeedPrompt(t, db, func(p *domain.Prompt) { p.Created = base.Add(time.Hour) })

	got, err := repo.List(context.Background(), domain.PromptFilter{})
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != newer.ID || got[1].ID != older.ID {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestRepo_List_EffectiveActiveViews(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	h := testhelper.SeedHistory(t, db, func(h *domain.UploadHistory) { h.FileName = "f.txt" })
	for _, active := range []bool{true, false, true} {
		testhelper.SeedPrompt(t, db, testhelper.InHistory(h), func(p *domain.Prompt) { p.IsActive = active })
	}

	count := func(view domain.View) int {
		t.Helper()
		got, err := repo.List(ctx, domain.PromptFilter{View: view})
		if err != nil {
			t.Fatalf("List(%s): %v", view, err)
		}
		return len(got)
	}

	if n := count(domain.ViewManagement); n != 2 {
		t.Errorf("management view before toggle = %d, want 2", n)
	}

	setHistoryActive(t, db, h.ID, false)

	if n := count(domain.ViewManagement); n != 0 {
		t.Errorf("management view after batch deactivation = %d, want 0", n)
	}
	if n := count(domain.ViewDashboard); n != 2 {
		t.Errorf("dashboard view ignores the batch: got %d, want 2", n)
	}
	if n := count(domain.ViewAll); n != 3 {
		t.Errorf("all view = %d, want 3", n)
	}

	all, err := repo.List(ctx, domain.PromptFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	activeFlags := 0
	for _, p := range all {
		if p.HistoryIsActive {
			t.Errorf("prompt %s: HistoryIsActive should be false", p.ID)
		}
		if p.IsActive {
			activeFlags++
		}
	}
	if activeFlags != 2 {
		t.Errorf("individual flags changed: %d active, want 2", activeFlags)
	}
}

func TestRepo_List_DanglingHistoryCountsAsActive(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	// Rows written by older releases may point at batches that no longer exist.
	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = OFF`); err != nil {
		t.Fatalf("disable foreign keys: %v", err)
	}
	gone := "deleted-batch"
	p := testhelper.SeedPrompt(t, db, func(p *domain.Prompt) { p.HistoryID = &gone })
	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	got, err := repo.List(ctx, domain.PromptFilter{View: domain.ViewManagement})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].ID != p.ID {
		t.Fatalf("expected dangling prompt in management view, got %+v", got)
	}
	if !got[0].HistoryIsActive {
		t.Error("dangling batch reference must resolve as active")
	}
}

func TestRepo_List_Filters(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	h := testhelper.SeedHistory(t, db)
	writing := testhelper.SeedPrompt(t, db, func(p *domain.Prompt) {
		p.Title = "Blog Outline"
		p.Tags = []string{"writing", "blog"}
		p.IsFavorite = true
	})
	code := testhelper.SeedPrompt(t, db, testhelper.InHistory(h), func(p *domain.Prompt) {
		p.Title = "Refactor helper"
		p.Description = "100% useful"
		p.Tags = []string{"code"}
	})

	tests := []struct {
		name   string
		filter domain.PromptFilter
		want   []string
	}{
		{name: "search title case-insensitive", filter: domain.PromptFilter{Search: "blog OUT"}, want: []string{writing.ID}},
		{name: "search tags", filter: domain.PromptFilter{Search: "code"}, want: []string{code.ID}},
		{name: "search escapes wildcards", filter: domain.PromptFilter{Search: "100%"}, want: []string{code.ID}},
		{name: "search no match", filter: domain.PromptFilter{Search: "zzz"}, want: []string{}},
		{name: "favorites only", filter: domain.PromptFilter{FavoritesOnly: true}, want: []string{writing.ID}},
		{name: "exact tag", filter: domain.PromptFilter{Tag: "blog"}, want: []string{writing.ID}},
		{name: "tag is not a substring match", filter: domain.PromptFilter{Tag: "blo"}, want: []string{}},
		{name: "by history", filter: domain.PromptFilter{HistoryID: h.ID}, want: []string{code.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List: unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d prompts, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("got[%d] = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Update + Delete tests
// ---------------------------------------------------------------------------

func TestRepo_Update(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedPrompt(t, db, func(p *domain.Prompt) {
		p.Rating = 4
		p.RatingCount = 1
	})

	p := mustGet(t, repo, seeded.ID)
	p.Title = "Renamed"
	p.Tags = []string{"new", "new", " tags "}
	p.IsActive = false
	p.LastModified = p.LastModified.Add(time.Minute)
	p.RatingCount = 99

	if err := repo.Update(ctx, p); err != nil {
		t.Fatalf("Update: unexpected error: %v", err)
	}

	got := mustGet(t, repo, seeded.ID)
	if got.Title != "Renamed" {
		t.Errorf("Title = %q, want %q", got.Title, "Renamed")
	}
	if len(got.Tags) != 2 || got.Tags[0] != "new" || got.Tags[1] != "tags" {
		t.Errorf("Tags = %v, want [new tags]", got.Tags)
	}
	if got.IsActive {
		t.Error("expected prompt to be inactive")
	}
	if got.RatingCount != 1 || got.Rating != 4 {
		t.Errorf("rating fields must not change through Update: rating=%d count=%d", got.Rating, got.RatingCount)
	}
	if !got.Created.Equal(seeded.Created) {
		t.Errorf("Created changed: got %v, want %v", got.Created, seeded.Created)
	}
}

func TestRepo_Update_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	err := repo.Update(context.Background(), newPrompt("ghost"))
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_Delete(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	p := testhelper.SeedPrompt(t, db)
	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete: unexpected error: %v", err)
	}

	_, err := repo.GetByID(ctx, p.ID)
	assertIsDomainError(t, err, domain.ErrNotFound)

	err = repo.Delete(ctx, p.ID)
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_Count(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)

	testhelper.SeedPrompt(t, db)
	testhelper.SeedPrompt(t, db, func(p *domain.Prompt) { p.IsActive = false })

	n, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}
}

// ---------------------------------------------------------------------------
// Rating tests
// ---------------------------------------------------------------------------

func TestRepo_SetRating_CountTransitions(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()
	now := time.Now()

	p := testhelper.SeedPrompt(t, db)

	steps := []struct {
		rating    int
		wantCount int
	}{
		{rating: 3, wantCount: 1}, // unrated -> rated
		{rating: 5, wantCount: 1}, // overwrite
		{rating: 0, wantCount: 0}, // cleared
		{rating: 0, wantCount: 0}, // cleared again
		{rating: 2, wantCount: 1},
	}

	for i, s := range steps {
		if err := repo.SetRating(ctx, p.ID, s.rating, now); err != nil {
			t.Fatalf("step %d: SetRating(%d): %v", i, s.rating, err)
		}
		got := mustGet(t, repo, p.ID)
		if got.Rating != s.rating {
			t.Errorf("step %d: Rating = %d, want %d", i, got.Rating, s.rating)
		}
		if got.RatingCount != s.wantCount {
			t.Errorf("step %d: RatingCount = %d, want %d", i, got.RatingCount, s.wantCount)
		}
	}
}

func TestRepo_SetRating_CountNeverNegative(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)

	// Inconsistent legacy row: rated but with no recorded rating event.
	p := testhelper.SeedPrompt(t, db, func(p *domain.Prompt) {
		p.Rating = 4
		p.RatingCount = 0
	})

	if err := repo.SetRating(context.Background(), p.ID, 0, time.Now()); err != nil {
		t.Fatalf("SetRating: %v", err)
	}
	if got := mustGet(t, repo, p.ID); got.RatingCount != 0 {
		t.Errorf("RatingCount = %d, want 0", got.RatingCount)
	}
}

func TestRepo_SetRating_Invalid(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	p := testhelper.SeedPrompt(t, db, func(p *domain.Prompt) {
		p.Rating = 2
		p.RatingCount = 1
	})

	for _, rating := range []int{-1, 6} {
		err := repo.SetRating(ctx, p.ID, rating, time.Now())
		assertIsDomainError(t, err, domain.ErrValidation)
	}

	got := mustGet(t, repo, p.ID)
	if got.Rating != 2 || got.RatingCount != 1 {
		t.Errorf("storage changed after rejected rating: rating=%d count=%d", got.Rating, got.RatingCount)
	}
	if !got.LastModified.Equal(p.LastModified) {
		t.Errorf("lastModified changed after rejected rating")
	}
}

func TestRepo_SetRating_NotFound(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)

	testhelper.SeedPrompt(t, db)

	err := repo.SetRating(context.Background(), "missing", 3, time.Now())
	assertIsDomainError(t, err, domain.ErrNotFound)

	var rated int
	if err := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM prompts WHERE ratingCount > 0`).Scan(&rated); err != nil {
		t.Fatalf("count rated: %v", err)
	}
	if rated != 0 {
		t.Errorf("expected no rated prompts, got %d", rated)
	}
}

// ---------------------------------------------------------------------------
// Toggle + favorite tests
// ---------------------------------------------------------------------------

func TestRepo_ToggleActive_Twice(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	p := testhelper.SeedPrompt(t, db)

	if err := repo.ToggleActive(ctx, p.ID, time.Now()); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if got := mustGet(t, repo, p.ID); got.IsActive {
		t.Fatal("expected inactive after one toggle")
	}

	if err := repo.ToggleActive(ctx, p.ID, time.Now()); err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if got := mustGet(t, repo, p.ID); !got.IsActive {
		t.Fatal("expected active after two toggles")
	}
}

func TestRepo_ToggleActive_Concurrent(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	p := testhelper.SeedPrompt(t, db)

	const toggles = 10
	var wg sync.WaitGroup
	errs := make(chan error, toggles)
	for range toggles {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.ToggleActive(ctx, p.ID, time.Now())
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("ToggleActive: %v", err)
		}
	}

	if got := mustGet(t, repo, p.ID); !got.IsActive {
		t.Fatal("an even number of toggles must leave the prompt active")
	}
}

func TestRepo_ToggleActive_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	err := repo.ToggleActive(context.Background(), "missing", time.Now())
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_SetFavorite(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	p := testhelper.SeedPrompt(t, db)

	if err := repo.SetFavorite(ctx, p.ID, true, time.Now()); err != nil {
		t.Fatalf("SetFavorite: %v", err)
	}
	if got := mustGet(t, repo, p.ID); !got.IsFavorite {
		t.Fatal("expected favorite")
	}

	err := repo.SetFavorite(ctx, "missing", true, time.Now())
	assertIsDomainError(t, err, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func assertIsDomainError(t *testing.T, err error, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error wrapping %v, got nil", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected error wrapping %v, got: %v", target, err)
	}
}
