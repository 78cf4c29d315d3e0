package testhelper

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/graymanconcepts/prompt-manager/internal/adapter/sqlite"
	"github.com/graymanconcepts/prompt-manager/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedHistory inserts a successful upload_history row. Mutators run before the
// insert and may change any field.
func SeedHistory(t *testing.T, db *sql.DB, mutators ...func(*domain.UploadHistory)) domain.UploadHistory {
	t.Helper()

	h := domain.UploadHistory{
		ID:          uuid.New().String(),
		FileName:    "upload-" + uniqueSuffix() + ".json",
		UploadDate:  time.Now().UTC().Truncate(time.Millisecond),
		Status:      domain.UploadStatusSuccess,
		IsActive:    true,
		PromptCount: 0,
	}
	for _, m := range mutators {
		m(&h)
	}

	_, err := db.ExecContext(context.Background(),
		`INSERT INTO upload_history (id, fileName, uploadDate, status, isActive, promptCount, errorMessage)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.FileName, sqlite.FormatTime(h.UploadDate), string(h.Status), sqlite.BoolToInt(h.IsActive),
		h.PromptCount, h.ErrorMessage,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedHistory insert: %v", err)
	}

	return h
}

// SeedPrompt inserts an active, unrated prompt. Mutators run before the insert
// and may change any field.
func SeedPrompt(t *testing.T, db *sql.DB, mutators ...func(*domain.Prompt)) domain.Prompt {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Millisecond)
	p := domain.Prompt{
		ID:              uuid.New().String(),
		Title:           "Prompt " + suffix,
		Description:     "Description " + suffix,
		Content:         "Content " + suffix,
		Tags:            []string{"test"},
		Created:         now,
		LastModified:    now,
		IsActive:        true,
		HistoryIsActive: true,
	}
	for _, m := range mutators {
		m(&p)
	}

	_, err := db.ExecContext(context.Background(),
		`INSERT INTO prompts (id, title, description, content, tags, created, lastModified,
		                      isActive, historyId, rating, ratingCount, isFavorite)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Description, p.Content, domain.SerializeTags(p.Tags),
		sqlite.FormatTime(p.Created), sqlite.FormatTime(p.LastModified),
		sqlite.BoolToInt(p.IsActive), p.HistoryID, p.Rating, p.RatingCount, sqlite.BoolToInt(p.IsFavorite),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPrompt insert: %v", err)
	}

	return p
}

// InHistory links a seeded prompt to h.
func InHistory(h domain.UploadHistory) func(*domain.Prompt) {
	return func(p *domain.Prompt) {
		id := h.ID
		p.HistoryID = &id
		p.HistoryIsActive = h.IsActive
	}
}
