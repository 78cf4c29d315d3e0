package library

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/graymanconcepts/prompt-manager/internal/domain"
)

// ListHistory returns every upload batch, most recent first.
func (s *Service) ListHistory(ctx context.Context) (_ []domain.UploadHistory, err error) {
	defer s.observe("list_history", time.Now(), &err)

	return s.listHistory(ctx)
}

// CreateHistory records an upload batch and returns the refreshed history.
func (s *Service) CreateHistory(ctx context.Context, input CreateHistoryInput) (_ []domain.UploadHistory, err error) {
	defer s.observe("create_history", time.Now(), &err)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	h := &domain.UploadHistory{
		ID:           strings.TrimSpace(input.ID),
		FileName:     strings.TrimSpace(input.FileName),
		UploadDate:   input.UploadDate,
		Status:       input.Status,
		IsActive:     boolOr(input.IsActive, true),
		PromptCount:  input.PromptCount,
		ErrorMessage: input.ErrorMessage,
	}
	if h.ID == "" {
		h.ID = s.newID()
	}
	if h.UploadDate.IsZero() {
		h.UploadDate = s.now()
	}
	if h.Status == "" {
		h.Status = domain.UploadStatusSuccess
	}

	if err := s.history.Create(ctx, h); err != nil {
		return nil, fmt.Errorf("create history: %w", err)
	}

	s.log.InfoContext(ctx, "upload history recorded",
		slog.String("history_id", h.ID),
		slog.String("file_name", h.FileName),
	)

	return s.listHistory(ctx)
}

// ToggleHistoryActive flips a batch's active flag and returns the refreshed
// history. Prompts keep their own flags; the batch flag only changes what
// the management view shows.
// Returns domain.ErrNotFound if the batch does not exist.
func (s *Service) ToggleHistoryActive(ctx context.Context, id string) (_ []domain.UploadHistory, err error) {
	defer s.observe("toggle_history", time.Now(), &err)

	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "required")
	}

	if err := s.history.ToggleActive(ctx, id); err != nil {
		return nil, fmt.Errorf("toggle history: %w", err)
	}

	s.log.InfoContext(ctx, "upload history toggled", slog.String("history_id", id))

	return s.listHistory(ctx)
}
