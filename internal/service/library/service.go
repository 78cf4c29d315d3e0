// Package library implements the prompt library operations exposed to the
// transport layer: prompt CRUD, ratings, activity toggles, upload history,
// batch import and analytics.
package library

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/graymanconcepts/prompt-manager/internal/domain"
)

type promptRepo interface {
	List(ctx context.Context, f domain.PromptFilter) ([]domain.Prompt, error)
	GetByID(ctx context.Context, id string) (*domain.Prompt, error)
	Create(ctx context.Context, p *domain.Prompt) error
	Update(ctx context.Context, p *domain.Prompt) error
	Delete(ctx context.Context, id string) error
	SetRating(ctx context.Context, id string, rating int, now time.Time) error
	ToggleActive(ctx context.Context, id string, now time.Time) error
	SetFavorite(ctx context.Context, id string, favorite bool, now time.Time) error
}

type historyRepo interface {
	List(ctx context.Context) ([]domain.UploadHistory, error)
	GetByID(ctx context.Context, id string) (*domain.UploadHistory, error)
	Create(ctx context.Context, h *domain.UploadHistory) error
	ToggleActive(ctx context.Context, id string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type operationRecorder interface {
	ObserveStoreOperation(operation, status string, elapsed time.Duration)
}

// Service provides prompt library operations.
type Service struct {
	prompts promptRepo
	history historyRepo
	tx      txManager
	metrics operationRecorder
	log     *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewService creates a new library service.
func NewService(
	log *slog.Logger,
	prompts promptRepo,
	history historyRepo,
	tx txManager,
	metrics operationRecorder,
) *Service {
	return &Service{
		prompts: prompts,
		history: history,
		tx:      tx,
		metrics: metrics,
		log:     log.With("service", "library"),
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

// observe records the outcome of one operation. Call it deferred with a
// pointer to the named error result.
func (s *Service) observe(operation string, start time.Time, err *error) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveStoreOperation(operation, operationStatus(*err), time.Since(start))
}

func operationStatus(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}

// listAll returns the refreshed collection handed back by every prompt write.
func (s *Service) listAll(ctx context.Context) ([]domain.Prompt, error) {
	prompts, err := s.prompts.List(ctx, domain.PromptFilter{})
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	return prompts, nil
}

func (s *Service) listHistory(ctx context.Context) ([]domain.UploadHistory, error) {
	entries, err := s.history.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}
