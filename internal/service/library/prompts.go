package library

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/graymanconcepts/prompt-manager/internal/domain"
)

// ListPrompts returns prompts matching f, newest first.
func (s *Service) ListPrompts(ctx context.Context, f domain.PromptFilter) (_ []domain.Prompt, err error) {
	defer s.observe("list_prompts", time.Now(), &err)

	if _, err := domain.ParseView(string(f.View)); err != nil {
		return nil, err
	}
	if f.View == "" {
		f.View = domain.ViewAll
	}

	prompts, err := s.prompts.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	return prompts, nil
}

// GetPrompt returns a single prompt.
// Returns domain.ErrNotFound if it does not exist.
func (s *Service) GetPrompt(ctx context.Context, id string) (_ *domain.Prompt, err error) {
	defer s.observe("get_prompt", time.Now(), &err)

	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "required")
	}

	p, err := s.prompts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get prompt: %w", err)
	}
	return p, nil
}

// CreatePrompt stores a new prompt and returns the refreshed collection.
// New prompts are active unless the caller says otherwise, whichever entry
// point they come from.
func (s *Service) CreatePrompt(ctx context.Context, input CreatePromptInput) (_ []domain.Prompt, err error) {
	defer s.observe("create_prompt", time.Now(), &err)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	p := &domain.Prompt{
		ID:           strings.TrimSpace(input.ID),
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		Content:      input.Content,
		Tags:         domain.NormalizeTags(input.Tags),
		Created:      now,
		LastModified: now,
		IsActive:     boolOr(input.IsActive, true),
		HistoryID:    input.HistoryID,
		Rating:       input.Rating,
		RatingCount:  domain.NextRatingCount(0, input.Rating, 0),
		IsFavorite:   input.IsFavorite,
	}
	if p.ID == "" {
		p.ID = s.newID()
	}

	if err := s.prompts.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create prompt: %w", err)
	}

	s.log.InfoContext(ctx, "prompt created",
		slog.String("prompt_id", p.ID),
		slog.Bool("active", p.IsActive),
	)

	return s.listAll(ctx)
}

// UpdatePrompt overwrites an existing prompt and returns the refreshed
// collection. A changed rating goes through the same counting rule as
// SetRating, inside the same transaction.
// Returns domain.ErrNotFound if the prompt does not exist; storage is then
// left untouched.
func (s *Service) UpdatePrompt(ctx context.Context, input UpdatePromptInput) (_ []domain.Prompt, err error) {
	defer s.observe("update_prompt", time.Now(), &err)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.prompts.GetByID(txCtx, input.ID)
		if getErr != nil {
			return fmt.Errorf("get prompt: %w", getErr)
		}

		updated := *current
		updated.Title = strings.TrimSpace(input.Title)
		updated.Description = strings.TrimSpace(input.Description)
		updated.Content = input.Content
		updated.Tags = domain.NormalizeTags(input.Tags)
		updated.LastModified = now
		updated.IsActive = boolOr(input.IsActive, current.IsActive)
		updated.IsFavorite = boolOr(input.IsFavorite, current.IsFavorite)
		if input.HistoryID != nil {
			updated.HistoryID = input.HistoryID
		}

		if updateErr := s.prompts.Update(txCtx, &updated); updateErr != nil {
			return fmt.Errorf("update prompt: %w", updateErr)
		}

		if input.Rating != nil && *input.Rating != current.Rating {
			if rateErr := s.prompts.SetRating(txCtx, input.ID, *input.Rating, now); rateErr != nil {
				return fmt.Errorf("set rating: %w", rateErr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "prompt updated", slog.String("prompt_id", input.ID))

	return s.listAll(ctx)
}

// DeletePrompt removes a prompt and returns the refreshed collection.
// Upload history is never touched.
func (s *Service) DeletePrompt(ctx context.Context, id string) (_ []domain.Prompt, err error) {
	defer s.observe("delete_prompt", time.Now(), &err)

	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "required")
	}

	if err := s.prompts.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete prompt: %w", err)
	}

	s.log.InfoContext(ctx, "prompt deleted", slog.String("prompt_id", id))

	return s.listAll(ctx)
}

// SetRating sets a prompt's rating (0 clears it) and returns the refreshed
// collection. The rating count moves only when a prompt becomes rated or
// unrated.
func (s *Service) SetRating(ctx context.Context, id string, rating int) (_ []domain.Prompt, err error) {
	defer s.observe("set_rating", time.Now(), &err)

	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "required")
	}
	if err := domain.ValidateRating(rating); err != nil {
		return nil, err
	}

	if err := s.prompts.SetRating(ctx, id, rating, s.now()); err != nil {
		return nil, fmt.Errorf("set rating: %w", err)
	}

	s.log.DebugContext(ctx, "prompt rated", slog.String("prompt_id", id), slog.Int("rating", rating))

	return s.listAll(ctx)
}

// TogglePromptActive flips a prompt's own active flag and returns the
// updated prompt.
func (s *Service) TogglePromptActive(ctx context.Context, id string) (_ *domain.Prompt, err error) {
	defer s.observe("toggle_prompt", time.Now(), &err)

	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "required")
	}

	var p *domain.Prompt
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if toggleErr := s.prompts.ToggleActive(txCtx, id, s.now()); toggleErr != nil {
			return fmt.Errorf("toggle prompt: %w", toggleErr)
		}
		var getErr error
		p, getErr = s.prompts.GetByID(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("get prompt: %w", getErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "prompt toggled", slog.String("prompt_id", id), slog.Bool("active", p.IsActive))

	return p, nil
}

// SetFavorite marks or unmarks a prompt as favorite and returns the updated
// prompt.
func (s *Service) SetFavorite(ctx context.Context, id string, favorite bool) (_ *domain.Prompt, err error) {
	defer s.observe("set_favorite", time.Now(), &err)

	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "required")
	}

	var p *domain.Prompt
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if favErr := s.prompts.SetFavorite(txCtx, id, favorite, s.now()); favErr != nil {
			return fmt.Errorf("set favorite: %w", favErr)
		}
		var getErr error
		p, getErr = s.prompts.GetByID(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("get prompt: %w", getErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}
