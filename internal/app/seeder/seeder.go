package seeder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/graymanconcepts/prompt-manager/internal/domain"
)

// Seeder bootstraps an empty database with the starter dataset.
type Seeder struct {
	log     *slog.Logger
	tx      TxManager
	prompts PromptRepo
	history HistoryRepo

	seedPrompts []domain.Prompt
	seedHistory []domain.UploadHistory
}

// New creates a Seeder that loads StarterPrompts and StarterHistory.
func New(log *slog.Logger, tx TxManager, prompts PromptRepo, history HistoryRepo) *Seeder {
	return &Seeder{
		log:         log.With("component", "seeder"),
		tx:          tx,
		prompts:     prompts,
		history:     history,
		seedPrompts: StarterPrompts(),
		seedHistory: StarterHistory(),
	}
}

// SeedIfEmpty inserts the dataset when the prompts table is empty and
// reports whether it did. History rows go in first so every prompt's batch
// reference resolves. All inserts share one transaction: on failure nothing
// is left behind and the error is returned.
func (s *Seeder) SeedIfEmpty(ctx context.Context) (bool, error) {
	seeded := false

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		n, err := s.prompts.Count(ctx)
		if err != nil {
			return fmt.Errorf("count prompts: %w", err)
		}
		if n > 0 {
			s.log.InfoContext(ctx, "library not empty, skipping seed", slog.Int("prompts", n))
			return nil
		}

		for i := range s.seedHistory {
			if err := s.history.Create(ctx, &s.seedHistory[i]); err != nil {
				return fmt.Errorf("seed history %s: %w", s.seedHistory[i].ID, err)
			}
		}
		for i := range s.seedPrompts {
			if err := s.prompts.Create(ctx, &s.seedPrompts[i]); err != nil {
				return fmt.Errorf("seed prompt %s: %w", s.seedPrompts[i].ID, err)
			}
		}

		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if seeded {
		s.log.InfoContext(ctx, "seeded starter library",
			slog.Int("prompts", len(s.seedPrompts)),
			slog.Int("history", len(s.seedHistory)),
		)
	}
	return seeded, nil
}
