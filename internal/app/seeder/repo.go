// Package seeder loads the starter dataset into an empty library.
package seeder

import (
	"context"

	"github.com/graymanconcepts/prompt-manager/internal/domain"
)

// PromptRepo is the prompt store contract consumed by the seeder.
// Implemented by prompt.Repo.
type PromptRepo interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, p *domain.Prompt) error
}

// HistoryRepo is the upload history contract consumed by the seeder.
// Implemented by history.Repo.
type HistoryRepo interface {
	Create(ctx context.Context, h *domain.UploadHistory) error
}

// TxManager runs fn inside one transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
