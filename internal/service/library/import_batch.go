package library

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/graymanconcepts/prompt-manager/internal/domain"
)

// NoPromptsMessage is stored as the error message of a batch that yielded no
// usable prompts.
const NoPromptsMessage = "no prompts found in file"

// ImportResult holds the outcome of a batch import.
type ImportResult struct {
	History domain.UploadHistory
	Prompts []domain.Prompt

	// Skipped counts candidates dropped for missing content.
	Skipped int
}

// ImportBatch records one upload batch together with its prompts. The
// history row and every prompt are written in one transaction, so a failed
// import leaves no trace. A file that yields no usable prompts is still
// recorded, as a batch with status error.
func (s *Service) ImportBatch(ctx context.Context, fileName string, candidates []Candidate) (_ *ImportResult, err error) {
	defer s.observe("import_batch", time.Now(), &err)

	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, domain.NewValidationError("fileName", "required")
	}

	now := s.now()
	historyID := s.newID()
	result := &ImportResult{Prompts: []domain.Prompt{}}

	for _, c := range candidates {
		if strings.TrimSpace(c.Content) == "" {
			result.Skipped++
			continue
		}
		title := strings.TrimSpace(c.Title)
		if title == "" {
			title = fileName
		}
		hid := historyID
		result.Prompts = append(result.Prompts, domain.Prompt{
			ID:              s.newID(),
			Title:           title,
			Description:     strings.TrimSpace(c.Description),
			Content:         strings.TrimSpace(c.Content),
			Tags:            domain.NormalizeTags(c.Tags),
			Created:         now,
			LastModified:    now,
			IsActive:        true,
			HistoryID:       &hid,
			HistoryIsActive: true,
		})
	}

	result.History = domain.UploadHistory{
		ID:          historyID,
		FileName:    fileName,
		UploadDate:  now,
		Status:      domain.UploadStatusSuccess,
		IsActive:    true,
		PromptCount: len(result.Prompts),
	}
	if len(result.Prompts) == 0 {
		msg := NoPromptsMessage
		result.History.Status = domain.UploadStatusError
		result.History.ErrorMessage = &msg
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.history.Create(txCtx, &result.History); createErr != nil {
			return fmt.Errorf("create history: %w", createErr)
		}
		for i := range result.Prompts {
			if createErr := s.prompts.Create(txCtx, &result.Prompts[i]); createErr != nil {
				return fmt.Errorf("create prompt %d of %d: %w", i+1, len(result.Prompts), createErr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if result.History.Status == domain.UploadStatusError {
		level = slog.LevelWarn
	}
	s.log.Log(ctx, level, "batch imported",
		slog.String("history_id", historyID),
		slog.String("file_name", fileName),
		slog.Int("prompts", len(result.Prompts)),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}
