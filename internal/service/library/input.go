package library

import (
	"fmt"
	"strings"
	"time"

	"github.com/graymanconcepts/prompt-manager/internal/domain"
)

// CreatePromptInput holds the parameters for creating a prompt.
type CreatePromptInput struct {
	// ID is optional; a UUID is generated when empty.
	ID          string
	Title       string
	Description string
	Content     string
	Tags        []string

	// IsActive defaults to true when nil.
	IsActive   *bool
	HistoryID  *string
	Rating     int
	IsFavorite bool
}

// Validate checks all fields and collects all errors.
func (i CreatePromptInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if i.Rating < domain.MinRating || i.Rating > domain.MaxRating {
		errs = append(errs, domain.FieldError{Field: "rating", Message: ratingRange})
	}
	if i.HistoryID != nil && strings.TrimSpace(*i.HistoryID) == "" {
		errs = append(errs, domain.FieldError{Field: "historyId", Message: "must not be blank"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePromptInput holds the parameters for overwriting a prompt.
// Title, description, content and tags are always replaced. Nil pointer
// fields keep their stored value. The rating count is never taken from the
// caller.
type UpdatePromptInput struct {
	ID          string
	Title       string
	Description string
	Content     string
	Tags        []string

	IsActive   *bool
	HistoryID  *string
	Rating     *int
	IsFavorite *bool
}

// Validate checks all fields and collects all errors.
func (i UpdatePromptInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if i.Rating != nil && (*i.Rating < domain.MinRating || *i.Rating > domain.MaxRating) {
		errs = append(errs, domain.FieldError{Field: "rating", Message: ratingRange})
	}
	if i.HistoryID != nil && strings.TrimSpace(*i.HistoryID) == "" {
		errs = append(errs, domain.FieldError{Field: "historyId", Message: "must not be blank"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateHistoryInput holds the parameters for recording an upload batch.
type CreateHistoryInput struct {
	ID       string
	FileName string

	// UploadDate defaults to the current time when zero.
	UploadDate time.Time

	// Status defaults to success when empty.
	Status domain.UploadStatus

	// IsActive defaults to true when nil.
	IsActive     *bool
	PromptCount  int
	ErrorMessage *string
}

// Validate checks all fields and collects all errors.
func (i CreateHistoryInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.FileName) == "" {
		errs = append(errs, domain.FieldError{Field: "fileName", Message: "required"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: fmt.Sprintf("unknown status %q", i.Status)})
	}
	if i.PromptCount < 0 {
		errs = append(errs, domain.FieldError{Field: "promptCount", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Candidate is one prompt parsed from an imported file, not yet stored.
type Candidate struct {
	Title       string
	Description string
	Content     string
	Tags        []string
}

var ratingRange = fmt.Sprintf("must be between %d and %d", domain.MinRating, domain.MaxRating)

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
