package domain

import "time"

// Prompt is a stored prompt body plus its library metadata.
type Prompt struct {
	ID           string
	Title        string
	Description  string
	Content      string
	Tags         []string
	Created      time.Time
	LastModified time.Time
	IsActive     bool

	// HistoryID references the upload batch that produced the prompt.
	// Nil for prompts created by hand.
	HistoryID *string

	// HistoryIsActive is the joined upload_history.isActive value.
	// It is true when HistoryID is nil or the referenced row is missing.
	HistoryIsActive bool

	Rating      int
	RatingCount int
	IsFavorite  bool
}

// EffectiveActive reports whether the prompt is visible once its source
// batch is taken into account.
func (p *Prompt) EffectiveActive() bool {
	return p.IsActive && p.HistoryIsActive
}

// IsRated returns true if the prompt carries a non-zero rating.
func (p *Prompt) IsRated() bool {
	return p.Rating > 0
}
