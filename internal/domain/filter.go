package domain

// PromptFilter narrows a prompt listing. The zero value lists every prompt.
type PromptFilter struct {
	View View

	// Search is a case-insensitive substring matched against title,
	// description and tags.
	Search        string
	FavoritesOnly bool

	// Tag keeps prompts carrying exactly this tag.
	Tag string

	// HistoryID keeps prompts imported by one batch.
	HistoryID string
}
