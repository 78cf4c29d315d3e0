package domain

import "fmt"

// View selects which activity rule a prompt listing applies.
type View string

const (
	// ViewAll applies no activity filter.
	ViewAll View = "all"
	// ViewDashboard looks only at the prompt's own flag.
	ViewDashboard View = "dashboard"
	// ViewManagement combines the prompt's flag with its source batch's flag.
	ViewManagement View = "management"
)

// ParseView converts a user-supplied string into a View.
// An empty string yields ViewAll.
func ParseView(s string) (View, error) {
	switch View(s) {
	case "":
		return ViewAll, nil
	case ViewAll, ViewDashboard, ViewManagement:
		return View(s), nil
	}
	return "", NewValidationError("view", fmt.Sprintf("unknown view %q", s))
}

// EffectiveActive computes the combined visibility of a prompt given its
// source batch. A nil source means the prompt has no batch (or the batch row
// is missing), in which case only the prompt's own flag counts.
func EffectiveActive(p Prompt, source *UploadHistory) bool {
	if !p.IsActive {
		return false
	}
	if p.HistoryID == nil || source == nil {
		return true
	}
	return source.IsActive
}

// Visible reports whether a prompt passes the given view's activity rule.
// It relies on HistoryIsActive having been resolved by the store.
func Visible(p Prompt, view View) bool {
	switch view {
	case ViewDashboard:
		return p.IsActive
	case ViewManagement:
		return p.EffectiveActive()
	default:
		return true
	}
}
