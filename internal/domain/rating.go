package domain

import "fmt"

const (
	// MinRating means "unrated".
	MinRating = 0
	MaxRating = 5
)

// ValidateRating rejects ratings outside [MinRating, MaxRating].
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return NewValidationError("rating", fmt.Sprintf("must be between %d and %d (got %d)", MinRating, MaxRating, rating))
	}
	return nil
}

// NextRatingCount applies the rating-event rule: the first non-zero rating
// counts as one event, clearing back to zero removes it, and overwriting an
// existing rating leaves the count alone. The count never goes negative.
func NextRatingCount(oldRating, newRating, count int) int {
	switch {
	case oldRating == 0 && newRating > 0:
		return count + 1
	case oldRating > 0 && newRating == 0:
		if count > 0 {
			return count - 1
		}
		return 0
	default:
		return count
	}
}
