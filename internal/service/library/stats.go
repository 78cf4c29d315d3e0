package library

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/graymanconcepts/prompt-manager/internal/domain"
)

// topRatedLimit caps Stats.Ratings.TopRated.
const topRatedLimit = 5

// TagUsage is how often one tag occurs across the library.
type TagUsage struct {
	Tag   string
	Count int

	// Percentage is Count relative to all tag occurrences, 0..100.
	Percentage float64
}

// RatingSummary aggregates ratings over rated prompts.
type RatingSummary struct {
	RatedPrompts int
	Average      float64

	// Distribution maps each star value 1..5 to its number of prompts.
	Distribution map[int]int
	TopRated     []domain.Prompt
}

// Stats is the library overview shown by the analytics view.
type Stats struct {
	TotalPrompts    int
	DashboardActive int
	EffectiveActive int
	FavoritePrompts int
	TotalUploads    int
	ActiveUploads   int
	Tags            []TagUsage
	Ratings         RatingSummary
}

// Stats computes library analytics over every stored prompt.
func (s *Service) Stats(ctx context.Context) (_ *Stats, err error) {
	defer s.observe("stats", time.Now(), &err)

	prompts, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}
	uploads, err := s.listHistory(ctx)
	if err != nil {
		return nil, err
	}

	st := &Stats{
		TotalPrompts: len(prompts),
		TotalUploads: len(uploads),
		Tags:         tagUsage(prompts),
		Ratings:      ratingSummary(prompts),
	}
	for _, p := range prompts {
		if domain.Visible(p, domain.ViewDashboard) {
			st.DashboardActive++
		}
		if domain.Visible(p, domain.ViewManagement) {
			st.EffectiveActive++
		}
		if p.IsFavorite {
			st.FavoritePrompts++
		}
	}
	for _, h := range uploads {
		if h.IsActive {
			st.ActiveUploads++
		}
	}

	return st, nil
}

// tagUsage counts tag occurrences, most used first, ties by name.
func tagUsage(prompts []domain.Prompt) []TagUsage {
	counts := make(map[string]int)
	total := 0
	for _, p := range prompts {
		for _, tag := range p.Tags {
			counts[tag]++
			total++
		}
	}

	out := make([]TagUsage, 0, len(counts))
	for tag, n := range counts {
		out = append(out, TagUsage{
			Tag:        tag,
			Count:      n,
			Percentage: float64(n) / float64(total) * 100,
		})
	}
	slices.SortFunc(out, func(a, b TagUsage) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.Tag, b.Tag))
	})
	return out
}

func ratingSummary(prompts []domain.Prompt) RatingSummary {
	sum := RatingSummary{
		Distribution: make(map[int]int, domain.MaxRating),
		TopRated:     []domain.Prompt{},
	}
	for star := 1; star <= domain.MaxRating; star++ {
		sum.Distribution[star] = 0
	}

	total := 0
	var rated []domain.Prompt
	for _, p := range prompts {
		if !p.IsRated() {
			continue
		}
		rated = append(rated, p)
		total += p.Rating
		sum.Distribution[p.Rating]++
	}

	sum.RatedPrompts = len(rated)
	if len(rated) > 0 {
		sum.Average = float64(total) / float64(len(rated))
	}

	slices.SortFunc(rated, func(a, b domain.Prompt) int {
		return cmp.Or(
			cmp.Compare(b.Rating, a.Rating),
			cmp.Compare(b.RatingCount, a.RatingCount),
			cmp.Compare(a.Title, b.Title),
		)
	})
	if len(rated) > topRatedLimit {
		rated = rated[:topRatedLimit]
	}
	sum.TopRated = append(sum.TopRated, rated...)

	return sum
}
