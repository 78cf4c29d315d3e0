package rest

import (
	"time"

	"github.com/graymanconcepts/prompt-manager/internal/domain"
	"github.com/graymanconcepts/prompt-manager/internal/service/library"
)

type promptResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Content         string    `json:"content"`
	Tags            []string  `json:"tags"`
	Created         time.Time `json:"created"`
	LastModified    time.Time `json:"lastModified"`
	IsActive        bool      `json:"isActive"`
	HistoryID       *string   `json:"historyId,omitempty"`
	HistoryIsActive bool      `json:"historyIsActive"`
	Rating          int       `json:"rating"`
	RatingCount     int       `json:"ratingCount"`
	IsFavorite      bool      `json:"isFavorite"`
}

type historyResponse struct {
	ID           string    `json:"id"`
	FileName     string    `json:"fileName"`
	UploadDate   time.Time `json:"uploadDate"`
	Status       string    `json:"status"`
	IsActive     bool      `json:"isActive"`
	PromptCount  int       `json:"promptCount"`
	ErrorMessage *string   `json:"errorMessage"`
}

// promptRequest is accepted by create and update. Clients send the whole
// prompt object back; created, lastModified and ratingCount are ignored.
type promptRequest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	IsActive    *bool    `json:"isActive"`
	HistoryID   *string  `json:"historyId"`
	Rating      *int     `json:"rating"`
	IsFavorite  *bool    `json:"isFavorite"`
}

type historyRequest struct {
	ID           string     `json:"id"`
	FileName     string     `json:"fileName"`
	UploadDate   *time.Time `json:"uploadDate"`
	Status       string     `json:"status"`
	IsActive     *bool      `json:"isActive"`
	PromptCount  int        `json:"promptCount"`
	ErrorMessage *string    `json:"errorMessage"`
}

type ratingRequest struct {
	Rating *int `json:"rating"`
}

type favoriteRequest struct {
	IsFavorite *bool `json:"isFavorite"`
}

type importResponse struct {
	History historyResponse  `json:"history"`
	Prompts []promptResponse `json:"prompts"`
	Skipped int              `json:"skipped"`
}

type tagUsageResponse struct {
	Tag        string  `json:"tag"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ratingAnalyticsResponse struct {
	RatedPrompts       int              `json:"ratedPrompts"`
	AverageRating      float64          `json:"averageRating"`
	RatingDistribution map[int]int      `json:"ratingDistribution"`
	FavoriteCount      int              `json:"favoriteCount"`
	MostRatedPrompts   []promptResponse `json:"mostRatedPrompts"`
}

type statsResponse struct {
	TotalPrompts    int                     `json:"totalPrompts"`
	DashboardActive int                     `json:"dashboardActive"`
	EffectiveActive int                     `json:"effectiveActive"`
	TotalUploads    int                     `json:"totalUploads"`
	ActiveUploads   int                     `json:"activeUploads"`
	Tags            []tagUsageResponse      `json:"tags"`
	RatingAnalytics ratingAnalyticsResponse `json:"ratingAnalytics"`
}

func toPromptResponse(p domain.Prompt) promptResponse {
	return promptResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		Content:         p.Content,
		Tags:            p.Tags,
		Created:         p.Created,
		LastModified:    p.LastModified,
		IsActive:        p.IsActive,
		HistoryID:       p.HistoryID,
		HistoryIsActive: p.HistoryIsActive,
		Rating:          p.Rating,
		RatingCount:     p.RatingCount,
		IsFavorite:      p.IsFavorite,
	}
}

func toPromptResponses(prompts []domain.Prompt) []promptResponse {
	out := make([]promptResponse, len(prompts))
	for i, p := range prompts {
		out[i] = toPromptResponse(p)
	}
	return out
}

func toHistoryResponse(h domain.UploadHistory) historyResponse {
	return historyResponse{
		ID:           h.ID,
		FileName:     h.FileName,
		UploadDate:   h.UploadDate,
		Status:       string(h.Status),
		IsActive:     h.IsActive,
		PromptCount:  h.PromptCount,
		ErrorMessage: h.ErrorMessage,
	}
}

func toHistoryResponses(entries []domain.UploadHistory) []historyResponse {
	out := make([]historyResponse, len(entries))
	for i, h := range entries {
		out[i] = toHistoryResponse(h)
	}
	return out
}

func toStatsResponse(st *library.Stats) statsResponse {
	tags := make([]tagUsageResponse, len(st.Tags))
	for i, t := range st.Tags {
		tags[i] = tagUsageResponse{Tag: t.Tag, Count: t.Count, Percentage: t.Percentage}
	}
	return statsResponse{
		TotalPrompts:    st.TotalPrompts,
		DashboardActive: st.DashboardActive,
		EffectiveActive: st.EffectiveActive,
		TotalUploads:    st.TotalUploads,
		ActiveUploads:   st.ActiveUploads,
		Tags:            tags,
		RatingAnalytics: ratingAnalyticsResponse{
			RatedPrompts:       st.Ratings.RatedPrompts,
			AverageRating:      st.Ratings.Average,
			RatingDistribution: st.Ratings.Distribution,
			FavoriteCount:      st.FavoritePrompts,
			MostRatedPrompts:   toPromptResponses(st.Ratings.TopRated),
		},
	}
}

func (req promptRequest) toCreateInput() library.CreatePromptInput {
	in := library.CreatePromptInput{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Tags:        req.Tags,
		IsActive:    req.IsActive,
		HistoryID:   req.HistoryID,
	}
	if req.Rating != nil {
		in.Rating = *req.Rating
	}
	if req.IsFavorite != nil {
		in.IsFavorite = *req.IsFavorite
	}
	return in
}

func (req promptRequest) toUpdateInput(id string) library.UpdatePromptInput {
	return library.UpdatePromptInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Tags:        req.Tags,
		IsActive:    req.IsActive,
		HistoryID:   req.HistoryID,
		Rating:      req.Rating,
		IsFavorite:  req.IsFavorite,
	}
}

func (req historyRequest) toInput() library.CreateHistoryInput {
	in := library.CreateHistoryInput{
		ID:           req.ID,
		FileName:     req.FileName,
		Status:       domain.UploadStatus(req.Status),
		IsActive:     req.IsActive,
		PromptCount:  req.PromptCount,
		ErrorMessage: req.ErrorMessage,
	}
	if req.UploadDate != nil {
		in.UploadDate = req.UploadDate.UTC()
	}
	return in
}
