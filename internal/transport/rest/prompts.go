package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/graymanconcepts/prompt-manager/internal/domain"
	"github.com/graymanconcepts/prompt-manager/internal/service/library"
)

// promptService defines the library operations needed by PromptHandler.
type promptService interface {
	ListPrompts(ctx context.Context, f domain.PromptFilter) ([]domain.Prompt, error)
	GetPrompt(ctx context.Context, id string) (*domain.Prompt, error)
	CreatePrompt(ctx context.Context, input library.CreatePromptInput) ([]domain.Prompt, error)
	UpdatePrompt(ctx context.Context, input library.UpdatePromptInput) ([]domain.Prompt, error)
	DeletePrompt(ctx context.Context, id string) ([]domain.Prompt, error)
	SetRating(ctx context.Context, id string, rating int) ([]domain.Prompt, error)
	TogglePromptActive(ctx context.Context, id string) (*domain.Prompt, error)
	SetFavorite(ctx context.Context, id string, favorite bool) (*domain.Prompt, error)
}

// PromptHandler serves the /api/prompts endpoints.
type PromptHandler struct {
	svc         promptService
	defaultView domain.View
	log         *slog.Logger
}

// NewPromptHandler creates a PromptHandler. defaultView applies when a
// listing request carries no view parameter.
func NewPromptHandler(svc promptService, defaultView domain.View, logger *slog.Logger) *PromptHandler {
	return &PromptHandler{svc: svc, defaultView: defaultView, log: logger.With("handler", "prompts")}
}

// List handles GET /api/prompts?view=&q=&favorites=&tag=&historyId=.
func (h *PromptHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	view := h.defaultView
	if v := q.Get("view"); v != "" {
		view = domain.View(v)
	}

	f := domain.PromptFilter{
		View:      view,
		Search:    q.Get("q"),
		Tag:       q.Get("tag"),
		HistoryID: q.Get("historyId"),
	}
	if fav := q.Get("favorites"); fav != "" {
		b, err := strconv.ParseBool(fav)
		if err != nil {
			handleError(w, r, h.log, "Failed to fetch prompts", domain.NewValidationError("favorites", "must be a boolean"))
			return
		}
		f.FavoritesOnly = b
	}

	h.list(w, r, f)
}

// Search handles GET /api/prompts/search?searchTerm=.
func (h *PromptHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.PromptFilter{
		View:   h.defaultView,
		Search: r.URL.Query().Get("searchTerm"),
	})
}

func (h *PromptHandler) list(w http.ResponseWriter, r *http.Request, f domain.PromptFilter) {
	prompts, err := h.svc.ListPrompts(r.Context(), f)
	if err != nil {
		handleError(w, r, h.log, "Failed to fetch prompts", err)
		return
	}
	writeJSON(w, http.StatusOK, toPromptResponses(prompts))
}

// Get handles GET /api/prompts/{id}.
func (h *PromptHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetPrompt(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, "Prompt not found", err)
		return
	}
	writeJSON(w, http.StatusOK, toPromptResponse(*p))
}

// Create handles POST /api/prompts. Responds 201 with the full collection.
func (h *PromptHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	prompts, err := h.svc.CreatePrompt(r.Context(), req.toCreateInput())
	if err != nil {
		handleError(w, r, h.log, "Failed to create prompt", err)
		return
	}
	writeJSON(w, http.StatusCreated, toPromptResponses(prompts))
}

// Update handles PUT /api/prompts/{id}. The path id wins over any id in the
// body.
func (h *PromptHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	prompts, err := h.svc.UpdatePrompt(r.Context(), req.toUpdateInput(r.PathValue("id")))
	if err != nil {
		handleError(w, r, h.log, "Failed to update prompt", err)
		return
	}
	writeJSON(w, http.StatusOK, toPromptResponses(prompts))
}

// Delete handles DELETE /api/prompts/{id}.
func (h *PromptHandler) Delete(w http.ResponseWriter, r *http.Request) {
	prompts, err := h.svc.DeletePrompt(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, "Failed to delete prompt", err)
		return
	}
	writeJSON(w, http.StatusOK, toPromptResponses(prompts))
}

// Rate handles PUT /api/prompts/{id}/rating with {"rating": n}.
func (h *PromptHandler) Rate(w http.ResponseWriter, r *http.Request) {
	var req ratingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Rating == nil {
		handleError(w, r, h.log, "Failed to rate prompt", domain.NewValidationError("rating", "required"))
		return
	}

	prompts, err := h.svc.SetRating(r.Context(), r.PathValue("id"), *req.Rating)
	if err != nil {
		handleError(w, r, h.log, "Failed to rate prompt", err)
		return
	}
	writeJSON(w, http.StatusOK, toPromptResponses(prompts))
}

// Favorite handles PUT /api/prompts/{id}/favorite with {"isFavorite": bool}.
func (h *PromptHandler) Favorite(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.IsFavorite == nil {
		handleError(w, r, h.log, "Failed to update favorite", domain.NewValidationError("isFavorite", "required"))
		return
	}

	p, err := h.svc.SetFavorite(r.Context(), r.PathValue("id"), *req.IsFavorite)
	if err != nil {
		handleError(w, r, h.log, "Failed to update favorite", err)
		return
	}
	writeJSON(w, http.StatusOK, toPromptResponse(*p))
}

// Toggle handles PUT /api/prompts/{id}/toggle.
func (h *PromptHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.TogglePromptActive(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, "Failed to toggle prompt active state", err)
		return
	}
	writeJSON(w, http.StatusOK, toPromptResponse(*p))
}
