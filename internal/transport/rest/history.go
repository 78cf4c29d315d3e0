package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/graymanconcepts/prompt-manager/internal/domain"
	"github.com/graymanconcepts/prompt-manager/internal/service/library"
)

type historyService interface {
	ListHistory(ctx context.Context) ([]domain.UploadHistory, error)
	CreateHistory(ctx context.Context, input library.CreateHistoryInput) ([]domain.UploadHistory, error)
	ToggleHistoryActive(ctx context.Context, id string) ([]domain.UploadHistory, error)
}

// HistoryHandler serves the /api/history endpoints.
type HistoryHandler struct {
	svc historyService
	log *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: logger.With("handler", "history")}
}

// List handles GET /api/history.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListHistory(r.Context())
	if err != nil {
		handleError(w, r, h.log, "Failed to fetch history", err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryResponses(entries))
}

// Create handles POST /api/history. Responds 201 with the full history.
func (h *HistoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req historyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entries, err := h.svc.CreateHistory(r.Context(), req.toInput())
	if err != nil {
		handleError(w, r, h.log, "Failed to create history entry", err)
		return
	}
	writeJSON(w, http.StatusCreated, toHistoryResponses(entries))
}

// Toggle handles PUT /api/history/{id}/toggle.
func (h *HistoryHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ToggleHistoryActive(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, "Failed to toggle history active state", err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryResponses(entries))
}
