package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/graymanconcepts/prompt-manager/internal/service/library"
)

type statsService interface {
	Stats(ctx context.Context) (*library.Stats, error)
}

// StatsHandler serves GET /api/stats.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

// Get returns library analytics.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(w, r, h.log, "Failed to compute stats", err)
		return
	}
	writeJSON(w, http.StatusOK, toStatsResponse(st))
}
