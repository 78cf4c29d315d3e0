package rest

import (
	"net/http"

	"github.com/graymanconcepts/prompt-manager/pkg/ctxutil"
)

// Handlers groups everything the router mounts. Metrics may be nil.
type Handlers struct {
	Prompts *PromptHandler
	History *HistoryHandler
	Import  *ImportHandler
	Stats   *StatsHandler
	Health  *HealthHandler
	Metrics http.Handler
}

// NewRouter registers every route on a ServeMux. Each handler records its
// pattern through ctxutil.SetRoute so outer middleware can label requests
// by route instead of raw path.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()
	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxutil.SetRoute(r.Context(), r.Pattern)
			fn(w, r)
		}))
	}

	handle("GET /api/prompts", h.Prompts.List)
	handle("GET /api/prompts/search", h.Prompts.Search)
	handle("GET /api/prompts/{id}", h.Prompts.Get)
	handle("POST /api/prompts", h.Prompts.Create)
	handle("PUT /api/prompts/{id}", h.Prompts.Update)
	handle("DELETE /api/prompts/{id}", h.Prompts.Delete)
	handle("PUT /api/prompts/{id}/rating", h.Prompts.Rate)
	handle("PUT /api/prompts/{id}/favorite", h.Prompts.Favorite)
	handle("PUT /api/prompts/{id}/toggle", h.Prompts.Toggle)

	handle("GET /api/history", h.History.List)
	handle("POST /api/history", h.History.Create)
	handle("PUT /api/history/{id}/toggle", h.History.Toggle)

	handle("POST /api/import", h.Import.Import)
	handle("GET /api/stats", h.Stats.Get)

	handle("GET /live", h.Health.Live)
	handle("GET /ready", h.Health.Ready)
	handle("GET /health", h.Health.Health)

	if h.Metrics != nil {
		handle("GET /metrics", h.Metrics.ServeHTTP)
	}

	return mux
}
