package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

const healthTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	PingContext(ctx context.Context) error
}

// SchemaVersionFunc reports the applied schema version.
type SchemaVersionFunc func(ctx context.Context) (int64, error)

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db            dbPinger
	schemaVersion SchemaVersionFunc
	wantSchema    int64
	version       string
}

// NewHealthHandler creates a HealthHandler. wantSchema is the schema version
// this build migrates to; /health reports degraded when the database is
// behind it.
func NewHealthHandler(db dbPinger, schemaVersion SchemaVersionFunc, wantSchema int64, version string) *HealthHandler {
	return &HealthHandler{db: db, schemaVersion: schemaVersion, wantSchema: wantSchema, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings the database: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check: database latency, schema version and
// build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	components := make(map[string]CompStatus)
	overall := "ok"

	start := time.Now()
	if err := h.db.PingContext(ctx); err != nil {
		components["database"] = CompStatus{Status: "down", Detail: err.Error()}
		overall = "down"
	} else {
		components["database"] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}

	if overall == "ok" {
		v, err := h.schemaVersion(ctx)
		switch {
		case err != nil:
			components["schema"] = CompStatus{Status: "down", Detail: err.Error()}
			overall = "down"
		case v < h.wantSchema:
			components["schema"] = CompStatus{Status: "degraded", Detail: "version " + strconv.FormatInt(v, 10)}
			overall = "degraded"
		default:
			components["schema"] = CompStatus{Status: "ok", Detail: "version " + strconv.FormatInt(v, 10)}
		}
	}

	status := http.StatusOK
	if overall == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
