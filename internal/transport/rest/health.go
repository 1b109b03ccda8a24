package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

const pingTimeout = 3 * time.Second

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db      dbPinger
	version string
	log     *slog.Logger
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, version: version, log: logger.With("handler", "health")}
}

// HealthResponse is the JSON response for /live, /ready and /health.
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
}

// Live always answers 200: the process is up and serving.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready answers 200 when the database accepts connections, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDatabase(r.Context())

	status, code := "ok", http.StatusOK
	if db.Status != "ok" {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
	})
}

// Health reports every component with its latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.pingDatabase(r.Context())

	status, code := "ok", http.StatusOK
	if db.Status != "ok" {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: map[string]CompStatus{"database": db},
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) pingDatabase(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		h.log.WarnContext(ctx, "database ping failed", slog.String("error", err.Error()))
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: latency.String()}
}
