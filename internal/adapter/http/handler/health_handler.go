package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dompet/dompet/internal/adapter/http/dto"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

// Ping calls f.
func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	db    Pinger
	cache Pinger
}

// NewHealthHandler creates a new HealthHandler. cache may be nil.
func NewHealthHandler(db Pinger, cache Pinger) *HealthHandler {
	return &HealthHandler{
		db:    db,
		cache: cache,
	}
}

// Liveness returns 200 while the process is serving.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{
		Status:  "OK",
		Message: "Server is running",
	})
}

// Readiness returns 200 if the service is ready to accept traffic.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeError(w, http.StatusServiceUnavailable, "postgres unhealthy: "+err.Error())
		return
	}

	resp := dto.ReadinessResponse{Status: "ready", Postgres: "ok"}

	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			writeError(w, http.StatusServiceUnavailable, "redis unhealthy: "+err.Error())
			return
		}
		resp.Redis = "ok"
	}

	writeJSON(w, http.StatusOK, resp)
}
