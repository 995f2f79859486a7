package httpapi

import (
	"context"
	"net/http"
	"time"
)

// Pinger reports whether the user store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

const pingTimeout = 2 * time.Second

type HealthHandler struct {
	db  Pinger
	now func() time.Time
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, now: time.Now}
}

func (h *HealthHandler) databaseStatus(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return "Disconnected"
	}
	return "Connected"
}

// Root handles GET /.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{
		"message":   "Software Testing Platform Backend is running!",
		"status":    "OK",
		"database":  h.databaseStatus(r.Context()),
		"timestamp": h.now().UTC().Format(time.RFC3339Nano),
	})
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{
		"status":    "OK",
		"message":   "Backend server is working",
		"database":  h.databaseStatus(r.Context()),
		"timestamp": h.now().UTC().Format(time.RFC3339Nano),
	})
}
