package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

type dishCounter interface {
	CountDishes(ctx context.Context) (int, error)
}

// HealthHandler provides health check endpoint
type HealthHandler struct {
	dishes dishCounter
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(dishes dishCounter, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		dishes: dishes,
		logger: logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Dishes    int       `json:"dishes"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	count, err := h.dishes.CountDishes(r.Context())
	if err != nil {
		h.logger.Error("health check failed", "error", err)
		WriteError(w, http.StatusServiceUnavailable, "unhealthy", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   Version,
		Dishes:    count,
	}, h.logger)
}
