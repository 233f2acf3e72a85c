package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/Lixing-Zhang/chefs-menu/internal/models"
	"github.com/Lixing-Zhang/chefs-menu/internal/service"
)

// DishHandler handles menu-related HTTP requests
type DishHandler struct {
	service *service.MenuService
	logger  *slog.Logger
}

// NewDishHandler creates a new dish handler
func NewDishHandler(service *service.MenuService, logger *slog.Logger) *DishHandler {
	return &DishHandler{
		service: service,
		logger:  logger,
	}
}

// ListDishes handles GET /api/dish?category={category}
// Without a category, or with "All", the whole menu is returned.
func (h *DishHandler) ListDishes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category := r.URL.Query().Get("category")

	dishes, filter, err := h.service.FilterDishes(ctx, category)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCategory) {
			h.logger.Warn("unknown category filter", "category", category)
			WriteError(w, http.StatusBadRequest, service.MsgUnknownCategory, h.logger)
			return
		}
		h.logger.Error("failed to list dishes", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	total, err := h.service.CountDishes(ctx)
	if err != nil {
		h.logger.Error("failed to count dishes", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, models.MenuResponse{
		Total:    total,
		Category: filter.String(),
		Dishes:   models.NewDishResponses(dishes),
	}, h.logger)
}

// AddDish handles POST /api/dish
func (h *DishHandler) AddDish(w http.ResponseWriter, r *http.Request) {
	var req models.DishRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode dish request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	dish, err := h.service.AddDish(r.Context(), req)
	if err != nil {
		h.logger.Warn("dish rejected", "name", req.Name, "error", err)

		switch {
		case errors.Is(err, service.ErrIncompleteSubmission):
			WriteError(w, http.StatusBadRequest, service.MsgIncompleteSubmission, h.logger)
		case errors.Is(err, service.ErrUnknownCategory):
			WriteError(w, http.StatusBadRequest, service.MsgUnknownCategory, h.logger)
		case errors.Is(err, service.ErrInvalidPrice):
			WriteError(w, http.StatusBadRequest, service.MsgInvalidPrice, h.logger)
		case errors.Is(err, service.ErrDuplicateDish):
			WriteError(w, http.StatusConflict, service.MsgDuplicateDish, h.logger)
		default:
			h.logger.Error("failed to add dish", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, models.AddDishResponse{
		Message: service.MsgDishAdded,
		Dish:    models.NewDishResponse(*dish),
	}, h.logger)
	h.logger.Info("dish added", "name", dish.Name, "category", dish.Category)
}

// RemoveDish handles DELETE /api/dish/{name}
// The client is expected to have confirmed the removal with the user.
func (h *DishHandler) RemoveDish(w http.ResponseWriter, r *http.Request) {
	name, err := dishNameParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid dish name", h.logger)
		return
	}

	removed, err := h.service.RemoveDish(r.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrIncompleteSubmission) {
			WriteError(w, http.StatusBadRequest, "Dish name is required", h.logger)
			return
		}
		h.logger.Error("failed to remove dish", "name", name, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	if !removed {
		h.logger.Info("dish not found", "name", name)
		WriteError(w, http.StatusNotFound, service.MsgDishNotFound, h.logger)
		return
	}

	h.logger.Info("dish removed", "name", name)
	w.WriteHeader(http.StatusNoContent)
}

// Averages handles GET /api/dish/averages
func (h *DishHandler) Averages(w http.ResponseWriter, r *http.Request) {
	averages, err := h.service.CategoryAverages(r.Context())
	if err != nil {
		h.logger.Error("failed to compute averages", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, models.NewAveragesResponse(averages), h.logger)
}

// dishNameParam returns the {name} path segment exactly as the client named
// the dish. chi routes on the escaped path only when RawPath is set (for
// example when the name holds an escaped "/"); otherwise the segment is
// already decoded and must not be unescaped again.
func dishNameParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name, nil
	}
	return url.PathUnescape(name)
}
