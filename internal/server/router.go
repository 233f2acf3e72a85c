// Package server assembles the HTTP routes for the menu API.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Lixing-Zhang/chefs-menu/internal/config"
	"github.com/Lixing-Zhang/chefs-menu/internal/handlers"
	"github.com/Lixing-Zhang/chefs-menu/internal/middleware"
	"github.com/Lixing-Zhang/chefs-menu/internal/service"
)

// NewRouter builds the handler tree for the menu API
func NewRouter(cfg *config.Config, menuService *service.MenuService, log *slog.Logger) http.Handler {
	healthHandler := handlers.NewHealthHandler(menuService, log)
	dishHandler := handlers.NewDishHandler(menuService, log)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.APIKeyHeader, middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)

	r.Route("/api/dish", func(r chi.Router) {
		r.Get("/", dishHandler.ListDishes)
		r.Get("/averages", dishHandler.Averages)

		r.Group(func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(cfg.Auth))
			r.Post("/", dishHandler.AddDish)
			r.Delete("/{name}", dishHandler.RemoveDish)
		})
	})

	return r
}
