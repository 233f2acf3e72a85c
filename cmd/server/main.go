package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lixing-Zhang/chefs-menu/internal/config"
	"github.com/Lixing-Zhang/chefs-menu/internal/repository"
	"github.com/Lixing-Zhang/chefs-menu/internal/server"
	"github.com/Lixing-Zhang/chefs-menu/internal/service"
	"github.com/Lixing-Zhang/chefs-menu/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting chef's menu api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// The menu lives in memory for the lifetime of the process
	dishRepo := repository.NewInMemoryDishRepository()
	menuService := service.NewMenuService(dishRepo)

	if cfg.Menu.SeedSample {
		added, err := menuService.SeedSample(context.Background())
		if err != nil {
			log.Error("failed to seed sample menu", "error", err)
			os.Exit(1)
		}
		log.Info("sample menu loaded", "dishes", added)
	}

	addr := cfg.Address()
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.NewRouter(cfg, menuService, log),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
