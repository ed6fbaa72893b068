// Package main implements the entry point for the catalog admin
// frontend, a server-rendered UI over the remote services catalog API.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/serviciosmx/catalog-admin/internal/config"
	"github.com/serviciosmx/catalog-admin/internal/platform/logger"
)

// main initializes configuration, logging and the application
// dependencies, then runs the HTTP server until shutdown.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging and wires the
// application components.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	slog.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("api_base_url", config.ResolveBaseURL(cfg.API.BaseURL)))

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to build application: %w", err)
	}

	return app, nil
}
