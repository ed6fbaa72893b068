package main

import (
	"log/slog"

	"github.com/serviciosmx/catalog-admin/internal/api/views"
	"github.com/serviciosmx/catalog-admin/internal/config"
	"github.com/serviciosmx/catalog-admin/internal/platform/catalogapi"
)

// application holds the shared dependencies of the frontend: the
// resolved configuration, the logger, the catalog API resource clients
// and the template renderer. Handlers receive what they need from here.
type application struct {
	config   *config.Config
	logger   *slog.Logger
	services *catalogapi.ServicesClient
	requests *catalogapi.RequestsClient
	renderer *views.Renderer
}

// newApplication wires the application components from configuration.
// The base URL is normalized before the gateway client ever sees it, so
// every request path joins against a scheme-qualified "/api" root.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	client := catalogapi.NewClient(catalogapi.ClientConfig{
		BaseURL: config.ResolveBaseURL(cfg.API.BaseURL),
		Logger:  logger,
	})

	renderer, err := views.NewRenderer(logger)
	if err != nil {
		return nil, err
	}

	return &application{
		config:   cfg,
		logger:   logger,
		services: catalogapi.NewServicesClient(client),
		requests: catalogapi.NewRequestsClient(client),
		renderer: renderer,
	}, nil
}
