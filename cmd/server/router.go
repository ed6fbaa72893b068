package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/serviciosmx/catalog-admin/internal/api"
	apiMiddleware "github.com/serviciosmx/catalog-admin/internal/api/middleware"
)

// setupRouter creates the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	pagesHandler := api.NewPagesHandler(app.services, app.renderer, app.logger)
	requestsHandler := api.NewRequestsHandler(app.requests, app.renderer, app.logger)

	r.Get("/", pagesHandler.ListServices)

	r.Route("/servicios", func(r chi.Router) {
		r.Get("/", pagesHandler.ListServices)
		r.Get("/crear", pagesHandler.NewService)
		r.Post("/crear", pagesHandler.CreateService)
		r.Get("/{id}", pagesHandler.ShowService)
		r.Get("/{id}/editar", pagesHandler.EditService)
		r.Post("/{id}/editar", pagesHandler.UpdateService)
		r.Post("/{id}/eliminar", pagesHandler.DeleteService)
		r.Post("/{id}/solicitudes", pagesHandler.CreateRequest)
	})

	r.Route("/solicitudes", func(r chi.Router) {
		r.Get("/", requestsHandler.ListRequests)
		r.Post("/{id}/estatus", requestsHandler.UpdateRequestStatus)
		r.Post("/{id}/eliminar", requestsHandler.DeleteRequest)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
