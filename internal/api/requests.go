package api

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/serviciosmx/catalog-admin/internal/api/views"
	"github.com/serviciosmx/catalog-admin/internal/catalog"
	"github.com/serviciosmx/catalog-admin/internal/platform/catalogapi"
)

// RequestsHandler renders the admin view over all submitted requests,
// independent of any single service.
type RequestsHandler struct {
	requests *catalogapi.RequestsClient
	renderer *views.Renderer
	logger   *slog.Logger
}

// NewRequestsHandler creates a RequestsHandler.
func NewRequestsHandler(requests *catalogapi.RequestsClient, renderer *views.Renderer, logger *slog.Logger) *RequestsHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for RequestsHandler")
	}

	return &RequestsHandler{
		requests: requests,
		renderer: renderer,
		logger:   logger.With(slog.String("component", "requests_handler")),
	}
}

// requestsPageData feeds the requests_list template.
type requestsPageData struct {
	Title        string
	Flash        string
	Error        string
	StatusFilter string
	Statuses     []catalog.RequestStatus
	Requests     []catalog.Request
}

// ListRequests handles GET /solicitudes: every request in the catalog,
// optionally filtered by status.
func (h *RequestsHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	statusFilter := r.URL.Query().Get("estatus")

	data := requestsPageData{
		Title:        "Solicitudes",
		Flash:        r.URL.Query().Get("flash"),
		Error:        r.URL.Query().Get("error"),
		StatusFilter: statusFilter,
		Statuses:     catalog.RequestStatuses(),
	}

	query := url.Values{}
	if catalog.RequestStatus(statusFilter).IsValid() {
		query.Set("estatus", statusFilter)
	}

	page, err := h.requests.List(r.Context(), query)
	if err != nil {
		data.Error = errorMessage(err)
		h.logger.Error("failed to list requests", slog.String("error", err.Error()))
		h.renderer.Render(w, http.StatusOK, "requests_list", data)
		return
	}

	data.Requests = page.Results
	h.renderer.Render(w, http.StatusOK, "requests_list", data)
}

// UpdateRequestStatus handles POST /solicitudes/{id}/estatus: moves a
// request to a new status via a partial update.
func (h *RequestsHandler) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	status := catalog.RequestStatus(r.PostForm.Get("estatus"))
	if !status.IsValid() {
		redirect(w, r, "/solicitudes?"+url.Values{"error": {"El estatus no es válido"}}.Encode())
		return
	}

	if _, err := h.requests.Patch(r.Context(), id, map[string]any{"estatus": status}); err != nil {
		h.logger.Error("failed to update request status",
			slog.Int64("request_id", id),
			slog.String("status", string(status)),
			slog.String("error", err.Error()))
		redirect(w, r, "/solicitudes?"+url.Values{"error": {errorMessage(err)}}.Encode())
		return
	}

	redirect(w, r, "/solicitudes?"+url.Values{"flash": {"Solicitud actualizada correctamente"}}.Encode())
}

// DeleteRequest handles POST /solicitudes/{id}/eliminar. The same
// confirmation contract as service deletion applies: no confirm, no
// DELETE.
func (h *RequestsHandler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	if r.PostForm.Get("confirm") != "true" {
		redirect(w, r, "/solicitudes")
		return
	}

	if err := h.requests.Delete(r.Context(), id); err != nil {
		h.logger.Error("failed to delete request",
			slog.Int64("request_id", id),
			slog.String("error", err.Error()))
		redirect(w, r, "/solicitudes?"+url.Values{"error": {errorMessage(err)}}.Encode())
		return
	}

	redirect(w, r, "/solicitudes?"+url.Values{"flash": {"Solicitud eliminada correctamente"}}.Encode())
}

// pathID extracts and parses the {id} route parameter, writing a 404
// when it is not a number.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return 0, false
	}
	return id, true
}
