// Package api provides the HTTP handlers for the admin frontend pages.
package api

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/serviciosmx/catalog-admin/internal/api/views"
	"github.com/serviciosmx/catalog-admin/internal/catalog"
	"github.com/serviciosmx/catalog-admin/internal/forms"
	"github.com/serviciosmx/catalog-admin/internal/listview"
	"github.com/serviciosmx/catalog-admin/internal/platform/catalogapi"
)

// PagesHandler renders the admin pages. Every data operation goes
// through the injected resource client; the handler owns no state of
// its own beyond one page request.
type PagesHandler struct {
	services *catalogapi.ServicesClient
	renderer *views.Renderer
	logger   *slog.Logger
}

// NewPagesHandler creates a PagesHandler.
func NewPagesHandler(services *catalogapi.ServicesClient, renderer *views.Renderer, logger *slog.Logger) *PagesHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PagesHandler")
	}

	return &PagesHandler{
		services: services,
		renderer: renderer,
		logger:   logger.With(slog.String("component", "pages_handler")),
	}
}

// listPageData feeds the services_list template.
type listPageData struct {
	Title       string
	Flash       string
	Error       string
	Filters     catalog.ServiceFilters
	Categories  []catalog.Category
	Services    []catalog.Service
	Pagination  listview.Pagination
	Fingerprint string
	PrevQuery   string
	NextQuery   string
}

// formPageData feeds the service_form template.
type formPageData struct {
	Title       string
	Flash       string
	Error       string
	Heading     string
	Action      string
	Submit      string
	Form        forms.ServiceForm
	FieldErrors forms.Errors
	Categories  []catalog.Category
}

// detailPageData feeds the service_detail template.
type detailPageData struct {
	Title               string
	Flash               string
	Error               string
	Service             *catalog.Service
	Requests            []catalog.Request
	RequestsUnavailable bool
	RequestForm         forms.RequestForm
	RequestErrors       forms.Errors
}

// ListServices handles GET /servicios: the filterable, paginated list.
func (h *PagesHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	state := listview.BindQuery(r.URL.Query())

	data := listPageData{
		Title:       "Servicios",
		Flash:       r.URL.Query().Get("flash"),
		Error:       r.URL.Query().Get("error"),
		Filters:     state.Filters,
		Categories:  catalog.Categories(),
		Fingerprint: state.Filters.Fingerprint(),
	}

	page, err := h.services.List(r.Context(), state.Filters, state.Page)
	if err != nil {
		data.Error = errorMessage(err)
		h.logger.Error("failed to list services",
			slog.Int("page", state.Page),
			slog.String("error", err.Error()))
		h.renderer.Render(w, http.StatusOK, "services_list", data)
		return
	}

	data.Services = page.Results
	data.Pagination = listview.NewPagination(state.Page, page.Count)
	data.PrevQuery = state.Filters.Query(data.Pagination.Prev()).Encode()
	data.NextQuery = state.Filters.Query(data.Pagination.Next()).Encode()

	h.renderer.Render(w, http.StatusOK, "services_list", data)
}

// NewService handles GET /servicios/crear: an empty creation form.
func (h *PagesHandler) NewService(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "service_form", formPageData{
		Title:      "Crear Servicio",
		Heading:    "Crear Servicio",
		Action:     "/servicios/crear",
		Submit:     "Crear Servicio",
		Form:       forms.NewServiceForm(),
		Categories: catalog.Categories(),
	})
}

// CreateService handles POST /servicios/crear. Validation failures
// re-render the form with field errors and issue no network call.
func (h *PagesHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := forms.ServiceFormFromValues(r.PostForm)
	data := formPageData{
		Title:      "Crear Servicio",
		Heading:    "Crear Servicio",
		Action:     "/servicios/crear",
		Submit:     "Crear Servicio",
		Form:       form,
		Categories: catalog.Categories(),
	}

	if errs := form.Validate(); !errs.Valid() {
		data.FieldErrors = errs
		h.renderer.Render(w, http.StatusUnprocessableEntity, "service_form", data)
		return
	}

	input, err := form.Payload()
	if err != nil {
		data.Error = "El formulario contiene valores inválidos"
		h.renderer.Render(w, http.StatusUnprocessableEntity, "service_form", data)
		return
	}

	svc, err := h.services.Create(r.Context(), input)
	if err != nil {
		data.Error = errorMessage(err)
		h.logger.Error("failed to create service", slog.String("error", err.Error()))
		h.renderer.Render(w, http.StatusOK, "service_form", data)
		return
	}

	redirect(w, r, detailPath(svc.ID, "Servicio creado correctamente"))
}

// ShowService handles GET /servicios/{id}: the detail page with the
// service's requests and the visitor request form. The requests fetch
// is secondary: on failure the page still renders, without requests.
func (h *PagesHandler) ShowService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	svc, err := h.services.Get(r.Context(), id)
	if err != nil {
		h.renderListError(w, r, err)
		return
	}

	data := detailPageData{
		Title:       svc.Name,
		Flash:       r.URL.Query().Get("flash"),
		Service:     svc,
		RequestForm: forms.NewRequestForm(),
	}
	h.loadRequests(r, id, &data)

	h.renderer.Render(w, http.StatusOK, "service_detail", data)
}

// EditService handles GET /servicios/{id}/editar: the edit form
// prefilled with the current service.
func (h *PagesHandler) EditService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	svc, err := h.services.Get(r.Context(), id)
	if err != nil {
		h.renderListError(w, r, err)
		return
	}

	h.renderer.Render(w, http.StatusOK, "service_form", formPageData{
		Title:      "Editar Servicio",
		Heading:    "Editar Servicio",
		Action:     editPath(id),
		Submit:     "Actualizar Servicio",
		Form:       forms.ServiceFormFromService(svc),
		Categories: catalog.Categories(),
	})
}

// UpdateService handles POST /servicios/{id}/editar.
func (h *PagesHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := forms.ServiceFormFromValues(r.PostForm)
	data := formPageData{
		Title:      "Editar Servicio",
		Heading:    "Editar Servicio",
		Action:     editPath(id),
		Submit:     "Actualizar Servicio",
		Form:       form,
		Categories: catalog.Categories(),
	}

	if errs := form.Validate(); !errs.Valid() {
		data.FieldErrors = errs
		h.renderer.Render(w, http.StatusUnprocessableEntity, "service_form", data)
		return
	}

	input, err := form.Payload()
	if err != nil {
		data.Error = "El formulario contiene valores inválidos"
		h.renderer.Render(w, http.StatusUnprocessableEntity, "service_form", data)
		return
	}

	if _, err := h.services.Update(r.Context(), id, input); err != nil {
		data.Error = errorMessage(err)
		h.logger.Error("failed to update service",
			slog.Int64("service_id", id),
			slog.String("error", err.Error()))
		h.renderer.Render(w, http.StatusOK, "service_form", data)
		return
	}

	redirect(w, r, detailPath(id, "Servicio actualizado correctamente"))
}

// DeleteService handles POST /servicios/{id}/eliminar. Without an
// explicit confirmation no DELETE is ever issued; the list is left
// untouched.
func (h *PagesHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	if r.PostForm.Get("confirm") != "true" {
		redirect(w, r, "/servicios")
		return
	}

	if err := h.services.Delete(r.Context(), id); err != nil {
		h.logger.Error("failed to delete service",
			slog.Int64("service_id", id),
			slog.String("error", err.Error()))
		redirect(w, r, "/servicios?"+url.Values{"error": {errorMessage(err)}}.Encode())
		return
	}

	redirect(w, r, "/servicios?"+url.Values{"flash": {"Servicio eliminado correctamente"}}.Encode())
}

// CreateRequest handles POST /servicios/{id}/solicitudes: a visitor
// submitting a request for the service.
func (h *PagesHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := forms.RequestFormFromValues(r.PostForm)
	if errs := form.Validate(); !errs.Valid() {
		h.renderDetailWithForm(w, r, id, form, errs, "", http.StatusUnprocessableEntity)
		return
	}

	input, err := form.Payload()
	if err != nil {
		h.renderDetailWithForm(w, r, id, form, forms.Errors{}, "El formulario contiene valores inválidos", http.StatusUnprocessableEntity)
		return
	}

	if _, err := h.services.CreateRequest(r.Context(), id, input); err != nil {
		h.logger.Error("failed to create request",
			slog.Int64("service_id", id),
			slog.String("error", err.Error()))
		h.renderDetailWithForm(w, r, id, form, forms.Errors{}, errorMessage(err), http.StatusOK)
		return
	}

	redirect(w, r, detailPath(id, "Solicitud creada correctamente"))
}

// loadRequests fills the detail page's request list. Failures are
// logged but never interrupt the primary view.
func (h *PagesHandler) loadRequests(r *http.Request, id int64, data *detailPageData) {
	page, err := h.services.ListRequests(r.Context(), id)
	if err != nil {
		h.logger.Warn("failed to fetch requests for service",
			slog.Int64("service_id", id),
			slog.String("error", err.Error()))
		data.RequestsUnavailable = true
		return
	}
	data.Requests = page.Results
}

// renderDetailWithForm re-renders the detail page around a submitted
// request form, refetching the service it belongs to.
func (h *PagesHandler) renderDetailWithForm(
	w http.ResponseWriter,
	r *http.Request,
	id int64,
	form forms.RequestForm,
	errs forms.Errors,
	errMsg string,
	status int,
) {
	svc, err := h.services.Get(r.Context(), id)
	if err != nil {
		h.renderListError(w, r, err)
		return
	}

	data := detailPageData{
		Title:         svc.Name,
		Error:         errMsg,
		Service:       svc,
		RequestForm:   form,
		RequestErrors: errs,
	}
	h.loadRequests(r, id, &data)

	h.renderer.Render(w, status, "service_detail", data)
}

// renderListError falls back to the list page with an inline alert when
// a primary fetch fails.
func (h *PagesHandler) renderListError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("failed to fetch service", slog.String("error", err.Error()))

	status := http.StatusBadGateway
	var apiErr *catalogapi.APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		status = http.StatusNotFound
	}

	h.renderer.Render(w, status, "services_list", listPageData{
		Title:      "Servicios",
		Error:      errorMessage(err),
		Categories: catalog.Categories(),
	})
}

// errorMessage surfaces the normalized message of an adapter failure,
// or a generic one for anything else.
func errorMessage(err error) string {
	var apiErr *catalogapi.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return catalogapi.MsgGenericError
}

func detailPath(id int64, flash string) string {
	path := "/servicios/" + strconv.FormatInt(id, 10)
	if flash != "" {
		path += "?" + url.Values{"flash": {flash}}.Encode()
	}
	return path
}

func editPath(id int64) string {
	return "/servicios/" + strconv.FormatInt(id, 10) + "/editar"
}

// redirect sends the browser to a new page after a form post.
func redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}
