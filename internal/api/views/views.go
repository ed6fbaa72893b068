// Package views renders the HTML pages of the admin frontend from
// embedded templates.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// pages lists every page template; each is parsed together with the
// shared layout into its own template set.
var pages = []string{
	"services_list",
	"service_detail",
	"service_form",
	"requests_list",
}

// Renderer holds the parsed template sets and writes pages to HTTP
// responses.
type Renderer struct {
	templates map[string]*template.Template
	logger    *slog.Logger
}

// NewRenderer parses the embedded templates.
func NewRenderer(logger *slog.Logger) (*Renderer, error) {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for views.Renderer")
	}

	funcs := template.FuncMap{
		"money": formatMoney,
		"date":  formatDate,
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New("layout.tmpl").Funcs(funcs).ParseFS(
			templateFS,
			"templates/layout.tmpl",
			"templates/"+page+".tmpl",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = tmpl
	}

	return &Renderer{
		templates: templates,
		logger:    logger.With(slog.String("component", "renderer")),
	}, nil
}

// Render writes the named page with the given data and status code.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) {
	tmpl, ok := r.templates[page]
	if !ok {
		r.logger.Error("unknown page template", slog.String("page", page))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout.tmpl", data); err != nil {
		r.logger.Error("failed to render page",
			slog.String("page", page),
			slog.String("error", err.Error()))
	}
}

// formatMoney renders a price in Mexican pesos.
func formatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f MXN", amount)
}

// formatDate renders a timestamp for display, or "-" when unset.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}
