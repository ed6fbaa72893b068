package catalog

import (
	"net/url"
	"strconv"
)

// Sort keys accepted by the list endpoint's ordenar_por parameter.
const (
	SortPriceAsc  = "precio_asc"
	SortPriceDesc = "precio_desc"
	SortDateAsc   = "fecha_asc"
	SortDateDesc  = "fecha_desc"
)

// ServiceFilters holds the optional criteria for listing services. An
// empty string means "no constraint"; values are kept as strings because
// they travel straight from form inputs to query parameters, with the
// remote API doing the authoritative parsing.
type ServiceFilters struct {
	Search   string
	Category string
	Active   string
	MinPrice string
	MaxPrice string
	SortBy   string
}

// IsZero reports whether no criterion is set.
func (f ServiceFilters) IsZero() bool {
	return f == ServiceFilters{}
}

// Query encodes the filters and page into the query parameters the list
// endpoint expects. Empty criteria are omitted entirely, and page is
// only sent when beyond the first page, so an unfiltered first-page
// fetch carries no parameters at all.
func (f ServiceFilters) Query(page int) url.Values {
	params := url.Values{}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Category != "" {
		params.Set("categoria", f.Category)
	}
	if f.Active != "" {
		params.Set("activo", f.Active)
	}
	if f.MinPrice != "" {
		params.Set("min_precio", f.MinPrice)
	}
	if f.MaxPrice != "" {
		params.Set("max_precio", f.MaxPrice)
	}
	if f.SortBy != "" {
		params.Set("ordenar_por", f.SortBy)
	}
	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	}
	return params
}

// Fingerprint returns a stable encoding of the filter criteria, used to
// detect whether a submitted filter set differs from the one a page was
// rendered with.
func (f ServiceFilters) Fingerprint() string {
	return f.Query(1).Encode()
}
