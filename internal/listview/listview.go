// Package listview holds the filter and pagination state of the
// services list page. It is pure state arithmetic: fetching and
// rendering live elsewhere.
package listview

import (
	"net/url"
	"strconv"

	"github.com/serviciosmx/catalog-admin/internal/catalog"
)

// PageSize is the fixed number of services per page, matching the
// remote API's pagination.
const PageSize = 20

// Pagination describes one page of a counted list.
type Pagination struct {
	Page     int
	PageSize int
	Count    int
}

// NewPagination builds pagination for the given 1-based page and total
// count, clamping the page into the valid range.
func NewPagination(page, count int) Pagination {
	p := Pagination{Page: page, PageSize: PageSize, Count: count}
	return p.Clamp()
}

// TotalPages derives the page count as a ceiling division. An empty
// list still has one (empty) page.
func (p Pagination) TotalPages() int {
	if p.Count <= 0 {
		return 1
	}
	return (p.Count + p.PageSize - 1) / p.PageSize
}

// Clamp returns the pagination with Page forced into [1, TotalPages].
func (p Pagination) Clamp() Pagination {
	if p.PageSize <= 0 {
		p.PageSize = PageSize
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if total := p.TotalPages(); p.Page > total {
		p.Page = total
	}
	return p
}

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a next page exists.
func (p Pagination) HasNext() bool { return p.Page < p.TotalPages() }

// Prev returns the previous page number, clamped at the first page.
func (p Pagination) Prev() int {
	if p.Page <= 1 {
		return 1
	}
	return p.Page - 1
}

// Next returns the next page number, clamped at the last page.
func (p Pagination) Next() int {
	if total := p.TotalPages(); p.Page >= total {
		return total
	}
	return p.Page + 1
}

// State is the full list-view state bound from a page request.
type State struct {
	Filters catalog.ServiceFilters
	Page    int
}

// BindQuery reads the list-view state from request query parameters.
// Changing any filter resets the page to 1: the form carries a
// fingerprint of the filters it was rendered with (_prev), and when the
// submitted filters differ from it the page parameter is discarded.
func BindQuery(query url.Values) State {
	filters := catalog.ServiceFilters{
		Search:   query.Get("search"),
		Category: query.Get("categoria"),
		Active:   query.Get("activo"),
		MinPrice: query.Get("min_precio"),
		MaxPrice: query.Get("max_precio"),
		SortBy:   query.Get("ordenar_por"),
	}

	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	if prev, ok := query["_prev"]; ok && len(prev) > 0 && prev[0] != filters.Fingerprint() {
		page = 1
	}

	return State{Filters: filters, Page: page}
}
