// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read projections straight from the database and never load
// or mutate aggregates.
package queries

import "encoding/json"

// DefaultPageSize is the page size used when a query gives no override.
const DefaultPageSize = 25

// Pagination describes one page of a result set.
//
// A negative page disables pagination entirely: the full result set is
// returned and no descriptor is exposed to the caller (handlers return a nil
// *Pagination, never an empty descriptor). A zero page means the first page.
type Pagination struct {
	page         int
	pageSize     int
	totalResults int
	pages        int
	disabled     bool
}

// NewPagination computes the page layout for totalResults entries. A pageSize
// of zero or less falls back to DefaultPageSize.
func NewPagination(page, totalResults, pageSize int) Pagination {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	disabled := page < 0
	if page <= 0 {
		page = 1
	}

	pages := 0
	if totalResults > 0 {
		pages = (totalResults + pageSize - 1) / pageSize
	}

	return Pagination{
		page:         page,
		pageSize:     pageSize,
		totalResults: totalResults,
		pages:        pages,
		disabled:     disabled,
	}
}

// Disabled reports whether pagination is switched off.
func (p Pagination) Disabled() bool {
	return p.disabled
}

// Page returns the current page, 1-based.
func (p Pagination) Page() int {
	return p.page
}

// PageSize returns the page size.
func (p Pagination) PageSize() int {
	return p.pageSize
}

// TotalResults returns the total number of matching entries.
func (p Pagination) TotalResults() int {
	return p.totalResults
}

// Pages returns the number of pages, zero when there are no results.
func (p Pagination) Pages() int {
	return p.pages
}

// Offset returns the number of entries preceding the current page, clamped
// to the total so a page beyond range addresses an empty window.
func (p Pagination) Offset() int {
	if p.page <= 1 {
		return 0
	}

	offset := p.pageSize * (p.page - 1)
	if offset > p.totalResults {
		return p.totalResults
	}
	return offset
}

// ResultsOnCurrentPage returns how many entries the current page holds: zero
// beyond the last page, the page size on every full page, and the remainder
// on the last one.
func (p Pagination) ResultsOnCurrentPage() int {
	if p.page > p.pages {
		return 0
	}
	if p.page < p.pages {
		return p.pageSize
	}
	return p.totalResults - p.pageSize*(p.pages-1)
}

// MarshalJSON serializes the descriptor for API responses.
func (p Pagination) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Page                 int `json:"page"`
		PageSize             int `json:"pageSize"`
		TotalResults         int `json:"totalResults"`
		Pages                int `json:"pages"`
		ResultsOnCurrentPage int `json:"resultsOnCurrentPage"`
	}{
		Page:                 p.page,
		PageSize:             p.pageSize,
		TotalResults:         p.totalResults,
		Pages:                p.pages,
		ResultsOnCurrentPage: p.ResultsOnCurrentPage(),
	})
}

// PaginateSlice slices an already loaded result set down to the current
// page. When pagination is disabled the input is returned unchanged.
func PaginateSlice[T any](p Pagination, items []T) []T {
	if p.disabled {
		return items
	}

	from := p.Offset()
	if from > len(items) {
		from = len(items)
	}
	to := from + p.pageSize
	if to > len(items) {
		to = len(items)
	}

	return items[from:to]
}
