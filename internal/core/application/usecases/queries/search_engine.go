package queries

import (
	"context"
)

// Searcher supplies the filter-specific parts of a search: counting matches
// and fetching one window of results. Offset and limit are zero when
// pagination is disabled, meaning the whole result set.
//
// AggregateResults runs the enriched variant of the search (joined
// statistics such as bid counts). Searchers without an aggregation strategy
// must return errs.QueryUnsupportedError instead of falling back to plain
// results.
type Searcher[R any] interface {
	CountResults(ctx context.Context) (int, error)
	FindResults(ctx context.Context, offset, limit int) ([]R, error)
	AggregateResults(ctx context.Context, offset, limit int) ([]R, error)
}

// SearchEngine couples a Searcher with pagination. It builds the Pagination
// descriptor lazily from the match count and caches it, so a search issues at
// most one count query no matter how often the descriptor is read.
type SearchEngine[R any] struct {
	searcher    Searcher[R]
	currentPage int
	pageSize    int

	pagination *Pagination
}

// NewSearchEngine creates a search over the given searcher. A negative
// currentPage disables pagination; a pageSize of zero or less falls back to
// DefaultPageSize.
func NewSearchEngine[R any](searcher Searcher[R], currentPage, pageSize int) *SearchEngine[R] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &SearchEngine[R]{
		searcher:    searcher,
		currentPage: currentPage,
		pageSize:    pageSize,
	}
}

// PaginationDisabled reports whether the search returns the full result set.
func (e *SearchEngine[R]) PaginationDisabled() bool {
	return e.currentPage < 0
}

// GetPagination returns the cached page descriptor, counting matches on first
// use. Returns nil when pagination is disabled.
func (e *SearchEngine[R]) GetPagination(ctx context.Context) (*Pagination, error) {
	if e.PaginationDisabled() {
		return nil, nil
	}
	if e.pagination != nil {
		return e.pagination, nil
	}

	total, err := e.searcher.CountResults(ctx)
	if err != nil {
		return nil, err
	}

	p := NewPagination(e.currentPage, total, e.pageSize)
	e.pagination = &p
	return e.pagination, nil
}

// GetResults fetches the current page of plain results, or everything when
// pagination is disabled.
func (e *SearchEngine[R]) GetResults(ctx context.Context) ([]R, error) {
	offset, limit, err := e.window(ctx)
	if err != nil {
		return nil, err
	}

	return e.searcher.FindResults(ctx, offset, limit)
}

// AggregateResults fetches the current page of enriched results. Fails with
// errs.QueryUnsupported when the searcher has no aggregation strategy.
func (e *SearchEngine[R]) AggregateResults(ctx context.Context) ([]R, error) {
	offset, limit, err := e.window(ctx)
	if err != nil {
		return nil, err
	}

	return e.searcher.AggregateResults(ctx, offset, limit)
}

func (e *SearchEngine[R]) window(ctx context.Context) (offset, limit int, err error) {
	if e.PaginationDisabled() {
		return 0, 0, nil
	}

	p, err := e.GetPagination(ctx)
	if err != nil {
		return 0, 0, err
	}

	return p.Offset(), p.PageSize(), nil
}
