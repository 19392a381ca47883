package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// SearchOpenOrdersQueryHandler serves the provider-facing order search with
// aggregated bid statistics on each result.
type SearchOpenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewSearchOpenOrdersQueryHandler creates a handler for open-order searches.
func NewSearchOpenOrdersQueryHandler(db *gorm.DB) SearchOpenOrdersQueryHandler {
	return SearchOpenOrdersQueryHandler{db: db}
}

// Handle executes the search. The pagination descriptor is nil when the
// query disabled pagination.
func (h SearchOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query SearchOpenOrdersQuery,
) ([]OrderView, *Pagination, error) {
	if err := query.Validate(); err != nil {
		return nil, nil, err
	}

	providerID := query.ProviderID()
	search := NewOrderSearch(h.db, OrderSearchFilter{
		ExcludeClientID: &providerID,
		Statuses:        []order.Status{order.Placed},
		CategoryIDs:     query.CategoryIDs(),
		AreaIDs:         query.AreaIDs(),
	})
	engine := NewSearchEngine[OrderView](search, query.Page(), DefaultPageSize)

	results, err := engine.AggregateResults(ctx)
	if err != nil {
		return nil, nil, err
	}

	pagination, err := engine.GetPagination(ctx)
	if err != nil {
		return nil, nil, err
	}

	return results, pagination, nil
}
