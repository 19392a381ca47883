package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListClientOrdersQueryHandler serves a client's order listing, archived
// history included.
type ListClientOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListClientOrdersQueryHandler creates a handler for client order listings.
func NewListClientOrdersQueryHandler(db *gorm.DB) ListClientOrdersQueryHandler {
	return ListClientOrdersQueryHandler{db: db}
}

// Handle executes the listing. The pagination descriptor is nil when the
// query disabled pagination.
func (h ListClientOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListClientOrdersQuery,
) ([]OrderView, *Pagination, error) {
	if err := query.Validate(); err != nil {
		return nil, nil, err
	}

	clientID := query.ClientID()
	search := NewOrderSearch(h.db, OrderSearchFilter{
		ClientID:        &clientID,
		Statuses:        query.Statuses(),
		IncludeArchived: true,
	})
	engine := NewSearchEngine[OrderView](search, query.Page(), DefaultPageSize)

	results, err := engine.GetResults(ctx)
	if err != nil {
		return nil, nil, err
	}

	pagination, err := engine.GetPagination(ctx)
	if err != nil {
		return nil, nil, err
	}

	return results, pagination, nil
}
