package queries

import (
	"context"

	"marketplace/internal/core/domain/model/bid"

	"gorm.io/gorm"
)

// ListOrderBidsQueryHandler serves the bid listing of one order.
type ListOrderBidsQueryHandler struct {
	db *gorm.DB
}

// NewListOrderBidsQueryHandler creates a handler for order bid listings.
func NewListOrderBidsQueryHandler(db *gorm.DB) ListOrderBidsQueryHandler {
	return ListOrderBidsQueryHandler{db: db}
}

// Handle executes the listing. The pagination descriptor is nil when the
// query disabled pagination.
func (h ListOrderBidsQueryHandler) Handle(
	ctx context.Context,
	query ListOrderBidsQuery,
) ([]BidView, *Pagination, error) {
	if err := query.Validate(); err != nil {
		return nil, nil, err
	}

	orderID := query.OrderID()
	search := NewBidSearch(h.db, BidSearchFilter{
		OrderID:         &orderID,
		ExcludeStatuses: []bid.Status{bid.Rejected},
	})
	engine := NewSearchEngine[BidView](search, query.Page(), DefaultPageSize)

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
