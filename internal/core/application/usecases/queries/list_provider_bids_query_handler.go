package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListProviderBidsQueryHandler serves a provider's bid listing.
type ListProviderBidsQueryHandler struct {
	db *gorm.DB
}

// NewListProviderBidsQueryHandler creates a handler for provider bid listings.
func NewListProviderBidsQueryHandler(db *gorm.DB) ListProviderBidsQueryHandler {
	return ListProviderBidsQueryHandler{db: db}
}

// Handle executes the listing. The pagination descriptor is nil when the
// query disabled pagination.
func (h ListProviderBidsQueryHandler) Handle(
	ctx context.Context,
	query ListProviderBidsQuery,
) ([]BidView, *Pagination, error) {
	if err := query.Validate(); err != nil {
		return nil, nil, err
	}

	providerID := query.ProviderID()
	archived := query.Archived()
	search := NewBidSearch(h.db, BidSearchFilter{
		ProviderID: &providerID,
		Statuses:   query.Statuses(),
		Archived:   &archived,
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
