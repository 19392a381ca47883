package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrListOrderBidsQueryIsNotConstructed = errors.New(
	"ListOrderBidsQuery must be created via NewListOrderBidsQuery constructor",
)

// ListOrderBidsQuery lists the bids on one order for its client. Rejected
// bids are left out; the client already acted on those.
type ListOrderBidsQuery struct {
	orderID kernel.UUID
	page    int

	guard guard.ConstructorGuard
}

// NewListOrderBidsQuery creates a query for an order's bid listing.
func NewListOrderBidsQuery(orderID kernel.UUID, page int) (ListOrderBidsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ListOrderBidsQuery{}, err
	}

	return ListOrderBidsQuery{
		orderID: orderID,
		page:    page,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrderBidsQuery) Validate() error {
	return q.guard.Validate(ErrListOrderBidsQueryIsNotConstructed)
}

// OrderID returns the order whose bids are listed.
func (q ListOrderBidsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Page returns the requested page.
func (q ListOrderBidsQuery) Page() int {
	return q.page
}
