package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrListClientOrdersQueryIsNotConstructed = errors.New(
	"ListClientOrdersQuery must be created via NewListClientOrdersQuery constructor",
)

// ListClientOrdersQuery lists a client's own orders, optionally narrowed to a
// status set. A negative page disables pagination.
type ListClientOrdersQuery struct {
	clientID kernel.UUID
	statuses []order.Status
	page     int

	guard guard.ConstructorGuard
}

// NewListClientOrdersQuery creates a query for a client's order listing.
func NewListClientOrdersQuery(clientID kernel.UUID, statuses []order.Status, page int) (ListClientOrdersQuery, error) {
	if err := clientID.Validate(); err != nil {
		return ListClientOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("clientID", err)
	}
	for _, st := range statuses {
		if err := st.Validate(); err != nil {
			return ListClientOrdersQuery{}, err
		}
	}

	return ListClientOrdersQuery{
		clientID: clientID,
		statuses: statuses,
		page:     page,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListClientOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListClientOrdersQueryIsNotConstructed)
}

// ClientID returns the owning client.
func (q ListClientOrdersQuery) ClientID() kernel.UUID {
	return q.clientID
}

// Statuses returns the optional status filter.
func (q ListClientOrdersQuery) Statuses() []order.Status {
	return q.statuses
}

// Page returns the requested page.
func (q ListClientOrdersQuery) Page() int {
	return q.page
}
