package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrListProviderBidsQueryIsNotConstructed = errors.New(
	"ListProviderBidsQuery must be created via NewListProviderBidsQuery constructor",
)

// ListProviderBidsQuery lists a provider's own bids, split by the archived
// flag and optionally narrowed to a status set.
type ListProviderBidsQuery struct {
	providerID kernel.UUID
	archived   bool
	statuses   []bid.Status
	page       int

	guard guard.ConstructorGuard
}

// NewListProviderBidsQuery creates a query for a provider's bid listing.
func NewListProviderBidsQuery(
	providerID kernel.UUID,
	archived bool,
	statuses []bid.Status,
	page int,
) (ListProviderBidsQuery, error) {
	if err := providerID.Validate(); err != nil {
		return ListProviderBidsQuery{}, errs.NewValueIsRequiredErrorWithCause("providerID", err)
	}
	for _, st := range statuses {
		if err := st.Validate(); err != nil {
			return ListProviderBidsQuery{}, err
		}
	}

	return ListProviderBidsQuery{
		providerID: providerID,
		archived:   archived,
		statuses:   statuses,
		page:       page,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListProviderBidsQuery) Validate() error {
	return q.guard.Validate(ErrListProviderBidsQueryIsNotConstructed)
}

// ProviderID returns the owning provider.
func (q ListProviderBidsQuery) ProviderID() kernel.UUID {
	return q.providerID
}

// Archived returns which side of the archive split is listed.
func (q ListProviderBidsQuery) Archived() bool {
	return q.archived
}

// Statuses returns the optional status filter.
func (q ListProviderBidsQuery) Statuses() []bid.Status {
	return q.statuses
}

// Page returns the requested page.
func (q ListProviderBidsQuery) Page() int {
	return q.page
}
