package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrSearchOpenOrdersQueryIsNotConstructed = errors.New(
	"SearchOpenOrdersQuery must be created via NewSearchOpenOrdersQuery constructor",
)

// SearchOpenOrdersQuery is a provider's search over orders still open for
// bidding, narrowed by category and area membership. The provider's own
// orders are excluded. Results carry aggregated bid statistics.
type SearchOpenOrdersQuery struct {
	providerID  kernel.UUID
	categoryIDs []kernel.UUID
	areaIDs     []kernel.UUID
	page        int

	guard guard.ConstructorGuard
}

// NewSearchOpenOrdersQuery creates a provider's open-order search. Empty
// category and area sets match everything.
func NewSearchOpenOrdersQuery(
	providerID kernel.UUID,
	categoryIDs []kernel.UUID,
	areaIDs []kernel.UUID,
	page int,
) (SearchOpenOrdersQuery, error) {
	if err := providerID.Validate(); err != nil {
		return SearchOpenOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("providerID", err)
	}

	return SearchOpenOrdersQuery{
		providerID:  providerID,
		categoryIDs: categoryIDs,
		areaIDs:     areaIDs,
		page:        page,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOpenOrdersQueryIsNotConstructed)
}

// ProviderID returns the searching provider.
func (q SearchOpenOrdersQuery) ProviderID() kernel.UUID {
	return q.providerID
}

// CategoryIDs returns the category filter.
func (q SearchOpenOrdersQuery) CategoryIDs() []kernel.UUID {
	return q.categoryIDs
}

// AreaIDs returns the area filter.
func (q SearchOpenOrdersQuery) AreaIDs() []kernel.UUID {
	return q.areaIDs
}

// Page returns the requested page.
func (q SearchOpenOrdersQuery) Page() int {
	return q.page
}
