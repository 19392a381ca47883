package order

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when using an improperly initialized Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress")

// Address is the delivery location of an order: a free-text line plus a
// reference to a known area used for provider matching.
type Address struct {
	text   string
	areaID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddress creates an address. Both the text line and the area reference
// are required.
func NewAddress(text string, areaID kernel.UUID) (Address, error) {
	if text == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}
	if err := areaID.Validate(); err != nil {
		return Address{}, errs.NewValueIsRequiredErrorWithCause("address.area", err)
	}

	return Address{
		text:   text,
		areaID: areaID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the address was created via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Text returns the free-text address line.
func (a Address) Text() string {
	return a.text
}

// AreaID returns the referenced area.
func (a Address) AreaID() kernel.UUID {
	return a.areaID
}
