package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrPlaceBidCommandIsNotConstructed = errors.New(
	"PlaceBidCommand must be created via NewPlaceBidCommand constructor",
)

// PlaceBidCommand represents a provider posting a priced offer on an order.
// The bid always opens as Placed; the comment length limit is applied by the
// handler, which carries the deployment's bid limits.
type PlaceBidCommand struct { //nolint:recvcheck //using for validation
	bidID      kernel.UUID
	orderID    kernel.UUID
	providerID kernel.UUID
	amount     int64
	comment    string

	guard guard.ConstructorGuard
}

// NewPlaceBidCommand creates a command to place a bid.
func NewPlaceBidCommand(
	bidID kernel.UUID,
	orderID kernel.UUID,
	providerID kernel.UUID,
	amount int64,
	comment string,
) (PlaceBidCommand, error) {
	cmd := PlaceBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBidID(bidID),
		cmd.setOrderID(orderID),
		cmd.setProviderID(providerID),
		cmd.setAmount(amount),
	); err != nil {
		return PlaceBidCommand{}, err
	}

	cmd.comment = comment

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceBidCommand) Validate() error {
	return c.guard.Validate(ErrPlaceBidCommandIsNotConstructed)
}

// BidID returns the identifier the new bid will get.
func (c PlaceBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// OrderID returns the order being bid on.
func (c PlaceBidCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProviderID returns the bidding provider's identifier.
func (c PlaceBidCommand) ProviderID() kernel.UUID {
	return c.providerID
}

// Amount returns the offered amount.
func (c PlaceBidCommand) Amount() int64 {
	return c.amount
}

// Comment returns the provider's free-text comment.
func (c PlaceBidCommand) Comment() string {
	return c.comment
}

func (c *PlaceBidCommand) setBidID(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}

	c.bidID = bidID
	return nil
}

func (c *PlaceBidCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceBidCommand) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("providerID", err)
	}

	c.providerID = providerID
	return nil
}

func (c *PlaceBidCommand) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 1, nil)
	}

	c.amount = amount
	return nil
}
