package commands

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrProlongOrderCommandIsNotConstructed = errors.New(
	"ProlongOrderCommand must be created via NewProlongOrderCommand constructor",
)

// ProlongOrderCommand represents a client's request to push their order's
// expiration date further out.
type ProlongOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	clientID     kernel.UUID
	newExpiresAt time.Time

	guard guard.ConstructorGuard
}

// NewProlongOrderCommand creates a command to extend an order's bidding
// window. The minimum-distance rule is enforced by the aggregate.
func NewProlongOrderCommand(orderID, clientID kernel.UUID, newExpiresAt time.Time) (ProlongOrderCommand, error) {
	cmd := ProlongOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
		cmd.setNewExpiresAt(newExpiresAt),
	); err != nil {
		return ProlongOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProlongOrderCommand) Validate() error {
	return c.guard.Validate(ErrProlongOrderCommandIsNotConstructed)
}

// OrderID returns the order to prolong.
func (c ProlongOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the acting client's identifier.
func (c ProlongOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// NewExpiresAt returns the requested expiration date.
func (c ProlongOrderCommand) NewExpiresAt() time.Time {
	return c.newExpiresAt
}

func (c *ProlongOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ProlongOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientID", err)
	}

	c.clientID = clientID
	return nil
}

func (c *ProlongOrderCommand) setNewExpiresAt(newExpiresAt time.Time) error {
	if newExpiresAt.IsZero() {
		return errs.NewValueIsRequiredError("newExpiresAt")
	}

	c.newExpiresAt = newExpiresAt
	return nil
}
