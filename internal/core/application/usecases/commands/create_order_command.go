package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a client's request to post a new order.
// The expiration date and status are not part of the command: a fresh order
// always opens as Placed with the default bidding window.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	clientID    kernel.UUID
	description string
	categoryIDs []kernel.UUID
	addressText string
	areaID      kernel.UUID
	budget      *int64
	urgent      bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to post a new order. The category
// set must be non-empty; reference existence is checked by the handler.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	description string,
	categoryIDs []kernel.UUID,
	addressText string,
	areaID kernel.UUID,
	budget *int64,
	urgent bool,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
		cmd.setDescription(description),
		cmd.setCategoryIDs(categoryIDs),
		cmd.setAddress(addressText, areaID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.budget = budget
	cmd.urgent = urgent

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will get.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the posting client's identifier.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Description returns the service description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// CategoryIDs returns the requested category set.
func (c CreateOrderCommand) CategoryIDs() []kernel.UUID {
	return c.categoryIDs
}

// AddressText returns the free-text address line.
func (c CreateOrderCommand) AddressText() string {
	return c.addressText
}

// AreaID returns the referenced area.
func (c CreateOrderCommand) AreaID() kernel.UUID {
	return c.areaID
}

// Budget returns the optional budget.
func (c CreateOrderCommand) Budget() *int64 {
	return c.budget
}

// Urgent returns the urgency flag.
func (c CreateOrderCommand) Urgent() bool {
	return c.urgent
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientID", err)
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}

func (c *CreateOrderCommand) setCategoryIDs(categoryIDs []kernel.UUID) error {
	if len(categoryIDs) == 0 {
		return errs.NewValueIsRequiredError("categories")
	}

	c.categoryIDs = categoryIDs
	return nil
}

func (c *CreateOrderCommand) setAddress(addressText string, areaID kernel.UUID) error {
	if addressText == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if err := areaID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("areaID", err)
	}

	c.addressText = addressText
	c.areaID = areaID
	return nil
}
