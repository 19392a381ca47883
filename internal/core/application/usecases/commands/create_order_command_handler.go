package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/events"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for posting an order.
// Verifies category and area references against the catalog, creates the
// order in Placed status with the default bidding window, and announces it.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.ReferenceCatalog
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order posting.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.ReferenceCatalog,
	publisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		publisher:  publisher,
	}
}

// Handle processes the order posting command and returns the created order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.catalog.VerifyCategories(ctx, cmd.CategoryIDs()); err != nil {
		return nil, err
	}
	if err := h.catalog.VerifyArea(ctx, cmd.AreaID()); err != nil {
		return nil, err
	}

	address, err := order.NewAddress(cmd.AddressText(), cmd.AreaID())
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.ClientID(), cmd.Description(),
		cmd.CategoryIDs(), address, cmd.Budget(), cmd.Urgent(), time.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, events.OrderPlaced{
		OrderID:  newOrder.ID(),
		ClientID: newOrder.ClientID(),
	})

	return newOrder, nil
}
