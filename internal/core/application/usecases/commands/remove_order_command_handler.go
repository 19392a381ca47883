package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// RemoveOrderCommandHandler takes an order down and, within the same
// transaction, terminates the bids the removal rules select, so providers
// never keep live bids on an order that stopped accepting them.
type RemoveOrderCommandHandler struct {
	uowFactory UoWFactory
	removal    services.RemovalService
	publisher  ports.EventPublisher
}

// NewRemoveOrderCommandHandler creates a handler for order removal.
func NewRemoveOrderCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		uowFactory: uowFactory,
		removal:    services.NewRemovalService(),
		publisher:  publisher,
	}
}

// Handle processes the removal command and returns the updated order.
func (h RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	bidRepo := uow.BidRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if !ord.ClientID().IsEqual(cmd.ClientID()) {
		return nil, errs.NewActionNotAllowedError("remove another client's order")
	}

	activeBids, err := bidRepo.GetAllActiveForOrder(ctx, ord.ID())
	if err != nil {
		return nil, err
	}

	evts, err := h.removal.Remove(ord, activeBids)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return nil, err
	}
	for _, b := range activeBids {
		if err = bidRepo.Update(ctx, b); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, evts...)

	return ord, nil
}
