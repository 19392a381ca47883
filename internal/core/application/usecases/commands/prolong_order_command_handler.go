package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// ProlongOrderCommandHandler extends an order's bidding window on behalf of
// its owning client.
type ProlongOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewProlongOrderCommandHandler creates a handler for order prolongation.
func NewProlongOrderCommandHandler(uowFactory OrderUoWFactory) ProlongOrderCommandHandler {
	return ProlongOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the prolongation command and returns the updated order.
// Only the owning client may prolong.
func (h ProlongOrderCommandHandler) Handle(ctx context.Context, cmd ProlongOrderCommand) (*order.Order, error) {
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

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if !ord.ClientID().IsEqual(cmd.ClientID()) {
		return nil, errs.NewActionNotAllowedError("prolong another client's order")
	}

	if err = ord.ExtendExpiration(cmd.NewExpiresAt(), time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ord, nil
}
