package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CompleteOrderCommandHandler finishes an in-progress order and archives its
// approved bid within the same transaction.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
	completion services.CompletionService
	publisher  ports.EventPublisher
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		completion: services.NewCompletionService(),
		publisher:  publisher,
	}
}

// Handle processes the completion command and returns the updated order.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (*order.Order, error) {
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
		return nil, errs.NewActionNotAllowedError("complete another client's order")
	}
	if ord.ApprovedBid() == nil {
		return nil, errs.NewActionNotAllowedErrorWithCause("complete the order",
			fmt.Errorf("%s order has no approved bid", ord.Status()))
	}

	approved, err := bidRepo.Get(ctx, *ord.ApprovedBid())
	if err != nil {
		return nil, err
	}

	evts, err := h.completion.Complete(ord, approved)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return nil, err
	}
	if err = bidRepo.Update(ctx, approved); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, evts...)

	return ord, nil
}
