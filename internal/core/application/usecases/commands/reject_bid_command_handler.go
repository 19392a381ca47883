package commands

import (
	"context"

	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// RejectBidCommandHandler turns a bid down on behalf of the order's client.
// If the bid was the approved one, the order reverts to Placed in the same
// transaction.
type RejectBidCommandHandler struct {
	uowFactory UoWFactory
	approval   services.ApprovalService
	publisher  ports.EventPublisher
}

// NewRejectBidCommandHandler creates a handler for bid rejection.
func NewRejectBidCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) RejectBidCommandHandler {
	return RejectBidCommandHandler{
		uowFactory: uowFactory,
		approval:   services.NewApprovalService(),
		publisher:  publisher,
	}
}

// Handle processes the rejection command and returns the rejected bid.
func (h RejectBidCommandHandler) Handle(ctx context.Context, cmd RejectBidCommand) (*bid.Bid, error) {
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

	b, err := bidRepo.Get(ctx, cmd.BidID())
	if err != nil {
		return nil, err
	}

	ord, err := orderRepo.Get(ctx, b.OrderID())
	if err != nil {
		return nil, err
	}
	if !ord.ClientID().IsEqual(cmd.ClientID()) {
		return nil, errs.NewActionNotAllowedError("reject a bid on another client's order")
	}

	evts, err := h.approval.Reject(ord, b)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return nil, err
	}
	if err = bidRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, evts...)

	return b, nil
}
