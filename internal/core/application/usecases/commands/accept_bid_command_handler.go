package commands

import (
	"context"

	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// AcceptBidCommandHandler accepts a bid on behalf of the order's client. The
// bid moves to Approved and the order to InProgress within one transaction.
type AcceptBidCommandHandler struct {
	uowFactory UoWFactory
	approval   services.ApprovalService
	publisher  ports.EventPublisher
}

// NewAcceptBidCommandHandler creates a handler for bid acceptance.
func NewAcceptBidCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) AcceptBidCommandHandler {
	return AcceptBidCommandHandler{
		uowFactory: uowFactory,
		approval:   services.NewApprovalService(),
		publisher:  publisher,
	}
}

// Handle processes the acceptance command and returns the approved bid.
func (h AcceptBidCommandHandler) Handle(ctx context.Context, cmd AcceptBidCommand) (*bid.Bid, error) {
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
		return nil, errs.NewActionNotAllowedError("accept a bid on another client's order")
	}

	evts, err := h.approval.Approve(ord, b)
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
