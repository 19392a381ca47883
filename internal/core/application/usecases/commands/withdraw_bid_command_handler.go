package commands

import (
	"context"

	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// WithdrawBidCommandHandler takes a bid back on behalf of its provider.
// Withdrawing the approved bid of an in-progress order reopens the order in
// the same transaction.
type WithdrawBidCommandHandler struct {
	uowFactory UoWFactory
	withdrawal services.WithdrawalService
	publisher  ports.EventPublisher
}

// NewWithdrawBidCommandHandler creates a handler for bid withdrawal.
func NewWithdrawBidCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) WithdrawBidCommandHandler {
	return WithdrawBidCommandHandler{
		uowFactory: uowFactory,
		withdrawal: services.NewWithdrawalService(),
		publisher:  publisher,
	}
}

// Handle processes the withdrawal command and returns the updated bid.
func (h WithdrawBidCommandHandler) Handle(ctx context.Context, cmd WithdrawBidCommand) (*bid.Bid, error) {
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
	if !b.ProviderID().IsEqual(cmd.ProviderID()) {
		return nil, errs.NewActionNotAllowedError("withdraw another provider's bid")
	}

	ord, err := orderRepo.Get(ctx, b.OrderID())
	if err != nil {
		return nil, err
	}

	evts, err := h.withdrawal.Withdraw(ord, b)
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
