package commands

import (
	"context"

	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/pkg/errs"
)

// ReviseBidCommandHandler changes a bid's offer amount on behalf of its
// provider. The superseded amount lands in the bid's revision history.
type ReviseBidCommandHandler struct {
	uowFactory BidUoWFactory
	limits     bid.Limits
}

// NewReviseBidCommandHandler creates a handler for bid revision.
func NewReviseBidCommandHandler(uowFactory BidUoWFactory, limits bid.Limits) ReviseBidCommandHandler {
	return ReviseBidCommandHandler{
		uowFactory: uowFactory,
		limits:     limits,
	}
}

// Handle processes the revision command and returns the updated bid.
func (h ReviseBidCommandHandler) Handle(ctx context.Context, cmd ReviseBidCommand) (*bid.Bid, error) {
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

	bidRepo := uow.BidRepository()

	b, err := bidRepo.Get(ctx, cmd.BidID())
	if err != nil {
		return nil, err
	}
	if !b.ProviderID().IsEqual(cmd.ProviderID()) {
		return nil, errs.NewActionNotAllowedError("revise another provider's bid")
	}

	if err = b.ReviseAmount(cmd.Amount()); err != nil {
		return nil, err
	}
	if cmd.Comment() != nil {
		if err = b.SetComment(*cmd.Comment(), h.limits); err != nil {
			return nil, err
		}
	}

	if err = bidRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return b, nil
}
