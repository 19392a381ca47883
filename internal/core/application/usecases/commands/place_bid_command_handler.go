package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/events"
	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// PlaceBidCommandHandler posts a provider's offer on an open order.
//
// Placement rules:
//   - The order must exist, be Placed, and not be archived
//   - A client cannot bid on their own order
//   - A provider keeps at most one non-removed bid per order; a second
//     placement is rejected with ObjectAlreadyExists
type PlaceBidCommandHandler struct {
	uowFactory UoWFactory
	limits     bid.Limits
	publisher  ports.EventPublisher
}

// NewPlaceBidCommandHandler creates a handler for bid placement. The limits
// carry the deployment's comment length bound.
func NewPlaceBidCommandHandler(uowFactory UoWFactory, limits bid.Limits, publisher ports.EventPublisher) PlaceBidCommandHandler {
	return PlaceBidCommandHandler{
		uowFactory: uowFactory,
		limits:     limits,
		publisher:  publisher,
	}
}

// Handle processes the placement command and returns the created bid.
func (h PlaceBidCommandHandler) Handle(ctx context.Context, cmd PlaceBidCommand) (*bid.Bid, error) {
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
	if ord.Status() != order.Placed || ord.Archived() {
		return nil, errs.NewActionNotAllowedErrorWithCause("bid on the order",
			fmt.Errorf("order is not open for bidding"))
	}
	if ord.ClientID().IsEqual(cmd.ProviderID()) {
		return nil, errs.NewActionNotAllowedError("bid on your own order")
	}

	existing, err := bidRepo.GetForOrderAndProvider(ctx, cmd.OrderID(), cmd.ProviderID())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewObjectAlreadyExistsError("bid", existing.ID())
	}

	newBid, err := bid.NewBid(
		cmd.BidID(), cmd.OrderID(), cmd.ProviderID(),
		cmd.Amount(), cmd.Comment(), h.limits, time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = bidRepo.Add(ctx, newBid); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, events.BidPlaced{
		BidID:      newBid.ID(),
		OrderID:    newBid.OrderID(),
		ProviderID: newBid.ProviderID(),
		Amount:     newBid.Amount(),
	})

	return newBid, nil
}
