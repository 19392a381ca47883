package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/services"
)

// ArchiveExpiredOrdersCommandHandler archives every Placed order whose
// expiration date passed and terminates the remaining active bids on each.
// The whole batch commits as one transaction.
type ArchiveExpiredOrdersCommandHandler struct {
	uowFactory UoWFactory
	removal    services.RemovalService
}

// NewArchiveExpiredOrdersCommandHandler creates a handler for the sweep.
func NewArchiveExpiredOrdersCommandHandler(uowFactory UoWFactory) ArchiveExpiredOrdersCommandHandler {
	return ArchiveExpiredOrdersCommandHandler{
		uowFactory: uowFactory,
		removal:    services.NewRemovalService(),
	}
}

// Handle runs the sweep and returns the number of orders archived.
func (h ArchiveExpiredOrdersCommandHandler) Handle(ctx context.Context, cmd ArchiveExpiredOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	bidRepo := uow.BidRepository()

	expired, err := orderRepo.GetExpired(ctx, now)
	if err != nil {
		return 0, err
	}

	for _, ord := range expired {
		activeBids, err := bidRepo.GetAllActiveForOrder(ctx, ord.ID())
		if err != nil {
			return 0, err
		}

		if err = h.removal.Expire(ord, activeBids, now); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, ord); err != nil {
			return 0, err
		}
		for _, b := range activeBids {
			if err = bidRepo.Update(ctx, b); err != nil {
				return 0, err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(expired), nil
}
