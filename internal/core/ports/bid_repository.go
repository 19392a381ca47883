package ports

import (
	"context"

	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/domain/model/kernel"
)

// BidRepository defines the persistence contract for bid aggregates.
type BidRepository interface {
	// Add persists a new bid aggregate to storage.
	Add(ctx context.Context, aggregate *bid.Bid) error

	// Update persists changes to an existing bid aggregate.
	Update(ctx context.Context, aggregate *bid.Bid) error

	// Get retrieves a bid aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such bid exists.
	Get(ctx context.Context, id kernel.UUID) (*bid.Bid, error)

	// GetForOrderAndProvider retrieves the provider's non-removed bid on
	// the order, nil when there is none. At most one such bid exists per
	// pair; placement enforces this.
	GetForOrderAndProvider(ctx context.Context, orderID, providerID kernel.UUID) (*bid.Bid, error)

	// GetAllActiveForOrder retrieves all bids on the order that are
	// neither archived nor in a terminal status.
	GetAllActiveForOrder(ctx context.Context, orderID kernel.UUID) ([]*bid.Bid, error)
}
