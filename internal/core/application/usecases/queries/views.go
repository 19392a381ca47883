package queries

import (
	"time"

	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderView is the read-side projection of an order. BidCount and LowestBid
// are populated only by aggregated searches; plain listings leave them zero.
type OrderView struct {
	ID          kernel.UUID
	ClientID    kernel.UUID
	Description string
	AddressText string
	AreaID      kernel.UUID
	Budget      *int64
	Urgent      bool
	Status      order.Status
	Archived    bool
	ExpiresAt   time.Time
	CreatedAt   time.Time

	BidCount  int
	LowestBid *int64
}

// BidView is the read-side projection of a bid.
type BidView struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	ProviderID  kernel.UUID
	Amount      int64
	Comment     string
	PrevAmounts []int64
	Status      bid.Status
	Archived    bool
	CreatedAt   time.Time
}
