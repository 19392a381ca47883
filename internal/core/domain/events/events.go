// Package events defines the domain events emitted by the coordination layer.
// Handlers collect them during a use case and hand them to an event publisher
// after the transaction commits.
package events

import "marketplace/internal/core/domain/model/kernel"

// Event is a fact about a completed state change. Name returns a stable
// identifier used as the message key on the wire.
type Event interface {
	Name() string
}

// OrderPlaced is emitted when a client posts a new order.
type OrderPlaced struct {
	OrderID  kernel.UUID
	ClientID kernel.UUID
}

func (OrderPlaced) Name() string { return "order.placed" }

// OrderCancelled is emitted when an order is removed or terminated by the
// client, in any status.
type OrderCancelled struct {
	OrderID  kernel.UUID
	ClientID kernel.UUID
}

func (OrderCancelled) Name() string { return "order.cancelled" }

// OrderCompleted is emitted when an in-progress order is marked delivered.
type OrderCompleted struct {
	OrderID    kernel.UUID
	ClientID   kernel.UUID
	ProviderID kernel.UUID
}

func (OrderCompleted) Name() string { return "order.completed" }

// BidPlaced is emitted when a provider posts a new bid on an order.
type BidPlaced struct {
	BidID      kernel.UUID
	OrderID    kernel.UUID
	ProviderID kernel.UUID
	Amount     int64
}

func (BidPlaced) Name() string { return "bid.placed" }

// BidApproved is emitted when the client accepts a bid.
type BidApproved struct {
	BidID      kernel.UUID
	OrderID    kernel.UUID
	ProviderID kernel.UUID
}

func (BidApproved) Name() string { return "bid.approved" }

// BidRejected is emitted when the client turns a bid down.
type BidRejected struct {
	BidID      kernel.UUID
	OrderID    kernel.UUID
	ProviderID kernel.UUID
}

func (BidRejected) Name() string { return "bid.rejected" }

// BidWithdrawn is emitted when the provider withdraws a bid, before or after
// approval.
type BidWithdrawn struct {
	BidID      kernel.UUID
	OrderID    kernel.UUID
	ProviderID kernel.UUID
}

func (BidWithdrawn) Name() string { return "bid.withdrawn" }
