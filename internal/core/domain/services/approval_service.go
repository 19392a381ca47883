package services

import (
	"fmt"

	"marketplace/internal/core/domain/events"
	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// ApprovalService couples the client's accept/reject decisions on a bid with
// the paired order transitions.
//
// Business rules:
//   - Accepting a bid moves it to Approved and the order to InProgress with
//     the bid recorded as the approved one
//   - At most one bid per order is ever approved; the order transition
//     enforces this
//   - Rejecting the currently approved bid reopens the order for bidding
type ApprovalService struct{}

// NewApprovalService creates a new ApprovalService instance.
func NewApprovalService() ApprovalService {
	return ApprovalService{}
}

// Approve accepts the bid on behalf of the order's client. Both aggregates
// transition or neither does.
func (s ApprovalService) Approve(o *order.Order, b *bid.Bid) ([]events.Event, error) {
	if err := validatePair(o, b); err != nil {
		return nil, err
	}

	if err := o.ApproveBid(b.ID()); err != nil {
		return nil, err
	}
	if err := b.Approve(); err != nil {
		return nil, err
	}

	return []events.Event{events.BidApproved{
		BidID:      b.ID(),
		OrderID:    o.ID(),
		ProviderID: b.ProviderID(),
	}}, nil
}

// Reject turns the bid down. If the bid was the order's approved one, the
// order reverts to Placed and reopens for bidding.
func (s ApprovalService) Reject(o *order.Order, b *bid.Bid) ([]events.Event, error) {
	if err := validatePair(o, b); err != nil {
		return nil, err
	}

	wasApproved := o.ApprovedBid() != nil && o.ApprovedBid().IsEqual(b.ID())

	if err := b.Reject(); err != nil {
		return nil, err
	}
	if wasApproved {
		if err := o.RevertToPlaced(); err != nil {
			return nil, err
		}
	}

	return []events.Event{events.BidRejected{
		BidID:      b.ID(),
		OrderID:    o.ID(),
		ProviderID: b.ProviderID(),
	}}, nil
}

func validatePair(o *order.Order, b *bid.Bid) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := b.Validate(); err != nil {
		return err
	}
	if !b.OrderID().IsEqual(o.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("bid",
			fmt.Errorf("bid %s does not belong to order %s", b.ID(), o.ID()))
	}
	return nil
}
