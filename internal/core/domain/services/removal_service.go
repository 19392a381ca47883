package services

import (
	"fmt"
	"time"

	"marketplace/internal/core/domain/events"
	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// RemovalService handles a client taking their order down and the system
// archiving expired orders. A placed order takes all its active bids down
// with it; an in-progress order terminates only the approved bid, since
// rejected bids already left the running on their own.
type RemovalService struct{}

// NewRemovalService creates a new RemovalService instance.
func NewRemovalService() RemovalService {
	return RemovalService{}
}

// Remove takes the order down on the client's behalf. A still-placed order is
// removed; an in-progress order is terminated along with its approved bid; an
// order already in a terminal status is archived instead.
func (s RemovalService) Remove(o *order.Order, activeBids []*bid.Bid) ([]events.Event, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	switch o.Status() {
	case order.Placed:
		if err := o.Remove(); err != nil {
			return nil, err
		}
		if err := terminateAll(activeBids); err != nil {
			return nil, err
		}

	case order.InProgress:
		approvedID := o.ApprovedBid()
		if err := o.Terminate(); err != nil {
			return nil, err
		}
		for _, b := range activeBids {
			if approvedID == nil || !b.ID().IsEqual(*approvedID) {
				continue
			}
			if err := b.TerminateByClient(); err != nil {
				return nil, err
			}
		}

	case order.Completed, order.Removed, order.TerminatedByClient:
		o.Archive()
		for _, b := range activeBids {
			b.Archive()
		}
		return nil, nil

	default:
		return nil, errs.NewActionNotAllowedErrorWithCause("remove the order",
			fmt.Errorf("%s is not a valid status to remove from", o.Status()))
	}

	return []events.Event{events.OrderCancelled{
		OrderID:  o.ID(),
		ClientID: o.ClientID(),
	}}, nil
}

// Expire archives an order whose bidding window lapsed without an approval
// and terminates its remaining active bids. Only Placed orders expire.
func (s RemovalService) Expire(o *order.Order, activeBids []*bid.Bid, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.Status() != order.Placed {
		return errs.NewActionNotAllowedErrorWithCause("expire the order",
			fmt.Errorf("%s order does not expire", o.Status()))
	}
	if o.ExpiresAt().After(now) {
		return errs.NewActionNotAllowedErrorWithCause("expire the order",
			fmt.Errorf("order is open until %s", o.ExpiresAt()))
	}

	o.Archive()
	return terminateAll(activeBids)
}

func terminateAll(bids []*bid.Bid) error {
	for _, b := range bids {
		if !b.IsActive() {
			continue
		}
		if err := b.TerminateByClient(); err != nil {
			return err
		}
	}
	return nil
}
