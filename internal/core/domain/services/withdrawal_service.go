package services

import (
	"fmt"

	"marketplace/internal/core/domain/events"
	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// WithdrawalService handles a provider taking their bid back. The outcome
// depends on how far the coupled lifecycle has progressed:
//
//   - Placed or Rejected bid: the bid is simply removed
//   - Approved bid on an in-progress order: the bid terminates on the
//     provider's side and the order reopens for bidding
//   - Approved bid on a completed order: nothing is undone; the bid is
//     archived to drop out of active listings
type WithdrawalService struct{}

// NewWithdrawalService creates a new WithdrawalService instance.
func NewWithdrawalService() WithdrawalService {
	return WithdrawalService{}
}

// Withdraw takes the bid back on behalf of its provider.
func (s WithdrawalService) Withdraw(o *order.Order, b *bid.Bid) ([]events.Event, error) {
	if err := validatePair(o, b); err != nil {
		return nil, err
	}

	switch b.Status() {
	case bid.Placed, bid.Rejected:
		if err := b.Remove(); err != nil {
			return nil, err
		}

	case bid.Approved:
		switch o.Status() {
		case order.InProgress:
			if err := b.TerminateByProvider(); err != nil {
				return nil, err
			}
			if err := o.RevertToPlaced(); err != nil {
				return nil, err
			}
		case order.Completed:
			b.Archive()
			return nil, nil
		default:
			return nil, errs.NewActionNotAllowedErrorWithCause("withdraw the bid",
				fmt.Errorf("approved bid on a %s order cannot be withdrawn", o.Status()))
		}

	default:
		return nil, errs.NewActionNotAllowedErrorWithCause("withdraw the bid",
			fmt.Errorf("%s is not a valid status to withdraw from", b.Status()))
	}

	return []events.Event{events.BidWithdrawn{
		BidID:      b.ID(),
		OrderID:    o.ID(),
		ProviderID: b.ProviderID(),
	}}, nil
}
