package services

import (
	"marketplace/internal/core/domain/events"
	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/domain/model/order"
)

// CompletionService marks an in-progress order as delivered. The approved bid
// stays Approved as the record of who did the work and is archived so it
// drops out of active listings.
type CompletionService struct{}

// NewCompletionService creates a new CompletionService instance.
func NewCompletionService() CompletionService {
	return CompletionService{}
}

// Complete finishes the order and archives its approved bid.
func (s CompletionService) Complete(o *order.Order, approved *bid.Bid) ([]events.Event, error) {
	if err := validatePair(o, approved); err != nil {
		return nil, err
	}

	if err := o.Complete(); err != nil {
		return nil, err
	}
	approved.Archive()

	return []events.Event{events.OrderCompleted{
		OrderID:    o.ID(),
		ClientID:   o.ClientID(),
		ProviderID: approved.ProviderID(),
	}}, nil
}
