package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRejectBidCommandIsNotConstructed = errors.New(
	"RejectBidCommand must be created via NewRejectBidCommand constructor",
)

// RejectBidCommand represents a client turning a bid down. Rejecting the
// currently approved bid reopens the order for bidding.
type RejectBidCommand struct { //nolint:recvcheck //using for validation
	bidID    kernel.UUID
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectBidCommand creates a command to reject a bid.
func NewRejectBidCommand(bidID, clientID kernel.UUID) (RejectBidCommand, error) {
	cmd := RejectBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBidID(bidID),
		cmd.setClientID(clientID),
	); err != nil {
		return RejectBidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectBidCommand) Validate() error {
	return c.guard.Validate(ErrRejectBidCommandIsNotConstructed)
}

// BidID returns the bid to reject.
func (c RejectBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// ClientID returns the acting client's identifier.
func (c RejectBidCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c *RejectBidCommand) setBidID(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}

	c.bidID = bidID
	return nil
}

func (c *RejectBidCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientID", err)
	}

	c.clientID = clientID
	return nil
}
