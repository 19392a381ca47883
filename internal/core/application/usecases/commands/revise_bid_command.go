package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrReviseBidCommandIsNotConstructed = errors.New(
	"ReviseBidCommand must be created via NewReviseBidCommand constructor",
)

// ReviseBidCommand represents a provider changing their offer. The comment is
// optional; nil leaves it untouched.
type ReviseBidCommand struct { //nolint:recvcheck //using for validation
	bidID      kernel.UUID
	providerID kernel.UUID
	amount     int64
	comment    *string

	guard guard.ConstructorGuard
}

// NewReviseBidCommand creates a command to revise a bid's amount and,
// optionally, its comment.
func NewReviseBidCommand(bidID, providerID kernel.UUID, amount int64, comment *string) (ReviseBidCommand, error) {
	cmd := ReviseBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBidID(bidID),
		cmd.setProviderID(providerID),
		cmd.setAmount(amount),
	); err != nil {
		return ReviseBidCommand{}, err
	}

	cmd.comment = comment

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviseBidCommand) Validate() error {
	return c.guard.Validate(ErrReviseBidCommandIsNotConstructed)
}

// BidID returns the bid to revise.
func (c ReviseBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// ProviderID returns the acting provider's identifier.
func (c ReviseBidCommand) ProviderID() kernel.UUID {
	return c.providerID
}

// Amount returns the new offer amount.
func (c ReviseBidCommand) Amount() int64 {
	return c.amount
}

// Comment returns the replacement comment, nil to keep the current one.
func (c ReviseBidCommand) Comment() *string {
	return c.comment
}

func (c *ReviseBidCommand) setBidID(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}

	c.bidID = bidID
	return nil
}

func (c *ReviseBidCommand) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("providerID", err)
	}

	c.providerID = providerID
	return nil
}

func (c *ReviseBidCommand) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 1, nil)
	}

	c.amount = amount
	return nil
}
