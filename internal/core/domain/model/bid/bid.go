package bid

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Limits holds the configurable bounds applied to bid input. Callers pass it
// explicitly instead of the package reading global configuration.
type Limits struct {
	// MaxCommentLength bounds the provider's free-text comment, in bytes.
	MaxCommentLength int
}

// DefaultLimits returns the bounds used when no deployment override exists.
func DefaultLimits() Limits {
	return Limits{MaxCommentLength: 500}
}

// ErrBidIsNotConstructed is returned when a Bid instance was not created
// through NewBid or RestoreBid.
var ErrBidIsNotConstructed = errors.New("Bid must be created via NewBid or RestoreBid")

// Bid is a provider's priced offer on an order. It is an aggregate root that
// tracks the offer amount, its revision history, and the approval lifecycle.
//
// Bid follows these invariants:
//   - Must reference a valid order and provider
//   - The amount is always positive
//   - Every amount revision appends the superseded amount to the history,
//     oldest first; the history is never rewritten or truncated
//   - Status transitions follow the rules encoded in Status
//
// Bids are never physically deleted; withdrawal and termination are status
// transitions, and a bid on a completed order is archived instead.
type Bid struct {
	id          kernel.UUID
	orderID     kernel.UUID
	providerID  kernel.UUID
	amount      int64
	comment     string
	prevAmounts []int64
	archived    bool
	status      Status
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewBid creates a freshly placed bid. The status is always Placed regardless
// of caller input.
func NewBid(
	id kernel.UUID,
	orderID kernel.UUID,
	providerID kernel.UUID,
	amount int64,
	comment string,
	limits Limits,
	now time.Time,
) (*Bid, error) {
	b := &Bid{
		status: Placed,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setOrderID(orderID),
		b.setProviderID(providerID),
		b.setAmount(amount),
		b.setComment(comment, limits),
	); err != nil {
		return nil, err
	}

	b.createdAt = now

	return b, nil
}

// RestoreBid reconstructs a bid from persistent storage. The amount history is
// copied as-is; limits are not re-applied to the stored comment.
func RestoreBid(
	id kernel.UUID,
	orderID kernel.UUID,
	providerID kernel.UUID,
	amount int64,
	comment string,
	prevAmounts []int64,
	archived bool,
	status Status,
	createdAt time.Time,
) (*Bid, error) {
	b := &Bid{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setOrderID(orderID),
		b.setProviderID(providerID),
		b.setAmount(amount),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	b.comment = comment
	b.prevAmounts = append(b.prevAmounts, prevAmounts...)
	b.archived = archived
	b.status = status
	b.createdAt = createdAt

	return b, nil
}

// Validate ensures the Bid was created through a constructor.
func (b *Bid) Validate() error {
	if b == nil {
		return ErrBidIsNotConstructed
	}

	return b.guard.Validate(ErrBidIsNotConstructed)
}

// IsEqual compares two bids by identifier.
func (b *Bid) IsEqual(other *Bid) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the bid's unique identifier.
func (b *Bid) ID() kernel.UUID {
	return b.id
}

// OrderID returns the order this bid offers on.
func (b *Bid) OrderID() kernel.UUID {
	return b.orderID
}

// ProviderID returns the bidding provider's identifier.
func (b *Bid) ProviderID() kernel.UUID {
	return b.providerID
}

// Amount returns the current offer amount.
func (b *Bid) Amount() int64 {
	return b.amount
}

// Comment returns the provider's free-text comment.
func (b *Bid) Comment() string {
	return b.comment
}

// PrevAmounts returns a copy of the superseded amounts, oldest first.
func (b *Bid) PrevAmounts() []int64 {
	out := make([]int64, len(b.prevAmounts))
	copy(out, b.prevAmounts)
	return out
}

// Archived reports whether the bid was archived.
func (b *Bid) Archived() bool {
	return b.archived
}

// Status returns the current lifecycle status.
func (b *Bid) Status() Status {
	return b.status
}

// CreatedAt returns the creation timestamp.
func (b *Bid) CreatedAt() time.Time {
	return b.createdAt
}

// IsActive reports whether the bid still participates in coordination: it is
// neither archived nor in a terminal status.
func (b *Bid) IsActive() bool {
	return !b.archived && !b.status.IsTerminal()
}

// ReviseAmount replaces the offer amount. The superseded amount is appended to
// the revision history; setting the same amount again is a no-op.
func (b *Bid) ReviseAmount(newAmount int64) error {
	if b.status.IsTerminal() {
		return errs.NewActionNotAllowedErrorWithCause("revise the bid amount",
			fmt.Errorf("%s is a terminal status", b.status))
	}
	if newAmount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", newAmount, 1, nil)
	}
	if newAmount == b.amount {
		return nil
	}

	b.prevAmounts = append(b.prevAmounts, b.amount)
	b.amount = newAmount
	return nil
}

// SetComment replaces the provider's comment, re-applying the length limit.
func (b *Bid) SetComment(comment string, limits Limits) error {
	return b.setComment(comment, limits)
}

// Approve marks the bid as accepted by the client.
func (b *Bid) Approve() error {
	newStatus, err := b.status.Approve()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// Reject marks the bid as turned down by the client.
func (b *Bid) Reject() error {
	newStatus, err := b.status.Reject()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// Remove marks an unapproved bid as withdrawn by the provider.
func (b *Bid) Remove() error {
	newStatus, err := b.status.Remove()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// TerminateByClient ends the bid because the paired order was removed or
// cancelled.
func (b *Bid) TerminateByClient() error {
	newStatus, err := b.status.TerminateByClient()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// TerminateByProvider ends an approved bid because the provider withdrew
// while the order was in progress.
func (b *Bid) TerminateByProvider() error {
	newStatus, err := b.status.TerminateByProvider()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// Archive flags the bid as no longer actionable while keeping its status.
func (b *Bid) Archive() {
	b.archived = true
}

func (b *Bid) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bid) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order", err)
	}
	b.orderID = orderID
	return nil
}

func (b *Bid) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("provider", err)
	}
	b.providerID = providerID
	return nil
}

func (b *Bid) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 1, nil)
	}
	b.amount = amount
	return nil
}

func (b *Bid) setComment(comment string, limits Limits) error {
	if limits.MaxCommentLength > 0 && len(comment) > limits.MaxCommentLength {
		return errs.NewValueIsOutOfRangeError("comment", len(comment), 0, limits.MaxCommentLength)
	}
	b.comment = comment
	return nil
}
