package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	// DefaultLifetime is the window a fresh order stays open for bids.
	DefaultLifetime = 12 * time.Hour

	// MinProlongation is the minimum distance from "now" a new expiration
	// date must keep, measured at minute granularity.
	MinProlongation = 12 * time.Hour

	// MaxVideosPerUpload bounds the number of video files in a single
	// attachment batch.
	MaxVideosPerUpload = 1
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order represents a client's request for a service. It is the aggregate root
// that manages the order lifecycle from placement through bid approval to a
// terminal state.
//
// Order follows these invariants:
//   - Must reference a valid client and at least one category
//   - The category set is fixed at creation; there is no update path
//   - The approved-bid reference is set if and only if the status is
//     InProgress or a terminal state reached via approval
//   - The expiration date only ever moves forward, by at least MinProlongation
//   - Status transitions follow the rules encoded in Status
//
// Orders are never physically deleted; removal is a status transition or the
// archived flag.
type Order struct {
	id            kernel.UUID
	clientID      kernel.UUID
	description   string
	categoryIDs   []kernel.UUID
	address       Address
	budget        *int64
	urgent        bool
	media         []MediaFile
	expiresAt     time.Time
	approvedBidID *kernel.UUID
	archived      bool
	status        Status
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a freshly placed order. The status is always Placed and
// the expiration is always now+DefaultLifetime regardless of caller input.
// The category set must be non-empty; it cannot be changed afterwards.
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	description string,
	categoryIDs []kernel.UUID,
	address Address,
	budget *int64,
	urgent bool,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status: Placed,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setDescription(description),
		o.setCategoryIDs(categoryIDs),
		o.setAddress(address),
	); err != nil {
		return nil, err
	}

	o.budget = budget
	o.urgent = urgent
	o.expiresAt = now.Add(DefaultLifetime)
	o.createdAt = now

	return o, nil
}

// RestoreOrder reconstructs an order from persistent storage, re-checking the
// status/approved-bid consistency invariant.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	description string,
	categoryIDs []kernel.UUID,
	address Address,
	budget *int64,
	urgent bool,
	media []MediaFile,
	expiresAt time.Time,
	approvedBidID *kernel.UUID,
	archived bool,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setDescription(description),
		o.setCategoryIDs(categoryIDs),
		o.setAddress(address),
		status.Validate(),
		status.ValidateCanHaveApprovedBid(approvedBidID != nil),
	); err != nil {
		return nil, err
	}

	o.budget = budget
	o.urgent = urgent
	o.media = append(o.media, media...)
	o.expiresAt = expiresAt
	o.approvedBidID = approvedBidID
	o.archived = archived
	o.status = status
	o.createdAt = createdAt

	return o, nil
}

// ValidateCanHaveApprovedBid validates the consistency between order status
// and the approved-bid reference: Placed and Removed orders must not carry
// one; InProgress and the terminal states reached via approval must.
func (s Status) ValidateCanHaveApprovedBid(hasApprovedBid bool) error {
	switch s {
	case Placed, Removed:
		if hasApprovedBid {
			return errs.NewValueIsInvalidErrorWithCause("approvedBid",
				fmt.Errorf("%s order must not reference an approved bid", s))
		}
	case InProgress, Completed, TerminatedByClient:
		if !hasApprovedBid {
			return errs.NewValueIsInvalidErrorWithCause("approvedBid",
				fmt.Errorf("%s order must reference an approved bid", s))
		}
	}

	return nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}

	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the owning client's identifier.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Description returns the service description.
func (o *Order) Description() string {
	return o.description
}

// CategoryIDs returns a copy of the fixed category set.
func (o *Order) CategoryIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(o.categoryIDs))
	copy(out, o.categoryIDs)
	return out
}

// Address returns the delivery address.
func (o *Order) Address() Address {
	return o.address
}

// Budget returns the optional budget, nil when the client gave none.
func (o *Order) Budget() *int64 {
	return o.budget
}

// Urgent reports the urgency flag.
func (o *Order) Urgent() bool {
	return o.urgent
}

// Media returns a copy of the ordered attachment list.
func (o *Order) Media() []MediaFile {
	out := make([]MediaFile, len(o.media))
	copy(out, o.media)
	return out
}

// ExpiresAt returns the expiration timestamp.
func (o *Order) ExpiresAt() time.Time {
	return o.expiresAt
}

// ApprovedBid returns the approved bid's ID, nil while no bid is approved.
func (o *Order) ApprovedBid() *kernel.UUID {
	return o.approvedBidID
}

// Archived reports whether the order was archived.
func (o *Order) Archived() bool {
	return o.archived
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ApproveBid records the approval of a bid: the order moves to InProgress and
// references the bid. Only valid while Placed.
func (o *Order) ApproveBid(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.approvedBidID = &bidID
	return nil
}

// RevertToPlaced reopens an in-progress order after its approved bid was
// rejected or withdrawn, clearing the approved-bid reference.
func (o *Order) RevertToPlaced() error {
	newStatus, err := o.status.Revert()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.approvedBidID = nil
	return nil
}

// Complete marks an in-progress order as delivered.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Remove marks a still-placed order as removed by the client.
func (o *Order) Remove() error {
	newStatus, err := o.status.Remove()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Terminate cancels an in-progress order on the client's request.
func (o *Order) Terminate() error {
	newStatus, err := o.status.Terminate()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Archive flags the order as no longer actionable while keeping its status.
func (o *Order) Archive() {
	o.archived = true
}

// ExtendExpiration moves the expiration date forward. The new date must keep
// at least MinProlongation distance from now, compared at minute granularity.
// Shortening is rejected. Not permitted on orders in a terminal status.
func (o *Order) ExtendExpiration(newExpiresAt, now time.Time) error {
	if o.status.IsTerminal() {
		return errs.NewActionNotAllowedErrorWithCause("extend the order expiration",
			fmt.Errorf("%s is a terminal status", o.status))
	}

	diff := newExpiresAt.Truncate(time.Minute).Sub(now.Truncate(time.Minute))
	if diff < MinProlongation {
		return errs.NewValueIsInvalidErrorWithCause("expirationDate",
			fmt.Errorf("new expiration must be at least %s from now, got %s", MinProlongation, diff))
	}

	o.expiresAt = newExpiresAt
	return nil
}

// AttachMedia appends an upload batch to the attachment list. A batch with
// more than MaxVideosPerUpload video files is rejected as a whole; nothing is
// attached. The cumulative video count across separate uploads is not capped.
func (o *Order) AttachMedia(files []MediaFile) error {
	if len(files) == 0 {
		return errs.NewValueIsRequiredError("media")
	}

	videos := 0
	for _, f := range files {
		if err := f.Validate(); err != nil {
			return err
		}
		if f.IsVideo() {
			videos++
		}
	}

	if videos > MaxVideosPerUpload {
		return errs.NewValueIsInvalidErrorWithCause("media",
			fmt.Errorf("at most %d video attachment allowed per upload, got %d", MaxVideosPerUpload, videos))
	}

	o.media = append(o.media, files...)
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client", err)
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	o.description = description
	return nil
}

func (o *Order) setCategoryIDs(categoryIDs []kernel.UUID) error {
	if len(categoryIDs) == 0 {
		return errs.NewValueIsRequiredError("categories")
	}

	for _, id := range categoryIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("categories", err)
		}
	}

	o.categoryIDs = make([]kernel.UUID, len(categoryIDs))
	copy(o.categoryIDs, categoryIDs)
	return nil
}

func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}
