package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Placed ──┬──> InProgress ──┬──> Completed
//	         │        │        └──> TerminatedByClient
//	         │        └──> Placed (approved bid rejected or withdrawn)
//	         └──> Removed
//
// Completed, Removed, and TerminatedByClient are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Placed is the initial status; the order is open for bids.
	Placed

	// InProgress indicates the client approved a bid.
	InProgress

	// Completed indicates the service was delivered. Terminal.
	Completed

	// Removed indicates the client removed the order before any approval. Terminal.
	Removed

	// TerminatedByClient indicates the client cancelled an in-progress order. Terminal.
	TerminatedByClient
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "Unknown",
		Placed:             "Placed",
		InProgress:         "InProgress",
		Completed:          "Completed",
		Removed:            "Removed",
		TerminatedByClient: "TerminatedByClient",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s < Placed || s > TerminatedByClient {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String implements fmt.Stringer; invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Removed || s == TerminatedByClient
}

// Approve transitions Placed -> InProgress when a bid is approved.
func (s Status) Approve() (Status, error) {
	if s != Placed {
		return Unknown, errs.NewActionNotAllowedErrorWithCause("approve a bid on the order",
			fmt.Errorf("%s is not a valid status to approve from", s))
	}
	return InProgress, nil
}

// Revert transitions InProgress -> Placed when the approved bid is rejected
// or withdrawn.
func (s Status) Revert() (Status, error) {
	if s != InProgress {
		return Unknown, errs.NewActionNotAllowedErrorWithCause("revert the order to placed",
			fmt.Errorf("%s is not a valid status to revert from", s))
	}
	return Placed, nil
}

// Complete transitions InProgress -> Completed.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return Unknown, errs.NewActionNotAllowedErrorWithCause("complete the order",
			fmt.Errorf("%s is not a valid status to complete from", s))
	}
	return Completed, nil
}

// Remove transitions Placed -> Removed.
func (s Status) Remove() (Status, error) {
	if s != Placed {
		return Unknown, errs.NewActionNotAllowedErrorWithCause("remove the order",
			fmt.Errorf("%s is not a valid status to remove from", s))
	}
	return Removed, nil
}

// Terminate transitions InProgress -> TerminatedByClient.
func (s Status) Terminate() (Status, error) {
	if s != InProgress {
		return Unknown, errs.NewActionNotAllowedErrorWithCause("terminate the order",
			fmt.Errorf("%s is not a valid status to terminate from", s))
	}
	return TerminatedByClient, nil
}
