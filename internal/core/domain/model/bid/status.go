package bid

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of a bid.
//
// State transitions:
//
//	Placed ──┬──> Approved ──┬──> Rejected (client rejects after approval)
//	         │               ├──> TerminatedByClient (order cancelled in progress)
//	         │               └──> TerminatedByProvider (provider withdraws in progress)
//	         ├──> Rejected ──> Removed
//	         └──> Removed
//
// Removed, TerminatedByClient, and TerminatedByProvider are terminal. An
// Approved bid whose order completed stays Approved and is archived instead.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Placed is the initial status of every persisted bid.
	Placed

	// Approved indicates the client accepted this bid.
	Approved

	// Rejected indicates the client turned the bid down.
	Rejected

	// Removed indicates the provider withdrew an unapproved bid. Terminal.
	Removed

	// TerminatedByClient indicates the paired order was removed or cancelled. Terminal.
	TerminatedByClient

	// TerminatedByProvider indicates the provider withdrew while the order
	// was in progress. Terminal.
	TerminatedByProvider
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:              "Unknown",
		Placed:               "Placed",
		Approved:             "Approved",
		Rejected:             "Rejected",
		Removed:              "Removed",
		TerminatedByClient:   "TerminatedByClient",
		TerminatedByProvider: "TerminatedByProvider",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s < Placed || s > TerminatedByProvider {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid bid status", s))
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
	return s == Removed || s == TerminatedByClient || s == TerminatedByProvider
}

// Approve transitions Placed -> Approved.
func (s Status) Approve() (Status, error) {
	if s != Placed {
		return Unknown, errs.NewActionNotAllowedErrorWithCause("approve the bid",
			fmt.Errorf("%s is not a valid status to approve from", s))
	}
	return Approved, nil
}

// Reject transitions Placed or Approved -> Rejected.
func (s Status) Reject() (Status, error) {
	if s != Placed && s != Approved {
		return Unknown, errs.NewActionNotAllowedErrorWithCause("reject the bid",
			fmt.Errorf("%s is not a valid status to reject from", s))
	}
	return Rejected, nil
}

// Remove transitions Placed or Rejected -> Removed (provider self-withdrawal).
func (s Status) Remove() (Status, error) {
	if s != Placed && s != Rejected {
		return Unknown, errs.NewActionNotAllowedErrorWithCause("remove the bid",
			fmt.Errorf("%s is not a valid status to remove from", s))
	}
	return Removed, nil
}

// TerminateByClient transitions any non-terminal status -> TerminatedByClient.
// Used when the paired order is removed or cancelled.
func (s Status) TerminateByClient() (Status, error) {
	if s.IsTerminal() || s == Unknown {
		return Unknown, errs.NewActionNotAllowedErrorWithCause("terminate the bid",
			fmt.Errorf("%s is not a valid status to terminate from", s))
	}
	return TerminatedByClient, nil
}

// TerminateByProvider transitions Approved -> TerminatedByProvider.
func (s Status) TerminateByProvider() (Status, error) {
	if s != Approved {
		return Unknown, errs.NewActionNotAllowedErrorWithCause("terminate the bid",
			fmt.Errorf("%s is not a valid status to terminate from", s))
	}
	return TerminatedByProvider, nil
}
