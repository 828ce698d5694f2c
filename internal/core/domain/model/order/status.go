package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct production workflow.
//
// State transitions:
//
//	Placed ──> AwaitingApproval ──> Approved ──> InProduction ──> Shipped ──> Delivered
//	   │              │                 │
//	   └──────────────┴─────────────────┴──> Rejected
//	   (any non-terminal status) ──────────> Cancelled
//
// Factory review is optional: a placed order can be approved directly, or be
// routed through AwaitingApproval first. Rejected is reachable only before
// production starts. Delivered, Rejected, and Cancelled are terminal: no
// further transitions are accepted, and re-applying the current status is
// rejected rather than silently ignored.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status assigned when the checkout process creates an order.
	Placed

	// AwaitingApproval indicates the order was routed to the factory for review.
	AwaitingApproval

	// Approved indicates the factory review passed and production may be scheduled.
	Approved

	// InProduction indicates the order is being manufactured.
	// Rejection is no longer possible from this point on.
	InProduction

	// Shipped indicates the finished order left the factory.
	Shipped

	// Delivered indicates the customer received the order. Terminal.
	Delivered

	// Rejected indicates the order failed factory review. Terminal.
	Rejected

	// Cancelled indicates the order was withdrawn before completion. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "UNKNOWN",
		Placed:           "PLACED",
		AwaitingApproval: "AWAITING_APPROVAL",
		Approved:         "APPROVED",
		InProduction:     "IN_PRODUCTION",
		Shipped:          "SHIPPED",
		Delivered:        "DELIVERED",
		Rejected:         "REJECTED",
		Cancelled:        "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:           "PLACED",
		AwaitingApproval: "AWAITING_APPROVAL",
		Approved:         "APPROVED",
		InProduction:     "IN_PRODUCTION",
		Shipped:          "SHIPPED",
		Delivered:        "DELIVERED",
		Rejected:         "REJECTED",
		Cancelled:        "CANCELLED",
	}
}

// StatusFromString parses a status wire label back into a Status.
// Returns an error for labels outside the defined status set.
func StatusFromString(s string) (Status, error) {
	for status, label := range getValidStatusStrings() {
		if label == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is a member of the defined status set.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire label of the status.
// Returns "UNKNOWN" for invalid status values.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status accepts no further transitions.
// Delivered, Rejected, and Cancelled are terminal.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Rejected || s == Cancelled
}

// AllowedNext returns the set of statuses reachable from this status.
// Terminal statuses return an empty set. Placed reaches Approved either
// directly or through AwaitingApproval; from Approved on the forward path is
// strictly sequential. Rejected branches off every pre-production status and
// Cancelled off every non-terminal status.
func (s Status) AllowedNext() []Status {
	switch s {
	case Placed:
		return []Status{AwaitingApproval, Approved, Rejected, Cancelled}
	case AwaitingApproval:
		return []Status{Approved, Rejected, Cancelled}
	case Approved:
		return []Status{InProduction, Rejected, Cancelled}
	case InProduction:
		return []Status{Shipped, Cancelled}
	case Shipped:
		return []Status{Delivered, Cancelled}
	default:
		return nil
	}
}

// CanTransitionTo reports whether target is in the allowed-next set of this status.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range s.AllowedNext() {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo validates a transition from this status to target.
//
// Returns:
//   - (target, nil) when target is in the allowed-next set
//   - (0, *errs.InvalidTransitionError) otherwise, including attempts to
//     re-apply the current status or to leave a terminal status
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}

	return target, nil
}
