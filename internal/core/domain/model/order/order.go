package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer's purchase request in the storefront. It is the
// aggregate root that manages the production lifecycle from placement through
// delivery, together with its append-only audit history.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and order code
//   - Must reference the owning customer (id and notification email)
//   - Must have at least one item; items are fixed at creation
//   - Status is always a member of the defined status set
//   - History is append-only and its last entry's status equals the
//     order's current status
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// code is the human-readable, unique, sortable order code (e.g. ORD-1001)
	code kernel.OrderCode

	// customerID references the owning customer
	customerID kernel.UUID

	// customerEmail is the owner's notification address, denormalized so
	// notification decisions don't require an identity lookup
	customerEmail string

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the order's creation timestamp
	createdAt time.Time

	// items are the order lines, fixed at creation
	items []Item

	// history is the append-only audit trail of accepted transitions
	history []HistoryEntry

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Placed status with its first history entry.
// This is the path the external checkout process calls.
//
// Parameters:
//   - id: unique identifier for the order
//   - code: human-readable order code from the code sequence
//   - customerID: the owning customer's id
//   - customerEmail: the owner's notification address
//   - items: at least one order line
//   - now: creation timestamp, also stamped on the first history entry
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: validation error if any parameter is invalid
func NewOrder(
	id kernel.UUID,
	code kernel.OrderCode,
	customerID kernel.UUID,
	customerEmail string,
	items []Item,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Placed,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setCustomer(customerID, customerEmail),
		o.setItems(items),
		o.setCreatedAt(now),
	); err != nil {
		return nil, err
	}

	entry, err := NewHistoryEntry(Placed, &o.customerID, "", now)
	if err != nil {
		return nil, err
	}
	o.history = []HistoryEntry{entry}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running the
// creation workflow. It enforces the aggregate invariants on the restored
// state: at least one item, non-empty history, and the last history entry's
// status matching the order status.
func RestoreOrder(
	id kernel.UUID,
	code kernel.OrderCode,
	customerID kernel.UUID,
	customerEmail string,
	status Status,
	createdAt time.Time,
	items []Item,
	history []HistoryEntry,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setCustomer(customerID, customerEmail),
		o.setItems(items),
		o.setCreatedAt(createdAt),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if len(history) == 0 {
		return nil, errs.NewValueIsRequiredError("order history")
	}
	for _, entry := range history {
		if err := entry.Validate(); err != nil {
			return nil, err
		}
	}
	if last := history[len(history)-1].Status(); last != status {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order history",
			fmt.Errorf("last history status %s does not match order status %s", last, status),
		)
	}
	o.history = history

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the order's human-readable code.
func (o *Order) Code() kernel.OrderCode {
	return o.code
}

// CustomerID returns the owning customer's id.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CustomerEmail returns the owner's notification address.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the order's creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// History returns a copy of the audit trail in creation order.
func (o *Order) History() []HistoryEntry {
	history := make([]HistoryEntry, len(o.history))
	copy(history, o.history)
	return history
}

// IsOwnedBy reports whether the given user id is the owning customer.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.customerID.IsEqual(userID)
}

// TransitionTo moves the order to target and appends the matching history entry.
//
// The state machine alone decides admissibility: targets outside the current
// status's allowed-next set, terminal statuses, and re-application of the
// current status are all rejected with *errs.InvalidTransitionError and leave
// the order unchanged. Role authority over the transition is checked by the
// access policy before this method is called.
//
// Parameters:
//   - target: the requested status
//   - actorID: the user who requested the transition (recorded in history)
//   - note: optional free-form note (e.g. a rejection reason)
//   - now: timestamp stamped on the history entry
func (o *Order) TransitionTo(target Status, actorID kernel.UUID, note string, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	entry, err := NewHistoryEntry(newStatus, &actorID, note, now)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.history = append(o.history, entry)
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code kernel.OrderCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.code = code
	return nil
}

func (o *Order) setCustomer(customerID kernel.UUID, customerEmail string) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if customerEmail == "" {
		return errs.NewValueIsRequiredError("customer email")
	}
	o.customerID = customerID
	o.customerEmail = customerEmail
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("order creation timestamp")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
