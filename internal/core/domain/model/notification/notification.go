package notification

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

var (
	// ErrNotificationIsNotConstructed is returned when a Notification was not
	// created through a factory method.
	ErrNotificationIsNotConstructed = errors.New(
		"Notification must be created via ForStatus or RestoreNotification",
	)
)

// State tracks a notification's position in the outbox.
type State int

const (
	// UnknownState represents an invalid or undefined state.
	UnknownState State = iota

	// Pending means the notification awaits delivery (or a retry).
	Pending

	// Sent means delivery succeeded; terminal.
	Sent

	// Failed means delivery was abandoned after exhausting attempts; terminal.
	Failed
)

// getStateStrings returns a map of State values to their string representations.
func getStateStrings() map[State]string {
	return map[State]string{
		UnknownState: "unknown",
		Pending:      "pending",
		Sent:         "sent",
		Failed:       "failed",
	}
}

// StateFromString parses a stored state back into a State.
func StateFromString(s string) (State, error) {
	for state, str := range getStateStrings() {
		if state != UnknownState && str == s {
			return state, nil
		}
	}
	return UnknownState, errs.NewValueIsInvalidError("notification state")
}

// String returns the state's string representation.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the State value is valid.
func (s State) Validate() error {
	if s != Pending && s != Sent && s != Failed {
		return errs.NewValueIsInvalidError("notification state")
	}
	return nil
}

// Notification is one outbox record: the intent to deliver one templated
// email about one order transition. It is persisted in the same transaction
// as the transition itself and drained asynchronously, so a completed
// transition is never invalidated by mail-server trouble and delivery is
// at-least-once.
type Notification struct {
	id        kernel.UUID
	orderID   kernel.UUID
	template  Template
	recipient string
	data      map[string]string
	state     State
	attempts  int
	createdAt time.Time
	sentAt    *time.Time

	isConstructed bool
}

// ForStatus builds the pending notification for a reached order status,
// applying the transition-to-template mapping and addressing rules.
// note carries the rejection reason for REJECTED transitions;
// factoryGroupEmail is the configured mailbox of the factory role group.
func ForStatus(
	id kernel.UUID,
	o *order.Order,
	reached order.Status,
	note string,
	factoryGroupEmail string,
	now time.Time,
) (*Notification, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := reached.Validate(); err != nil {
		return nil, err
	}

	template := TemplateForStatus(reached)

	recipient := o.CustomerEmail()
	if template == NewOrderForFactory {
		recipient = factoryGroupEmail
	}

	data := map[string]string{
		"order_code": o.Code().String(),
		"status":     reached.String(),
	}
	if template == OrderRejected {
		data["reason"] = note
	}

	return newNotification(id, o.ID(), template, recipient, data, now)
}

// RestoreNotification reconstructs an outbox record from persistence.
func RestoreNotification(
	id kernel.UUID,
	orderID kernel.UUID,
	template Template,
	recipient string,
	data map[string]string,
	state State,
	attempts int,
	createdAt time.Time,
	sentAt *time.Time,
) (*Notification, error) {
	n, err := newNotification(id, orderID, template, recipient, data, createdAt)
	if err != nil {
		return nil, err
	}
	if err = state.Validate(); err != nil {
		return nil, err
	}
	if attempts < 0 {
		return nil, errs.NewValueIsInvalidError("notification attempts")
	}

	n.state = state
	n.attempts = attempts
	n.sentAt = sentAt
	return n, nil
}

func newNotification(
	id kernel.UUID,
	orderID kernel.UUID,
	template Template,
	recipient string,
	data map[string]string,
	createdAt time.Time,
) (*Notification, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), template.Validate()); err != nil {
		return nil, err
	}
	if strings.TrimSpace(recipient) == "" {
		return nil, errs.NewValueIsRequiredError("notification recipient")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("notification creation timestamp")
	}

	return &Notification{
		id:            id,
		orderID:       orderID,
		template:      template,
		recipient:     recipient,
		data:          data,
		state:         Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Notification was properly constructed through a factory method.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the outbox record's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// OrderID returns the id of the order the notification is about.
func (n *Notification) OrderID() kernel.UUID {
	return n.orderID
}

// Template returns the email template to render.
func (n *Notification) Template() Template {
	return n.template
}

// Recipient returns the destination address.
func (n *Notification) Recipient() string {
	return n.recipient
}

// Data returns the template data.
func (n *Notification) Data() map[string]string {
	return n.data
}

// State returns the notification's outbox state.
func (n *Notification) State() State {
	return n.state
}

// Attempts returns the number of failed delivery attempts so far.
func (n *Notification) Attempts() int {
	return n.attempts
}

// CreatedAt returns the record's creation timestamp.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// SentAt returns the delivery timestamp. Returns nil until delivery succeeds.
func (n *Notification) SentAt() *time.Time {
	return n.sentAt
}

// MarkSent records a successful delivery.
func (n *Notification) MarkSent(at time.Time) {
	n.state = Sent
	n.sentAt = &at
}

// RecordFailure records one failed delivery attempt. The record stays pending
// for retry until maxAttempts is reached, then flips to Failed and is no
// longer picked up by the dispatcher.
func (n *Notification) RecordFailure(maxAttempts int) {
	n.attempts++
	if n.attempts >= maxAttempts {
		n.state = Failed
	}
}
