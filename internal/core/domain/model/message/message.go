package message

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"
)

var (
	// ErrMessageIsNotConstructed is returned when a Message instance was not created
	// through the NewMessage or RestoreMessage factory methods.
	ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")
)

// Message is one immutable record of an order's communication thread.
// It captures the author, a snapshot of the author's role at posting time,
// the trimmed text body, and the posting timestamp. Messages are append-only:
// there is no edit or delete operation, and ordering by creation time defines
// the conversation.
//
// The role snapshot is denormalized on purpose: a later role change must not
// rewrite what the thread looked like when the message was posted.
type Message struct {
	id         kernel.UUID
	orderID    kernel.UUID
	authorID   kernel.UUID
	authorRole user.Role
	body       string
	at         time.Time

	isConstructed bool
}

// NewMessage creates a validated thread message.
// The body is trimmed of surrounding whitespace and must be non-empty after
// trimming; blank bodies are rejected with a required-value error.
func NewMessage(
	id kernel.UUID,
	orderID kernel.UUID,
	authorID kernel.UUID,
	authorRole user.Role,
	body string,
	at time.Time,
) (*Message, error) {
	m := &Message{isConstructed: true}

	if err := errors.Join(
		m.setID(id),
		m.setOrderID(orderID),
		m.setAuthor(authorID, authorRole),
		m.setBody(body),
		m.setAt(at),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMessage reconstructs a Message from persistence.
// Unlike NewMessage it does not re-trim the body; the stored body is taken as
// the immutable record.
func RestoreMessage(
	id kernel.UUID,
	orderID kernel.UUID,
	authorID kernel.UUID,
	authorRole user.Role,
	body string,
	at time.Time,
) (*Message, error) {
	m := &Message{isConstructed: true}

	if err := errors.Join(
		m.setID(id),
		m.setOrderID(orderID),
		m.setAuthor(authorID, authorRole),
		m.setAt(at),
	); err != nil {
		return nil, err
	}

	if body == "" {
		return nil, errs.NewValueIsRequiredError("message body")
	}
	m.body = body

	return m, nil
}

// Validate ensures the Message instance was properly constructed through a factory method.
func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

// ID returns the message's unique identifier.
func (m *Message) ID() kernel.UUID {
	return m.id
}

// OrderID returns the id of the order this message belongs to.
func (m *Message) OrderID() kernel.UUID {
	return m.orderID
}

// AuthorID returns the posting user's id.
func (m *Message) AuthorID() kernel.UUID {
	return m.authorID
}

// AuthorRole returns the author's role as snapshotted at posting time.
func (m *Message) AuthorRole() user.Role {
	return m.authorRole
}

// Body returns the trimmed text body.
func (m *Message) Body() string {
	return m.body
}

// At returns the posting timestamp.
func (m *Message) At() time.Time {
	return m.at
}

func (m *Message) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Message) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	m.orderID = orderID
	return nil
}

func (m *Message) setAuthor(authorID kernel.UUID, authorRole user.Role) error {
	if err := authorID.Validate(); err != nil {
		return err
	}
	if err := authorRole.Validate(); err != nil {
		return err
	}
	m.authorID = authorID
	m.authorRole = authorRole
	return nil
}

func (m *Message) setBody(body string) error {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("message body")
	}
	m.body = trimmed
	return nil
}

func (m *Message) setAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("message timestamp")
	}
	m.at = at
	return nil
}
