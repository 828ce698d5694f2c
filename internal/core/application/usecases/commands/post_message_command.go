package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrPostMessageCommandIsNotConstructed = errors.New(
		"PostMessageCommand must be created via NewPostMessageCommand constructor",
	)
	// ErrMessageBodyIsRequired carries the errs validation kind so callers
	// mapping error kinds see a 400-class error, not an internal one.
	ErrMessageBodyIsRequired error = errs.NewValueIsRequiredError("message body")
)

// PostMessageCommand represents a request to append a message to an order's
// thread. The author's role is snapshotted onto the message at posting time,
// so later role changes do not rewrite the thread.
//
// Example:
//
//	cmd, err := NewPostMessageCommand(messageID, orderID, customer, "Quando chega?")
//	if err != nil {
//	    return fmt.Errorf("invalid message: %w", err)
//	}
//
//	handler := NewPostMessageCommandHandler(uowFactory, policy)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to post message: %w", err)
//	}
type PostMessageCommand struct { //nolint:recvcheck //using for validation
	messageID kernel.UUID
	orderID   kernel.UUID
	author    user.User
	body      string

	guard guard.ConstructorGuard
}

// NewPostMessageCommand creates a command to post a thread message.
// Validates the identifiers and the author, and rejects bodies that are
// empty or whitespace-only.
func NewPostMessageCommand(
	messageID kernel.UUID,
	orderID kernel.UUID,
	author user.User,
	body string,
) (PostMessageCommand, error) {
	messageCommand := PostMessageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		messageCommand.setMessageID(messageID),
		messageCommand.setOrderID(orderID),
		messageCommand.setAuthor(author),
		messageCommand.setBody(body),
	); err != nil {
		return PostMessageCommand{}, err
	}

	return messageCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPostMessageCommandIsNotConstructed if validation fails.
func (c PostMessageCommand) Validate() error {
	return c.guard.Validate(ErrPostMessageCommandIsNotConstructed)
}

// MessageID returns the unique identifier for the new message.
func (c PostMessageCommand) MessageID() kernel.UUID {
	return c.messageID
}

// OrderID returns the identifier of the order whose thread receives the message.
func (c PostMessageCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Author returns the posting user.
func (c PostMessageCommand) Author() user.User {
	return c.author
}

// Body returns the message text as submitted.
func (c PostMessageCommand) Body() string {
	return c.body
}

func (c *PostMessageCommand) setMessageID(messageID kernel.UUID) error {
	if err := messageID.Validate(); err != nil {
		return err
	}

	c.messageID = messageID
	return nil
}

func (c *PostMessageCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PostMessageCommand) setAuthor(author user.User) error {
	if err := author.Validate(); err != nil {
		return err
	}

	c.author = author
	return nil
}

func (c *PostMessageCommand) setBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return ErrMessageBodyIsRequired
	}

	c.body = body
	return nil
}
