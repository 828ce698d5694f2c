package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
	// ErrRejectionReasonIsRequired carries the errs validation kind so callers
	// mapping error kinds see a 400-class error, not an internal one.
	ErrRejectionReasonIsRequired error = errs.NewValueIsRequiredError("rejection reason")
)

// TransitionOrderCommand represents a request to move an order to a new
// lifecycle status. Carries the acting user so that authority and ownership
// can be checked against the order, and an optional note recorded in history.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, order.Approved, operator, "")
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewTransitionOrderCommandHandler(uowFactory, policy, factoryGroupEmail)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transition failed: %w", err)
//	}
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	actor   user.User
	note    string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to transition an order.
// Validates the identifiers, the target status, and the acting user, and
// requires a non-blank note when the target is REJECTED.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	target order.Status,
	actor user.User,
	note string,
) (TransitionOrderCommand, error) {
	transitionCommand := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setOrderID(orderID),
		transitionCommand.setTarget(target),
		transitionCommand.setActor(actor),
		transitionCommand.setNote(target, note),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// Actor returns the user requesting the transition.
func (c TransitionOrderCommand) Actor() user.User {
	return c.actor
}

// Note returns the free-text note to record in the order history.
func (c TransitionOrderCommand) Note() string {
	return c.note
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *TransitionOrderCommand) setActor(actor user.User) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *TransitionOrderCommand) setNote(target order.Status, note string) error {
	if target == order.Rejected && strings.TrimSpace(note) == "" {
		return ErrRejectionReasonIsRequired
	}

	c.note = strings.TrimSpace(note)
	return nil
}
