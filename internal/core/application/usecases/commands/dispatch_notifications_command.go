package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrDispatchNotificationsCommandIsNotConstructed = errors.New(
	"DispatchNotificationsCommand must be created via NewDispatchNotificationsCommand constructor",
)

// DispatchNotificationsCommand triggers one drain pass over the notification
// outbox. Pending records are sent by email, the status-changed integration
// event is published, and delivery bookkeeping is written back.
//
// Example:
//
//	cmd := NewDispatchNotificationsCommand()
//	handler := NewDispatchNotificationsCommandHandler(uowFactory, mailer, publisher, logger, 50, 5)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("dispatch pass failed: %v", err)
//	}
type DispatchNotificationsCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchNotificationsCommand creates a new command to trigger a drain pass.
// This is a parameterless command; batch size and retry bounds live on the handler.
func NewDispatchNotificationsCommand() DispatchNotificationsCommand {
	return DispatchNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchNotificationsCommandIsNotConstructed if validation fails.
func (c *DispatchNotificationsCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchNotificationsCommandIsNotConstructed,
	)
}
