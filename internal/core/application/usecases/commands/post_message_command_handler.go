package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/message"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

// PostMessageCommandHandler handles appending messages to order threads.
// Staff may post to any order's thread; customers only to their own.
//
// Example:
//
//	handler := NewPostMessageCommandHandler(uowFactory, policy)
//	cmd, _ := NewPostMessageCommand(messageID, orderID, operator, "Tecido chegou hoje.")
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("posting failed: %w", err)
//	}
type PostMessageCommandHandler struct {
	uowFactory MessageUoWFactory
	policy     services.AccessPolicy
}

// NewPostMessageCommandHandler creates a handler for thread posting.
// Requires a MessageUoWFactory for transactional persistence and the access policy.
func NewPostMessageCommandHandler(
	uowFactory MessageUoWFactory,
	policy services.AccessPolicy,
) PostMessageCommandHandler {
	return PostMessageCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the post-message command.
// Loads the order to establish ownership, checks posting rights, snapshots
// the author's role onto the message, and appends it to the thread.
// Customers probing orders they do not own receive *errs.ObjectNotFoundError.
func (h *PostMessageCommandHandler) Handle(ctx context.Context, cmd PostMessageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	author := cmd.Author()
	isOwner := aggregate.IsOwnedBy(author.ID())
	if !h.policy.CanPostMessage(author.Role(), isOwner) {
		if author.Role() == user.Customer && !isOwner {
			return errs.NewObjectNotFoundError("order", cmd.OrderID())
		}
		return errs.NewUnauthorizedError("post message to order " + aggregate.Code().String())
	}

	msg, err := message.NewMessage(
		cmd.MessageID(), cmd.OrderID(), author.ID(), author.Role(), cmd.Body(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.MessageRepository().Add(ctx, msg); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
