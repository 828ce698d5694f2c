package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/notification"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

// TransitionOrderCommandHandler orchestrates order lifecycle transitions.
// Enforces the access policy before touching the aggregate, applies the
// status machine, and records the resulting notification in the outbox
// within the same transaction as the status change.
//
// The status update is guarded by the status the aggregate was loaded with:
// a concurrent transition causes *errs.ConflictError instead of a silently
// lost update.
//
// Example:
//
//	handler := NewTransitionOrderCommandHandler(uowFactory, policy, factoryGroupEmail)
//	cmd, _ := NewTransitionOrderCommand(orderID, order.Rejected, admin, "fabric discontinued")
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // someone else moved the order first; re-read and retry
//	}
type TransitionOrderCommandHandler struct {
	uowFactory        OrderUoWFactory
	policy            services.AccessPolicy
	factoryGroupEmail string
}

// NewTransitionOrderCommandHandler creates a handler for lifecycle transitions.
// Requires an OrderUoWFactory for transactional persistence, the access
// policy, and the factory group mailbox for factory-facing notifications.
func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
	factoryGroupEmail string,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory:        uowFactory,
		policy:            policy,
		factoryGroupEmail: factoryGroupEmail,
	}
}

// Handle processes the transition command.
// Loads the order, checks the actor's authority, applies the transition, and
// persists the new status together with the outbox notification. Customers
// probing orders they do not own receive *errs.ObjectNotFoundError rather
// than an authorization error, so order identifiers are not disclosed.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	actor := cmd.Actor()
	isOwner := aggregate.IsOwnedBy(actor.ID())
	if !h.policy.CanTransition(actor.Role(), isOwner, cmd.Target()) {
		if actor.Role() == user.Customer && !isOwner {
			return errs.NewObjectNotFoundError("order", cmd.OrderID())
		}
		return errs.NewUnauthorizedError("transition order " + aggregate.Code().String())
	}

	previous := aggregate.Status()
	now := time.Now().UTC()

	if err = aggregate.TransitionTo(cmd.Target(), actor.ID(), cmd.Note(), now); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, aggregate, previous); err != nil {
		return err
	}

	reached, err := notification.ForStatus(
		kernel.NewUUID(), aggregate, cmd.Target(), cmd.Note(), h.factoryGroupEmail, now)
	if err != nil {
		return err
	}

	if err = uow.NotificationRepository().Add(ctx, reached); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
