package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/notification"
	"storefront/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Mints a human-readable order code from the database sequence, creates the
// order in PLACED status, and records the confirmation notification in the
// outbox within the same transaction.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, "factory@example.com")
//	cmd, _ := NewPlaceOrderCommand(orderID, customerID, "ana@example.com", lines)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory        OrderUoWFactory
	factoryGroupEmail string
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and the factory
// group mailbox used when addressing factory-facing notifications.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory, factoryGroupEmail string) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:        uowFactory,
		factoryGroupEmail: factoryGroupEmail,
	}
}

// Handle processes the order placement command.
// Reserves the next code sequence value, builds the aggregate with its items,
// persists it together with the placement notification, and commits.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	sequence, err := orderRepo.NextCodeSequence(ctx)
	if err != nil {
		return err
	}

	code, err := kernel.NewOrderCode(sequence)
	if err != nil {
		return err
	}

	items := make([]order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		item, err := order.NewItem(
			kernel.NewUUID(), line.ProductName, line.FabricName, line.FabricGrade, line.Quantity)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	now := time.Now().UTC()
	aggregate, err := order.NewOrder(
		cmd.OrderID(), code, cmd.CustomerID(), cmd.CustomerEmail(), items, now)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	placed, err := notification.ForStatus(
		kernel.NewUUID(), aggregate, order.Placed, "", h.factoryGroupEmail, now)
	if err != nil {
		return err
	}

	if err = uow.NotificationRepository().Add(ctx, placed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
