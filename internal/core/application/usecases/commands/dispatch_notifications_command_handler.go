package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/notification"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

var ErrNoPendingNotifications = errors.New("no pending notifications")

// DispatchNotificationsCommandHandler drains the notification outbox.
// Each pending record is delivered by the mailer and announced on the message
// bus; failures are retried on later passes until the attempt bound is hit.
//
// A delivery failure never aborts the pass: the failed record is marked and
// the handler moves on, so one unreachable recipient cannot starve the queue.
//
// Example:
//
//	handler := NewDispatchNotificationsCommandHandler(uowFactory, mailer, publisher, logger, 50, 5)
//	err := handler.Handle(ctx, NewDispatchNotificationsCommand())
//	if errors.Is(err, ErrNoPendingNotifications) {
//	    // nothing to do this pass
//	}
type DispatchNotificationsCommandHandler struct {
	uowFactory  NotificationUoWFactory
	mailer      ports.Mailer
	publisher   ports.OrderEventPublisher
	logger      *slog.Logger
	batchSize   int
	maxAttempts int
}

// NewDispatchNotificationsCommandHandler creates a handler for outbox draining.
// batchSize caps how many records one pass processes; maxAttempts bounds
// delivery retries before a record is marked failed.
func NewDispatchNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	mailer ports.Mailer,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
	batchSize int,
	maxAttempts int,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		uowFactory:  uowFactory,
		mailer:      mailer,
		publisher:   publisher,
		logger:      logger,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
	}
}

// Handle processes one drain pass.
// Fetches pending records oldest first and attempts delivery for each. The
// read runs outside any transaction and each record's outcome is written in
// its own short transaction, so a slow relay never pins an open transaction
// for the length of the pass. Returns ErrNoPendingNotifications when the
// outbox is empty.
func (h *DispatchNotificationsCommandHandler) Handle(ctx context.Context, cmd DispatchNotificationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pending, err := h.uowFactory.Create().NotificationRepository().GetAllPending(ctx, h.batchSize)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return ErrNoPendingNotifications
	}

	for _, record := range pending {
		h.deliver(ctx, record)

		if err = h.store(ctx, record); err != nil {
			return err
		}
	}

	return nil
}

// store commits one record's delivery bookkeeping in its own transaction.
func (h *DispatchNotificationsCommandHandler) store(ctx context.Context, record *notification.Notification) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NotificationRepository().Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// deliver attempts one notification: email first, then the integration event.
// The event is best-effort; a publish failure is logged but does not fail the
// record, because the email already went out.
func (h *DispatchNotificationsCommandHandler) deliver(ctx context.Context, record *notification.Notification) {
	err := h.mailer.Send(ctx, record.Template().String(), record.Recipient(), record.Data())
	if err != nil {
		record.RecordFailure(h.maxAttempts)
		h.logger.Warn("notification delivery failed",
			"notification_id", record.ID().String(),
			"template", record.Template().String(),
			"attempts", record.Attempts(),
			"error", err)
		return
	}

	record.MarkSent(time.Now().UTC())

	data := record.Data()
	event := order.NewStatusChanged(
		record.OrderID().String(), data["order_code"], data["status"], record.CreatedAt())
	if err = h.publisher.PublishStatusChanged(ctx, event); err != nil {
		h.logger.Warn("status changed event publish failed",
			"order_id", record.OrderID().String(),
			"error", err)
	}
}
