package ports

import (
	"context"

	"storefront/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for the
// notification outbox. Outbox rows are written in the same transaction as the
// state change they announce and drained asynchronously by the dispatch job.
type NotificationRepository interface {
	// Add persists a new pending outbox record.
	Add(ctx context.Context, n *notification.Notification) error

	// GetAllPending retrieves up to limit pending records, oldest first.
	GetAllPending(ctx context.Context, limit int) ([]*notification.Notification, error)

	// Update persists delivery bookkeeping: state, attempts, and sent-at.
	Update(ctx context.Context, n *notification.Notification) error
}
