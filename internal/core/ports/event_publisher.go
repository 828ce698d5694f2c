package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// OrderEventPublisher publishes order integration events to the message bus.
// Publishing strictly follows transaction commit and is best-effort from the
// caller's perspective; the dispatch job owns retries.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event order.StatusChanged) error
}
