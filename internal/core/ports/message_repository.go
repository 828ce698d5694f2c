package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/message"
)

// MessageRepository defines the persistence contract for thread messages.
// The thread is append-only: there are no update or delete operations.
type MessageRepository interface {
	// Add appends a message to its order's thread.
	Add(ctx context.Context, msg *message.Message) error

	// GetAllByOrder retrieves an order's full thread in creation order,
	// ties broken by insertion order.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*message.Message, error)
}
