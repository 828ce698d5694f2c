// Package ports defines the contracts between the core and its collaborators:
// repositories, the unit of work, identity resolution, mail delivery, and
// event publishing. These interfaces establish the dependency inversion
// boundary between the domain layer and infrastructure.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations must persist the order row, its items, and its history
// entries together, and must uphold the append-only nature of history.
type OrderRepository interface {
	// Add persists a new order aggregate with its items and initial history.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus persists a transitioned aggregate: it updates the order's
	// status guarded by the expected previous status and appends the latest
	// history entry in the same transaction context.
	//
	// The status update is conditional (an optimistic check): if the stored
	// status no longer equals previous, no row is touched and
	// *errs.ConflictError is returned so the caller can re-fetch and retry.
	UpdateStatus(ctx context.Context, aggregate *order.Order, previous order.Status) error

	// Get retrieves an order aggregate by its unique identifier, including
	// items and the full history in creation order.
	// Returns *errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// NextCodeSequence reserves and returns the next value of the order code
	// sequence used to mint human-readable codes.
	NextCodeSequence(ctx context.Context) (int64, error)
}
