package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListMessagesQueryHandler retrieves order threads from the database.
// The order's visibility check runs before any message is read, so a
// customer probing a foreign order learns nothing about its thread.
//
// Example:
//
//	handler := NewListMessagesQueryHandler(db, policy)
//	query, _ := NewListMessagesQuery(orderID, actor)
//
//	thread, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order, or one the caller may not see
//	}
type ListMessagesQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewListMessagesQueryHandler creates a handler for thread queries.
// Requires a GORM database connection and the access policy.
func NewListMessagesQueryHandler(db *gorm.DB, policy services.AccessPolicy) ListMessagesQueryHandler {
	return ListMessagesQueryHandler{db: db, policy: policy}
}

// Handle executes the thread query.
// Resolves the order's owner first for the visibility check, then returns
// the messages in posting order, ties broken by insertion order.
func (h ListMessagesQueryHandler) Handle(
	ctx context.Context,
	query ListMessagesQuery,
) ([]MessageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ownerID, err := h.loadOwner(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	actor := query.Actor()
	if !h.policy.CanReadOrder(actor.Role(), actor.Owns(ownerID)) {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			author_id,
			author_role,
			body,
			at
		FROM messages
		WHERE order_id = ?
		ORDER BY at, seq
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	thread := make([]MessageResponse, 0)
	for rows.Next() {
		var msg MessageResponse
		var id, authorID uuid.UUID
		var at time.Time

		err = rows.Scan(
			&id,
			&authorID,
			&msg.AuthorRole,
			&msg.Body,
			&at,
		)
		if err != nil {
			return nil, err
		}

		msg.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		msg.AuthorID, err = kernel.UUIDFromBytes(authorID[:])
		if err != nil {
			return nil, err
		}
		msg.At = at
		thread = append(thread, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return thread, nil
}

func (h ListMessagesQueryHandler) loadOwner(ctx context.Context, orderID kernel.UUID) (kernel.UUID, error) {
	rows, err := h.db.WithContext(ctx).Raw(
		"SELECT customer_id FROM orders WHERE id = ?", orderID.Bytes()).Rows()
	if err != nil {
		return kernel.UUID{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return kernel.UUID{}, err
		}
		return kernel.UUID{}, errs.NewObjectNotFoundError("order", orderID)
	}

	var ownerID uuid.UUID
	if err = rows.Scan(&ownerID); err != nil {
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(ownerID[:])
}
