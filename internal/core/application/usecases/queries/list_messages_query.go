package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/guard"
)

var ErrListMessagesQueryIsNotConstructed = errors.New(
	"ListMessagesQuery must be created via NewListMessagesQuery constructor",
)

// ListMessagesQuery retrieves an order's full message thread in posting
// order. Visibility follows the order itself: customers only read threads of
// orders they own.
//
// Example:
//
//	query, err := NewListMessagesQuery(orderID, actor)
//	if err != nil {
//	    return fmt.Errorf("invalid thread request: %w", err)
//	}
//
//	handler := NewListMessagesQueryHandler(db, policy)
//	thread, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
type ListMessagesQuery struct {
	orderID kernel.UUID
	actor   user.User

	guard guard.ConstructorGuard
}

// NewListMessagesQuery creates a query for an order's thread.
// Validates the order identifier and the acting user.
func NewListMessagesQuery(orderID kernel.UUID, actor user.User) (ListMessagesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ListMessagesQuery{}, err
	}
	if err := actor.Validate(); err != nil {
		return ListMessagesQuery{}, err
	}

	return ListMessagesQuery{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListMessagesQueryIsNotConstructed if validation fails.
func (q ListMessagesQuery) Validate() error {
	return q.guard.Validate(ErrListMessagesQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose thread is requested.
func (q ListMessagesQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the requesting user.
func (q ListMessagesQuery) Actor() user.User {
	return q.actor
}

// MessageResponse represents one thread message. AuthorRole is the role the
// author held when the message was posted, not their current role.
type MessageResponse struct {
	ID         kernel.UUID
	AuthorID   kernel.UUID
	AuthorRole string
	Body       string
	At         time.Time
}
