// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Query handlers read directly from the database and return flat response
// models instead of domain aggregates.
package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its items and full status history.
// Carries the acting user so ownership can be checked: customers only see
// their own orders, and foreign identifiers read as missing.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID, actor)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	handler := NewGetOrderQueryHandler(db, policy)
//	response, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order, or one the caller may not see
//	}
type GetOrderQuery struct {
	orderID kernel.UUID
	actor   user.User

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve a single order.
// Validates the order identifier and the acting user.
func NewGetOrderQuery(orderID kernel.UUID, actor user.User) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if err := actor.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the requesting user.
func (q GetOrderQuery) Actor() user.User {
	return q.actor
}

// GetOrderQueryResponse represents one order read model: the order row, its
// items, and the append-only history in recording order.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	Code          string
	Status        string
	CustomerID    kernel.UUID
	CustomerEmail string
	CreatedAt     time.Time
	Items         []OrderItemResponse
	History       []HistoryEntryResponse
}

// OrderItemResponse represents one furniture line of an order.
type OrderItemResponse struct {
	ID          kernel.UUID
	ProductName string
	FabricName  string
	FabricGrade string
	Quantity    int
}

// HistoryEntryResponse represents one recorded status change.
// ActorID is nil for entries recorded by the system rather than a user.
type HistoryEntryResponse struct {
	Status  string
	ActorID *kernel.UUID
	Note    string
	At      time.Time
}
