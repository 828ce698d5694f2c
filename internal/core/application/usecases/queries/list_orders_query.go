package queries

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrLimitIsInvalid  = errors.New("limit must be greater than 0")
	ErrOffsetIsInvalid = errors.New("offset must not be negative")
)

// ListOrdersQuery retrieves a page of orders, newest first.
// Staff see every order and may narrow the page with a free-text filter
// matched against order codes and customer emails. Customers always get
// their own orders only; the filter and nothing else distinguishes the
// two modes.
//
// Example:
//
//	query, err := NewListOrdersQuery(actor, "ORD-10", 20, 0)
//	if err != nil {
//	    return fmt.Errorf("invalid listing request: %w", err)
//	}
//
//	handler := NewListOrdersQueryHandler(db, policy)
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("showing %d of %d orders\n", len(page.Orders), page.Total)
type ListOrdersQuery struct {
	actor  user.User
	filter string
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for a page of orders.
// Validates the acting user and the page bounds; the filter is trimmed and
// may be empty.
func NewListOrdersQuery(actor user.User, filter string, limit, offset int) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if limit <= 0 {
		return ListOrdersQuery{}, ErrLimitIsInvalid
	}
	if offset < 0 {
		return ListOrdersQuery{}, ErrOffsetIsInvalid
	}

	return ListOrdersQuery{
		actor:  actor,
		filter: strings.TrimSpace(filter),
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Actor returns the requesting user.
func (q ListOrdersQuery) Actor() user.User {
	return q.actor
}

// Filter returns the trimmed free-text filter; empty means no filtering.
func (q ListOrdersQuery) Filter() string {
	return q.filter
}

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of orders skipped before the page.
func (q ListOrdersQuery) Offset() int {
	return q.offset
}

// ListOrdersQueryResponse represents one page of the order listing together
// with the total number of matching orders.
type ListOrdersQueryResponse struct {
	Orders []OrderSummaryResponse
	Total  int64
}

// OrderSummaryResponse represents one order row of the listing.
type OrderSummaryResponse struct {
	ID            kernel.UUID
	Code          string
	Status        string
	CustomerEmail string
	CreatedAt     time.Time
}
