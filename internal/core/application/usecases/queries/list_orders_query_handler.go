package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves order listing pages from the database.
// The acting user's role decides between the staff view over all orders and
// the customer view restricted to owned orders.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db, policy)
//	query, _ := NewListOrdersQuery(operator, "ana@", 20, 0)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
type ListOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection and the access policy.
func NewListOrdersQueryHandler(db *gorm.DB, policy services.AccessPolicy) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, policy: policy}
}

// Handle executes the listing query.
// Staff get all orders, optionally narrowed by a case-insensitive substring
// match on code or customer email; customers get their own orders. Both
// views are ordered newest first and paged by limit and offset.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where := "WHERE customer_id = ?"
	args := []any{query.Actor().ID().Bytes()}

	if h.policy.CanListAllOrders(query.Actor().Role()) {
		where = ""
		args = nil
		if query.Filter() != "" {
			pattern := "%" + query.Filter() + "%"
			where = "WHERE (code ILIKE ? OR customer_email ILIKE ?)"
			args = []any{pattern, pattern}
		}
	}

	var total int64
	countRow := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM orders "+where, args...).Row()
	if err := countRow.Scan(&total); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			status,
			customer_email,
			created_at
		FROM orders
		`+where+`
		ORDER BY created_at DESC, code DESC
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), query.Offset())...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderSummaryResponse, 0)
	for rows.Next() {
		var summary OrderSummaryResponse
		var id uuid.UUID
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&summary.Code,
			&summary.Status,
			&summary.CustomerEmail,
			&createdAt,
		)
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}

		summary.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}
		summary.CreatedAt = createdAt
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{Orders: orders, Total: total}, nil
}
