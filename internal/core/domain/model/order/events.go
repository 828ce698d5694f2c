package order

import "time"

// StatusChanged is the integration event published after a transition commits.
// It carries only what downstream consumers need to react to the change; the
// full order stays behind the API.
type StatusChanged struct {
	OrderID    string    `json:"order_id"`
	OrderCode  string    `json:"order_code"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewStatusChanged builds the integration event for a reached status.
// The fields are already strings because the event may be rebuilt from the
// outbox record long after the aggregate itself changed again.
func NewStatusChanged(orderID, orderCode, status string, occurredAt time.Time) StatusChanged {
	return StatusChanged{
		OrderID:    orderID,
		OrderCode:  orderCode,
		Status:     status,
		OccurredAt: occurredAt,
	}
}
