// Package notificationrepo persists the notification outbox.
package notificationrepo

import (
	"encoding/json"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for outbox records.
// Template data is stored as a JSON document so templates can grow fields
// without schema changes.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Template  string
	Recipient string
	Data      string `gorm:"type:jsonb"`
	State     string `gorm:"index"`
	Attempts  int
	CreatedAt time.Time
	SentAt    *time.Time
}

// TableName specifies the database table name for outbox records.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts an outbox record to its database representation.
func fromDomain(n *notification.Notification) (NotificationDTO, error) {
	data, err := json.Marshal(n.Data())
	if err != nil {
		return NotificationDTO{}, err
	}

	return NotificationDTO{
		ID:        n.ID().Bytes(),
		OrderID:   n.OrderID().Bytes(),
		Template:  n.Template().String(),
		Recipient: n.Recipient(),
		Data:      string(data),
		State:     n.State().String(),
		Attempts:  n.Attempts(),
		CreatedAt: n.CreatedAt(),
		SentAt:    n.SentAt(),
	}, nil
}

// toDomain converts a database row back into an outbox record.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	template, err := notification.TemplateFromString(dto.Template)
	if err != nil {
		return nil, err
	}

	state, err := notification.StateFromString(dto.State)
	if err != nil {
		return nil, err
	}

	var data map[string]string
	if err = json.Unmarshal([]byte(dto.Data), &data); err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id, orderID, template, dto.Recipient, data, state, dto.Attempts, dto.CreatedAt, dto.SentAt)
}
