// Package messagerepo persists order thread messages.
package messagerepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/message"
	"storefront/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// MessageDTO represents the database structure for thread messages.
// Seq breaks ordering ties between messages posted within the same instant.
type MessageDTO struct {
	Seq        int64     `gorm:"primaryKey;autoIncrement"`
	ID         uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	AuthorID   uuid.UUID `gorm:"type:uuid"`
	AuthorRole string
	Body       string
	At         time.Time
}

// TableName specifies the database table name for thread messages.
func (MessageDTO) TableName() string {
	return "messages"
}

// fromDomain converts a message to its database representation.
func fromDomain(msg *message.Message) MessageDTO {
	return MessageDTO{
		ID:         msg.ID().Bytes(),
		OrderID:    msg.OrderID().Bytes(),
		AuthorID:   msg.AuthorID().Bytes(),
		AuthorRole: msg.AuthorRole().String(),
		Body:       msg.Body(),
		At:         msg.At(),
	}
}

// toDomain converts a database row back into a message.
func toDomain(dto MessageDTO) (*message.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	authorID, err := kernel.UUIDFromBytes(dto.AuthorID[:])
	if err != nil {
		return nil, err
	}

	authorRole, err := user.RoleFromString(dto.AuthorRole)
	if err != nil {
		return nil, err
	}

	return message.RestoreMessage(id, orderID, authorID, authorRole, dto.Body, dto.At)
}
