package messagerepo

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/message"

	"gorm.io/gorm"
)

// GormMessageRepository implements MessageRepository using GORM.
// The thread is append-only, so the repository exposes no update or delete.
type GormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a new GORM message repository.
func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// Add appends a message to its order's thread.
func (r *GormMessageRepository) Add(ctx context.Context, msg *message.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	dto := fromDomain(msg)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllByOrder retrieves an order's full thread in posting order, ties
// broken by insertion order.
func (r *GormMessageRepository) GetAllByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*message.Message, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MessageDTO
	if err := r.db.WithContext(ctx).
		Order("at, seq").Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	thread := make([]*message.Message, 0, len(dtos))
	for _, dto := range dtos {
		msg, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		thread = append(thread, msg)
	}

	return thread, nil
}
