package notificationrepo

import (
	"context"

	"storefront/internal/core/domain/model/notification"

	"gorm.io/gorm"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Add persists a new pending outbox record.
func (r *GormNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(n)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllPending retrieves up to limit pending records, oldest first.
func (r *GormNotificationRepository) GetAllPending(
	ctx context.Context,
	limit int,
) ([]*notification.Notification, error) {
	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Where("state = ?", notification.Pending.String()).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	pending := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		pending = append(pending, n)
	}

	return pending, nil
}

// Update persists delivery bookkeeping: state, attempts, and sent-at.
func (r *GormNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("id = ?", n.ID().Bytes()).
		Select("state", "attempts", "sent_at").
		Updates(NotificationDTO{
			State:    n.State().String(),
			Attempts: n.Attempts(),
			SentAt:   n.SentAt(),
		}).Error
}
