package orderrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order aggregate: the order row, its items, and the initial
// history entry.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, items, history := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&history).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateStatus persists a transitioned aggregate. The order row is updated
// only if its stored status still equals previous; a zero-row update means a
// concurrent transition won and is reported as *errs.ConflictError. The
// latest history entry is appended in the same call.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	aggregate *order.Order,
	previous order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := previous.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), previous.String()).
		Update("status", aggregate.Status().String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", aggregate.ID().String())
	}

	history := aggregate.History()
	latest := historyFromDomain(aggregate.ID().Bytes(), history[len(history)-1])
	if err := r.db.WithContext(ctx).Create(&latest).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID together with its items and full history.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	var items []ItemDTO
	if err := r.db.WithContext(ctx).
		Order("seq").Find(&items, "order_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	var history []HistoryDTO
	if err := r.db.WithContext(ctx).
		Order("seq").Find(&history, "order_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, items, history)
}

// NextCodeSequence reserves the next value of the order code sequence.
func (r *GormOrderRepository) NextCodeSequence(ctx context.Context) (int64, error) {
	var sequence int64
	err := r.db.WithContext(ctx).
		Raw("SELECT nextval('order_code_seq')").Scan(&sequence).Error
	if err != nil {
		return 0, err
	}

	return sequence, nil
}
