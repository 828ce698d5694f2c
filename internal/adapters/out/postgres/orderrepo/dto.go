// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items and history live in their own tables; statuses are stored by their
// wire label so the rows read naturally in SQL.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code          string    `gorm:"uniqueIndex"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index"`
	CustomerEmail string
	Status        string `gorm:"index"`
	CreatedAt     time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one furniture line of an order.
// Seq preserves the position of the line within the order.
type ItemDTO struct {
	Seq         int64     `gorm:"primaryKey;autoIncrement"`
	ID          uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductName string
	FabricName  string
	FabricGrade string
	Quantity    int
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// HistoryDTO represents one recorded status change of an order.
// Rows are append-only; Seq preserves recording order within equal timestamps.
type HistoryDTO struct {
	Seq     int64      `gorm:"primaryKey;autoIncrement"`
	OrderID uuid.UUID  `gorm:"type:uuid;index"`
	Status  string
	ActorID *uuid.UUID `gorm:"type:uuid"`
	Note    string
	At      time.Time
}

// TableName specifies the database table name for order history entries.
func (HistoryDTO) TableName() string {
	return "order_history"
}

// fromDomain converts an order domain aggregate to its database representation:
// the order row plus one row per item and per history entry.
func fromDomain(aggregate *order.Order) (OrderDTO, []ItemDTO, []HistoryDTO) {
	dto := OrderDTO{
		ID:            aggregate.ID().Bytes(),
		Code:          aggregate.Code().String(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		CustomerEmail: aggregate.CustomerEmail(),
		Status:        aggregate.Status().String(),
		CreatedAt:     aggregate.CreatedAt(),
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     dto.ID,
			ProductName: item.ProductName(),
			FabricName:  item.FabricName(),
			FabricGrade: item.FabricGrade(),
			Quantity:    item.Quantity(),
		})
	}

	history := make([]HistoryDTO, 0, len(aggregate.History()))
	for _, entry := range aggregate.History() {
		history = append(history, historyFromDomain(dto.ID, entry))
	}

	return dto, items, history
}

func historyFromDomain(orderID uuid.UUID, entry order.HistoryEntry) HistoryDTO {
	var actorID *uuid.UUID
	if id := entry.ActorID(); id != nil {
		raw := id.Bytes()
		actorID = &raw
	}

	return HistoryDTO{
		OrderID: orderID,
		Status:  entry.Status().String(),
		ActorID: actorID,
		Note:    entry.Note(),
		At:      entry.At(),
	}
}

// toDomain converts database rows back into an order domain aggregate
// using RestoreOrder, which re-checks the aggregate invariants.
func toDomain(dto OrderDTO, itemDTOs []ItemDTO, historyDTOs []HistoryDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := kernel.OrderCodeFromString(dto.Code)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.HistoryEntry, 0, len(historyDTOs))
	for _, historyDTO := range historyDTOs {
		entry, entryErr := historyToDomain(historyDTO)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	return order.RestoreOrder(
		id, code, customerID, dto.CustomerEmail, status, dto.CreatedAt, items, history)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(id, dto.ProductName, dto.FabricName, dto.FabricGrade, dto.Quantity)
}

func historyToDomain(dto HistoryDTO) (order.HistoryEntry, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return order.HistoryEntry{}, err
	}

	var actorID *kernel.UUID
	if dto.ActorID != nil {
		actor, actorErr := kernel.UUIDFromBytes((*dto.ActorID)[:])
		if actorErr != nil {
			return order.HistoryEntry{}, actorErr
		}
		actorID = &actor
	}

	return order.NewHistoryEntry(status, actorID, dto.Note, dto.At)
}
