// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orders/internal/adapters/out/postgres/userrepo"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by owner and by status so the per-user listing and the advancer's
// eligibility scans stay cheap. Timestamps are domain-managed: GORM's
// automatic tracking is disabled so updated_at only moves when the aggregate
// says so.
type OrderDTO struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID        `gorm:"type:uuid;index;not null"`
	User      userrepo.UserDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ItemName  string           `gorm:"not null"`
	Quantity  int              `gorm:"not null"`
	Price     float64          `gorm:"type:decimal(12,2);not null"`
	Status    string           `gorm:"type:varchar(16);index;not null"`
	CreatedAt time.Time        `gorm:"autoCreateTime:false;not null"`
	UpdatedAt time.Time        `gorm:"autoUpdateTime:false;not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:        aggregate.ID().Bytes(),
		UserID:    aggregate.UserID().Bytes(),
		ItemName:  aggregate.ItemName(),
		Quantity:  aggregate.Quantity(),
		Price:     aggregate.Price(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and timestamps using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, userID, dto.ItemName, dto.Quantity, dto.Price,
		status, dto.CreatedAt, dto.UpdatedAt,
	)
}
