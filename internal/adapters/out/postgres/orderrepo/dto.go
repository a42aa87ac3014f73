// Package orderrepo persists order aggregates with GORM. The schema itself is
// owned by the migrations package; OrderDTO only mirrors it.
package orderrepo

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderDTO is the row shape of the orders table. Status is stored by name.
type OrderDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Status    string `gorm:"type:varchar(16);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName pins the table name so it matches the migration.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:     aggregate.ID().Int64(),
		Status: aggregate.Status().String(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseState(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, status)
}
