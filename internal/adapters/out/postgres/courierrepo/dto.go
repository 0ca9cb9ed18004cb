// Package courierrepo maps courier aggregates to the couriers table.
package courierrepo

import (
	"time"

	"ordermanagement/internal/core/domain/model/courier"
	"ordermanagement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO is one row of the couriers table. Version and Available together form
// the compare-and-swap guard of the assignment protocol.
type CourierDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(64)"`
	Available bool      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	Version   int64     `gorm:"not null"`
}

func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(c *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:        c.ID().Bytes(),
		Name:      c.Name(),
		Phone:     c.Phone(),
		Available: c.IsAvailable(),
		CreatedAt: c.CreatedAt(),
		Version:   c.Version(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, dto.Phone, dto.Available, dto.CreatedAt.UTC(), dto.Version)
}
