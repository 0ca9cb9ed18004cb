// Package orderrepo maps order aggregates to the orders and order_items tables.
package orderrepo

import (
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is one row of the orders table. Status is stored as its name so the
// column stays readable for operators.
type OrderDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	SellerID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	CourierID         *uuid.UUID      `gorm:"type:uuid;index"`
	Status            string          `gorm:"type:varchar(32);not null;index:idx_orders_status_created,priority:1"`
	TotalPrice        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt         time.Time       `gorm:"not null;index:idx_orders_status_created,priority:2"`
	UpdatedAt         time.Time       `gorm:"not null;autoUpdateTime:false"`
	SellerNotifiedAt  *time.Time
	CourierNotifiedAt *time.Time
	CourierAssignedAt *time.Time
	CourierArrivedAt  *time.Time
	CancelledAt       *time.Time
	CancelReason      string         `gorm:"type:text"`
	Version           int64          `gorm:"not null"`
	Items             []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line. Position keeps the lines in creation order.
type OrderItemDTO struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	Quantity    int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	id := o.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, it := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:     id,
			Position:    i,
			ProductName: it.ProductName(),
			Quantity:    it.Quantity(),
			Price:       it.Price().Decimal(),
		})
	}

	return OrderDTO{
		ID:                id,
		CustomerID:        o.CustomerID().Bytes(),
		SellerID:          o.SellerID().Bytes(),
		CourierID:         uuidPtr(o.CourierID()),
		Status:            o.Status().String(),
		TotalPrice:        o.TotalPrice().Decimal(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
		SellerNotifiedAt:  o.SellerNotifiedAt(),
		CourierNotifiedAt: o.CourierNotifiedAt(),
		CourierAssignedAt: o.CourierAssignedAt(),
		CourierArrivedAt:  o.CourierArrivedAt(),
		CancelledAt:       o.CancelledAt(),
		CancelReason:      o.CancelReason(),
		Version:           o.Version(),
		Items:             items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoney(itemDTO.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		it, itemErr := order.NewItem(itemDTO.ProductName, itemDTO.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, it)
	}

	total, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                id,
		CustomerID:        customerID,
		SellerID:          sellerID,
		CourierID:         courierID,
		Status:            status,
		Items:             items,
		TotalPrice:        total,
		CreatedAt:         dto.CreatedAt.UTC(),
		UpdatedAt:         dto.UpdatedAt.UTC(),
		SellerNotifiedAt:  utc(dto.SellerNotifiedAt),
		CourierNotifiedAt: utc(dto.CourierNotifiedAt),
		CourierAssignedAt: utc(dto.CourierAssignedAt),
		CourierArrivedAt:  utc(dto.CourierArrivedAt),
		CancelledAt:       utc(dto.CancelledAt),
		CancelReason:      dto.CancelReason,
		Version:           dto.Version,
	})
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
