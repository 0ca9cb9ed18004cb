package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.OrderRepository = &GormOrderRepository{}

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order together with its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes the mutable columns only when the row is still at the previous
// version. Items are immutable and never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version-1).
		Select("*").
		Omit("ID", "CustomerID", "SellerID", "TotalPrice", "CreatedAt", "Items").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := r.Get(ctx, aggregate.ID()); err != nil {
			return err
		}
		return errs.NewVersionIsInvalidErrorWithCause("order",
			fmt.Errorf("order %s is no longer at version %d", aggregate.ID(), dto.Version-1))
	}

	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) Find(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	q := r.withItems(ctx)
	if filter.Status != nil {
		q = q.Where("status = ?", filter.Status.String())
	}
	if filter.CustomerID != nil {
		q = q.Where("customer_id = ?", filter.CustomerID.Bytes())
	}
	if filter.SellerID != nil {
		q = q.Where("seller_id = ?", filter.SellerID.Bytes())
	}
	if filter.CourierID != nil {
		q = q.Where("courier_id = ?", filter.CourierID.Bytes())
	}

	return r.find(q)
}

func (r *GormOrderRepository) GetAllInProcessingNotifiedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	return r.find(r.withItems(ctx).
		Where("status = ? AND seller_notified_at < ?", order.InProcessing.String(), cutoff))
}

func (r *GormOrderRepository) GetAllAwaitingCourierAssignedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	return r.find(r.withItems(ctx).
		Where("status = ? AND courier_assigned_at < ?", order.AwaitingCourier.String(), cutoff))
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (r *GormOrderRepository) find(q *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := q.Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
