package courierrepo

import (
	"context"
	"errors"
	"fmt"

	"ordermanagement/internal/core/domain/model/courier"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.CourierRepository = &GormCourierRepository{}

// GormCourierRepository implements ports.CourierRepository using GORM.
type GormCourierRepository struct {
	db *gorm.DB
}

func NewGormCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{db: db}
}

func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *GormCourierRepository) GetAllAvailable(ctx context.Context) ([]*courier.Courier, error) {
	return r.find(r.db.WithContext(ctx).Where("available = ?", true))
}

// CompareAndSwap is a single conditional UPDATE. Two transactions racing for the
// same courier serialize on the row lock; the loser re-evaluates the WHERE clause
// against the committed row and updates nothing.
func (r *GormCourierRepository) CompareAndSwap(ctx context.Context, next *courier.Courier) error {
	if err := next.Validate(); err != nil {
		return err
	}

	dto := fromDomain(next)
	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ? AND version = ? AND available = ?", dto.ID, dto.Version-1, !dto.Available).
		Updates(map[string]any{
			"available": dto.Available,
			"version":   dto.Version,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := r.Get(ctx, next.ID()); err != nil {
			return err
		}
		return fmt.Errorf("%w: courier %s", courier.ErrAssignmentConflict, next.ID())
	}

	return nil
}

func (r *GormCourierRepository) find(q *gorm.DB) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	if err := q.Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}
