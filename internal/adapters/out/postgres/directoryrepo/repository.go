package directoryrepo

import (
	"context"
	"errors"

	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/seller"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"

	"gorm.io/gorm"
)

var (
	_ ports.CustomerRepository = &GormCustomerRepository{}
	_ ports.SellerRepository   = &GormSellerRepository{}
)

type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := customerFromDomain(c)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	return customerToDomain(dto)
}

type GormSellerRepository struct {
	db *gorm.DB
}

func NewGormSellerRepository(db *gorm.DB) *GormSellerRepository {
	return &GormSellerRepository{db: db}
}

func (r *GormSellerRepository) Add(ctx context.Context, s *seller.Seller) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := sellerFromDomain(s)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormSellerRepository) Get(ctx context.Context, id kernel.UUID) (*seller.Seller, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SellerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("seller", id.String())
		}
		return nil, err
	}

	return sellerToDomain(dto)
}
