// Package directoryrepo stores the customer and seller directories.
package directoryrepo

import (
	"time"

	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/seller"

	"github.com/google/uuid"
)

type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(64)"`
	CreatedAt time.Time `gorm:"not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

type SellerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Address   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

func (SellerDTO) TableName() string {
	return "sellers"
}

func customerFromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        c.ID().Bytes(),
		Name:      c.Name(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		CreatedAt: c.CreatedAt(),
	}
}

func customerToDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return customer.NewCustomer(id, dto.Name, dto.Email, dto.Phone, dto.CreatedAt.UTC())
}

func sellerFromDomain(s *seller.Seller) SellerDTO {
	return SellerDTO{
		ID:        s.ID().Bytes(),
		Name:      s.Name(),
		Address:   s.Address(),
		CreatedAt: s.CreatedAt(),
	}
}

func sellerToDomain(dto SellerDTO) (*seller.Seller, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return seller.NewSeller(id, dto.Name, dto.Address, dto.CreatedAt.UTC())
}
