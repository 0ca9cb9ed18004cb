package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/seller"
)

// CustomerRepository stores customers. Get returns errs.ErrObjectNotFound when absent.
type CustomerRepository interface {
	Add(ctx context.Context, c *customer.Customer) error
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}

// SellerRepository stores sellers. Get returns errs.ErrObjectNotFound when absent.
type SellerRepository interface {
	Add(ctx context.Context, s *seller.Seller) error
	Get(ctx context.Context, id kernel.UUID) (*seller.Seller, error)
}
