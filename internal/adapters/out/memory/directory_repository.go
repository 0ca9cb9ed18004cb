package memory

import (
	"context"
	"fmt"

	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/seller"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"
)

var (
	_ ports.CustomerRepository = &CustomerRepository{}
	_ ports.SellerRepository   = &SellerRepository{}
)

type CustomerRepository struct {
	uow *UnitOfWork
}

func (r *CustomerRepository) Add(_ context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	id := c.ID().String()
	return r.uow.write(func(tx *txn) error {
		if _, staged := tx.customers[id]; staged {
			return errs.NewValueIsInvalidErrorWithCause("customer", fmt.Errorf("customer %s already exists", id))
		}
		tx.customers[id] = c
		return nil
	})
}

func (r *CustomerRepository) Get(_ context.Context, id kernel.UUID) (*customer.Customer, error) {
	if r.uow.tx != nil {
		if c, ok := r.uow.tx.customers[id.String()]; ok {
			return c, nil
		}
	}

	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()

	c, ok := r.uow.store.customers[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("customer", id.String())
	}
	return c, nil
}

type SellerRepository struct {
	uow *UnitOfWork
}

func (r *SellerRepository) Add(_ context.Context, s *seller.Seller) error {
	if err := s.Validate(); err != nil {
		return err
	}
	id := s.ID().String()
	return r.uow.write(func(tx *txn) error {
		if _, staged := tx.sellers[id]; staged {
			return errs.NewValueIsInvalidErrorWithCause("seller", fmt.Errorf("seller %s already exists", id))
		}
		tx.sellers[id] = s
		return nil
	})
}

func (r *SellerRepository) Get(_ context.Context, id kernel.UUID) (*seller.Seller, error) {
	if r.uow.tx != nil {
		if s, ok := r.uow.tx.sellers[id.String()]; ok {
			return s, nil
		}
	}

	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()

	s, ok := r.uow.store.sellers[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("seller", id.String())
	}
	return s, nil
}
