package commands

import (
	"context"

	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/seller"
	"ordermanagement/internal/core/ports"
)

// CreateCustomerCommandHandler registers customers.
type CreateCustomerCommandHandler struct {
	uowFactory DirectoryUoWFactory
	clock      ports.Clock
}

func NewCreateCustomerCommandHandler(uowFactory DirectoryUoWFactory, clock ports.Clock) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name(), cmd.Email(), cmd.Phone(), h.clock.Now())
	if err != nil {
		return nil, err
	}
	if err = uow.CustomerRepository().Add(ctx, c); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// CreateSellerCommandHandler registers sellers.
type CreateSellerCommandHandler struct {
	uowFactory DirectoryUoWFactory
	clock      ports.Clock
}

func NewCreateSellerCommandHandler(uowFactory DirectoryUoWFactory, clock ports.Clock) CreateSellerCommandHandler {
	return CreateSellerCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h CreateSellerCommandHandler) Handle(ctx context.Context, cmd CreateSellerCommand) (*seller.Seller, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	s, err := seller.NewSeller(cmd.SellerID(), cmd.Name(), cmd.Address(), h.clock.Now())
	if err != nil {
		return nil, err
	}
	if err = uow.SellerRepository().Add(ctx, s); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
