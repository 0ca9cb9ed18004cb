package queries

import (
	"context"
)

type GetCourierQueryHandler struct {
	repos RepositoriesFactory
}

func NewGetCourierQueryHandler(repos RepositoriesFactory) GetCourierQueryHandler {
	return GetCourierQueryHandler{repos: repos}
}

func (h GetCourierQueryHandler) Handle(ctx context.Context, query GetDirectoryEntryQuery) (CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return CourierResponse{}, err
	}

	c, err := h.repos.Create().CourierRepository().Get(ctx, query.ID())
	if err != nil {
		return CourierResponse{}, err
	}
	return NewCourierResponse(c), nil
}

type GetCustomerQueryHandler struct {
	repos RepositoriesFactory
}

func NewGetCustomerQueryHandler(repos RepositoriesFactory) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{repos: repos}
}

func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetDirectoryEntryQuery) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	c, err := h.repos.Create().CustomerRepository().Get(ctx, query.ID())
	if err != nil {
		return CustomerResponse{}, err
	}
	return NewCustomerResponse(c), nil
}

type GetSellerQueryHandler struct {
	repos RepositoriesFactory
}

func NewGetSellerQueryHandler(repos RepositoriesFactory) GetSellerQueryHandler {
	return GetSellerQueryHandler{repos: repos}
}

func (h GetSellerQueryHandler) Handle(ctx context.Context, query GetDirectoryEntryQuery) (SellerResponse, error) {
	if err := query.Validate(); err != nil {
		return SellerResponse{}, err
	}

	s, err := h.repos.Create().SellerRepository().Get(ctx, query.ID())
	if err != nil {
		return SellerResponse{}, err
	}
	return NewSellerResponse(s), nil
}
