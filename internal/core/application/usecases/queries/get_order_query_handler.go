package queries

import (
	"context"
)

// GetOrderQueryHandler loads one order. Unknown ids yield errs.ErrObjectNotFound.
type GetOrderQueryHandler struct {
	repos RepositoriesFactory
}

func NewGetOrderQueryHandler(repos RepositoriesFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{repos: repos}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := h.repos.Create().OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	return NewOrderResponse(o), nil
}
