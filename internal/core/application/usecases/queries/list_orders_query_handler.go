package queries

import (
	"context"
)

// ListOrdersQueryHandler returns matching orders oldest first.
type ListOrdersQueryHandler struct {
	repos RepositoriesFactory
}

func NewListOrdersQueryHandler(repos RepositoriesFactory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{repos: repos}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	list, err := h.repos.Create().OrderRepository().Find(ctx, query.Filter())
	if err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, len(list))
	for _, o := range list {
		orders = append(orders, NewOrderResponse(o))
	}

	return orders, nil
}
