package queries

import (
	"context"

	"ordermanagement/internal/core/domain/model/courier"
)

// GetAllCouriersQueryHandler returns couriers ordered by id.
type GetAllCouriersQueryHandler struct {
	repos RepositoriesFactory
}

func NewGetAllCouriersQueryHandler(repos RepositoriesFactory) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{repos: repos}
}

func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	repo := h.repos.Create().CourierRepository()

	var (
		list []*courier.Courier
		err  error
	)
	if query.AvailableOnly() {
		list, err = repo.GetAllAvailable(ctx)
	} else {
		list, err = repo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	couriers := make([]CourierResponse, 0, len(list))
	for _, c := range list {
		couriers = append(couriers, NewCourierResponse(c))
	}

	return couriers, nil
}
