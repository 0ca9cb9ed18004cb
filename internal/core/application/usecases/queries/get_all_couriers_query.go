package queries

import (
	"errors"

	"ordermanagement/internal/pkg/guard"
)

var (
	ErrGetAllCouriersQueryIsNotConstructed = errors.New(
		"GetAllCouriersQuery must be created via NewGetAllCouriersQuery constructor",
	)
)

// GetAllCouriersQuery lists every registered courier with its availability.
//
// Example:
//
//	query := NewGetAllCouriersQuery(false)
//	couriers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve couriers: %w", err)
//	}
type GetAllCouriersQuery struct {
	availableOnly bool
	guard         guard.ConstructorGuard
}

// NewGetAllCouriersQuery creates the query. availableOnly restricts the result to
// couriers that can take an order right now.
func NewGetAllCouriersQuery(availableOnly bool) GetAllCouriersQuery {
	return GetAllCouriersQuery{availableOnly: availableOnly, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCouriersQueryIsNotConstructed)
}

func (q GetAllCouriersQuery) AvailableOnly() bool { return q.availableOnly }
