package queries

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New("ListOrdersQuery must be created via NewListOrdersQuery constructor")

// ListOrdersQuery lists orders, optionally narrowed by status and by the customer,
// seller or courier involved. An empty query lists everything.
//
// Example:
//
//	status := order.InProcessing
//	query, err := NewListOrdersQuery(ListOrdersQueryParams{Status: &status, SellerID: &sellerID})
type ListOrdersQuery struct {
	filter ports.OrderFilter
	guard  guard.ConstructorGuard
}

type ListOrdersQueryParams struct {
	Status     *order.Status
	CustomerID *kernel.UUID
	SellerID   *kernel.UUID
	CourierID  *kernel.UUID
}

func NewListOrdersQuery(p ListOrdersQueryParams) (ListOrdersQuery, error) {
	var list []error
	if p.Status != nil {
		list = append(list, p.Status.Validate())
	}
	for _, id := range []*kernel.UUID{p.CustomerID, p.SellerID, p.CourierID} {
		if id != nil {
			list = append(list, id.Validate())
		}
	}
	if err := errors.Join(list...); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		filter: ports.OrderFilter{
			Status:     p.Status,
			CustomerID: p.CustomerID,
			SellerID:   p.SellerID,
			CourierID:  p.CourierID,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() ports.OrderFilter { return q.filter }
