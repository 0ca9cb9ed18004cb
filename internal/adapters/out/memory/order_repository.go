package memory

import (
	"context"
	"fmt"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"
)

var _ ports.OrderRepository = &OrderRepository{}

type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	id := aggregate.ID().String()

	return r.uow.write(func(tx *txn) error {
		if _, staged := tx.orders[id]; staged {
			return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("order %s already exists", id))
		}
		tx.orders[id] = stagedOrder{next: aggregate, isNew: true}
		return nil
	})
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	id := aggregate.ID().String()

	current, err := r.Get(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if current.Version() != aggregate.Version()-1 {
		return errs.NewVersionIsInvalidErrorWithCause("order",
			fmt.Errorf("order %s is at version %d, got %d", id, current.Version(), aggregate.Version()))
	}

	return r.uow.write(func(tx *txn) error {
		staged, ok := tx.orders[id]
		if !ok {
			staged = stagedOrder{baseVersion: current.Version()}
		}
		staged.next = aggregate
		tx.orders[id] = staged
		return nil
	})
}

// Get reads the transaction's own writes first.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if r.uow.tx != nil {
		if staged, ok := r.uow.tx.orders[id.String()]; ok {
			return staged.next, nil
		}
	}

	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()

	o, ok := r.uow.store.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return o, nil
}

// Find reads committed orders only.
func (r *OrderRepository) Find(_ context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	return r.scan(func(o *order.Order) bool {
		if filter.Status != nil && o.Status() != *filter.Status {
			return false
		}
		if filter.CustomerID != nil && !o.CustomerID().IsEqual(*filter.CustomerID) {
			return false
		}
		if filter.SellerID != nil && !o.SellerID().IsEqual(*filter.SellerID) {
			return false
		}
		if filter.CourierID != nil && !o.IsAssignedTo(*filter.CourierID) {
			return false
		}
		return true
	}), nil
}

func (r *OrderRepository) GetAllInProcessingNotifiedBefore(_ context.Context, cutoff time.Time) ([]*order.Order, error) {
	return r.scan(func(o *order.Order) bool { return o.SellerOverdue(cutoff) }), nil
}

func (r *OrderRepository) GetAllAwaitingCourierAssignedBefore(_ context.Context, cutoff time.Time) ([]*order.Order, error) {
	return r.scan(func(o *order.Order) bool { return o.CourierOverdue(cutoff) }), nil
}

func (r *OrderRepository) scan(match func(o *order.Order) bool) []*order.Order {
	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()

	result := make([]*order.Order, 0)
	for _, o := range r.uow.store.orders {
		if match(o) {
			result = append(result, o)
		}
	}
	return sortedOrders(result)
}
