package memory

import (
	"context"
	"fmt"

	"ordermanagement/internal/core/domain/model/courier"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"
)

var _ ports.CourierRepository = &CourierRepository{}

type CourierRepository struct {
	uow *UnitOfWork
}

func (r *CourierRepository) Add(_ context.Context, c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}
	id := c.ID().String()

	return r.uow.write(func(tx *txn) error {
		if _, staged := tx.couriers[id]; staged {
			return errs.NewValueIsInvalidErrorWithCause("courier", fmt.Errorf("courier %s already exists", id))
		}
		tx.couriers[id] = stagedCourier{next: c, isNew: true}
		return nil
	})
}

func (r *CourierRepository) Get(_ context.Context, id kernel.UUID) (*courier.Courier, error) {
	if r.uow.tx != nil {
		if staged, ok := r.uow.tx.couriers[id.String()]; ok {
			return staged.next, nil
		}
	}

	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()

	c, ok := r.uow.store.couriers[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("courier", id.String())
	}
	return c, nil
}

func (r *CourierRepository) GetAll(_ context.Context) ([]*courier.Courier, error) {
	return r.scan(func(*courier.Courier) bool { return true }), nil
}

func (r *CourierRepository) GetAllAvailable(_ context.Context) ([]*courier.Courier, error) {
	return r.scan((*courier.Courier).IsAvailable), nil
}

// CompareAndSwap checks next against the visible courier now and again when the unit
// of work commits.
func (r *CourierRepository) CompareAndSwap(ctx context.Context, next *courier.Courier) error {
	if err := next.Validate(); err != nil {
		return err
	}
	id := next.ID().String()

	current, err := r.Get(ctx, next.ID())
	if err != nil {
		return err
	}
	if current.Version() != next.Version()-1 || current.IsAvailable() == next.IsAvailable() {
		return fmt.Errorf("%w: courier %s", courier.ErrAssignmentConflict, id)
	}

	return r.uow.write(func(tx *txn) error {
		staged, ok := tx.couriers[id]
		if !ok {
			staged = stagedCourier{baseVersion: current.Version(), baseAvailable: current.IsAvailable()}
		}
		staged.next = next
		tx.couriers[id] = staged
		return nil
	})
}

func (r *CourierRepository) scan(match func(c *courier.Courier) bool) []*courier.Courier {
	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()

	result := make([]*courier.Courier, 0)
	for _, c := range r.uow.store.couriers {
		if match(c) {
			result = append(result, c)
		}
	}
	return sortedCouriers(result)
}
