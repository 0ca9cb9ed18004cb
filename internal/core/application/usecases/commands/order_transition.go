package commands

import (
	"context"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/services"
	"ordermanagement/internal/core/ports"
)

// transitionFunc computes the next snapshot of current. It may use uow to touch other
// aggregates that must commit together with the order.
type transitionFunc func(ctx context.Context, uow UoW, current *order.Order, now time.Time) (*order.Order, error)

// orderTransitioner is the one serialized entry point every state-changing order
// operation goes through: lock the order id, load the current snapshot in a fresh unit
// of work, apply the transition, persist it with its customer notification, commit.
type orderTransitioner struct {
	uowFactory UoWFactory
	locks      OrderLocker
	clock      ports.Clock
	notifier   services.NotificationDispatcher
}

func newOrderTransitioner(uowFactory UoWFactory, locks OrderLocker, clock ports.Clock) orderTransitioner {
	return orderTransitioner{
		uowFactory: uowFactory,
		locks:      locks,
		clock:      clock,
		notifier:   services.NewNotificationDispatcher(),
	}
}

func (t orderTransitioner) apply(ctx context.Context, orderID kernel.UUID, fn transitionFunc) (*order.Order, error) {
	unlock := t.locks.Lock(orderID.String())
	defer unlock()

	return t.applyLocked(ctx, orderID, fn)
}

// applyLocked is apply for callers that already hold the order lock.
func (t orderTransitioner) applyLocked(ctx context.Context, orderID kernel.UUID, fn transitionFunc) (*order.Order, error) {
	uow := t.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	current, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	now := t.clock.Now()
	next, err := fn(ctx, uow, current, now)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, next); err != nil {
		return nil, err
	}

	n, err := t.notifier.StatusChanged(next, now)
	if err != nil {
		return nil, err
	}
	if n != nil {
		if err = uow.NotificationRepository().Add(ctx, n); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return next, nil
}
