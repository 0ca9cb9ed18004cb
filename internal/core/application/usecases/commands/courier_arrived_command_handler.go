package commands

import (
	"context"
	"errors"
	"time"

	"ordermanagement/internal/core/domain/model/courier"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
)

// CourierArrivedCommandHandler moves an AwaitingCourier or Delayed order to InDelivery.
// The courier is released in the same unit of work, so it is available again for the
// next search as soon as the order leaves the active states.
type CourierArrivedCommandHandler struct {
	transitioner orderTransitioner
}

func NewCourierArrivedCommandHandler(uowFactory UoWFactory, locks OrderLocker, clock ports.Clock) CourierArrivedCommandHandler {
	return CourierArrivedCommandHandler{transitioner: newOrderTransitioner(uowFactory, locks, clock)}
}

func (h CourierArrivedCommandHandler) Handle(ctx context.Context, cmd CourierArrivedCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.transitioner.apply(ctx, cmd.OrderID(),
		func(ctx context.Context, uow UoW, current *order.Order, now time.Time) (*order.Order, error) {
			next, err := current.MarkCourierArrived(cmd.CourierID(), now)
			if err != nil {
				return nil, err
			}

			c, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
			if err != nil {
				return nil, err
			}
			released, err := c.Release()
			if errors.Is(err, courier.ErrCourierIsIdle) {
				return next, nil
			}
			if err != nil {
				return nil, err
			}
			if err = uow.CourierRepository().CompareAndSwap(ctx, released); err != nil {
				return nil, err
			}

			return next, nil
		})
}
