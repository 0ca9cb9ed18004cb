package commands

import (
	"context"
	"errors"
	"time"

	"ordermanagement/internal/core/domain/model/courier"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/services"
	"ordermanagement/internal/core/ports"
)

// SearchCourierCommandHandler runs the courier assignment protocol.
//
// The order is moved to SearchingCourier (unless it is already there) and then each
// available courier is tried in ascending id order. A try reserves the courier with a
// compare-and-swap and moves the order to AwaitingCourier in one unit of work, together
// with the courier's notification. Losing the race for a courier moves on to the next
// one. When nobody is left the order stays in SearchingCourier and no error is returned;
// the caller may search again later.
//
// Example:
//
//	cmd, _ := NewSearchCourierCommand(orderID)
//	o, err := handler.Handle(ctx, cmd)
//	if err == nil && o.Status() == order.SearchingCourier {
//	    // no courier was free, try again later
//	}
type SearchCourierCommandHandler struct {
	transitioner orderTransitioner
	dispatcher   services.CourierDispatcher
}

func NewSearchCourierCommandHandler(uowFactory UoWFactory, locks OrderLocker, clock ports.Clock) SearchCourierCommandHandler {
	return SearchCourierCommandHandler{
		transitioner: newOrderTransitioner(uowFactory, locks, clock),
		dispatcher:   services.NewCourierDispatcher(),
	}
}

func (h SearchCourierCommandHandler) Handle(ctx context.Context, cmd SearchCourierCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	unlock := h.transitioner.locks.Lock(cmd.OrderID().String())
	defer unlock()

	searching, err := h.startSearch(ctx, cmd)
	if err != nil {
		return nil, err
	}

	couriers, err := h.transitioner.uowFactory.Create().CourierRepository().GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	for _, candidate := range h.dispatcher.Candidates(couriers) {
		assigned, err := h.transitioner.applyLocked(ctx, cmd.OrderID(), h.assignTo(candidate))
		if isLostCourierRace(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return assigned, nil
	}

	return searching, nil
}

func (h SearchCourierCommandHandler) startSearch(ctx context.Context, cmd SearchCourierCommand) (*order.Order, error) {
	uow := h.transitioner.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	current, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	searching, err := current.StartCourierSearch(h.transitioner.clock.Now())
	if err != nil {
		return nil, err
	}
	if searching == current {
		return current, nil
	}

	if err = uow.OrderRepository().Update(ctx, searching); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return searching, nil
}

func (h SearchCourierCommandHandler) assignTo(candidate *courier.Courier) transitionFunc {
	return func(ctx context.Context, uow UoW, current *order.Order, now time.Time) (*order.Order, error) {
		assigned, reserved, err := h.dispatcher.Dispatch(current, candidate, now)
		if err != nil {
			return nil, err
		}

		if err = uow.CourierRepository().CompareAndSwap(ctx, reserved); err != nil {
			return nil, err
		}

		s, err := uow.SellerRepository().Get(ctx, assigned.SellerID())
		if err != nil {
			return nil, err
		}

		n, err := h.transitioner.notifier.CourierAssigned(assigned, reserved, s, now)
		if err != nil {
			return nil, err
		}
		if err = uow.NotificationRepository().Add(ctx, n); err != nil {
			return nil, err
		}

		return assigned, nil
	}
}

func isLostCourierRace(err error) bool {
	return errors.Is(err, courier.ErrAssignmentConflict) || errors.Is(err, courier.ErrCourierIsBusy)
}
