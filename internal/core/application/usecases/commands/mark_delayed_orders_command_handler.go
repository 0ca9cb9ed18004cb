package commands

import (
	"context"
	"fmt"
	"time"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
)

// MarkDelayedOrdersCommandHandler moves AwaitingCourier orders whose courier was assigned
// more than the timeout ago to Delayed. The courier stays bound to the order.
type MarkDelayedOrdersCommandHandler struct {
	transitioner orderTransitioner
}

func NewMarkDelayedOrdersCommandHandler(uowFactory UoWFactory, locks OrderLocker, clock ports.Clock) MarkDelayedOrdersCommandHandler {
	return MarkDelayedOrdersCommandHandler{transitioner: newOrderTransitioner(uowFactory, locks, clock)}
}

func (h MarkDelayedOrdersCommandHandler) Handle(ctx context.Context, cmd MarkDelayedOrdersCommand) (EscalationReport, error) {
	if err := cmd.Validate(); err != nil {
		return EscalationReport{}, err
	}

	cutoff := h.transitioner.clock.Now().Add(-cmd.Timeout())
	overdue, err := h.transitioner.uowFactory.Create().OrderRepository().GetAllAwaitingCourierAssignedBefore(ctx, cutoff)
	if err != nil {
		return EscalationReport{}, fmt.Errorf("list orders awaiting courier: %w", err)
	}

	return escalate(ctx, h.transitioner, cmd.Timeout(), overdue,
		(*order.Order).CourierOverdue,
		func(o *order.Order, now time.Time) (*order.Order, error) {
			return o.Delay(now)
		}), nil
}
