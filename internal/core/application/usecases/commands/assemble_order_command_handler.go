package commands

import (
	"context"
	"time"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
)

type AssembleOrderCommandHandler struct {
	transitioner orderTransitioner
}

func NewAssembleOrderCommandHandler(uowFactory UoWFactory, locks OrderLocker, clock ports.Clock) AssembleOrderCommandHandler {
	return AssembleOrderCommandHandler{transitioner: newOrderTransitioner(uowFactory, locks, clock)}
}

// Handle moves a Cooking order to Assembling and notifies the customer.
func (h AssembleOrderCommandHandler) Handle(ctx context.Context, cmd AssembleOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.transitioner.apply(ctx, cmd.OrderID(),
		func(_ context.Context, _ UoW, current *order.Order, now time.Time) (*order.Order, error) {
			return current.Assemble(now)
		})
}
