package commands

import (
	"context"
	"time"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
)

// ReviewOrderCommandHandler applies the seller's decision. Accepted orders move to
// Cooking; rejected ones are cancelled. Either way the customer is notified.
type ReviewOrderCommandHandler struct {
	transitioner orderTransitioner
}

func NewReviewOrderCommandHandler(uowFactory UoWFactory, locks OrderLocker, clock ports.Clock) ReviewOrderCommandHandler {
	return ReviewOrderCommandHandler{transitioner: newOrderTransitioner(uowFactory, locks, clock)}
}

func (h ReviewOrderCommandHandler) Handle(ctx context.Context, cmd ReviewOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.transitioner.apply(ctx, cmd.OrderID(),
		func(_ context.Context, _ UoW, current *order.Order, now time.Time) (*order.Order, error) {
			return current.Review(cmd.CanFulfill(), cmd.Reason(), now)
		})
}
