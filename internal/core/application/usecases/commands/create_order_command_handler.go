package commands

import (
	"context"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/services"
	"ordermanagement/internal/core/ports"
)

// CreateOrderCommandHandler places orders. The order is stored in InProcessing together
// with the seller's new-order notification and the customer's status notification.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
	notifier   services.NotificationDispatcher
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, clock ports.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notifier:   services.NewNotificationDispatcher(),
	}
}

// Handle returns errs.ErrObjectNotFound when the customer or seller does not exist.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}
	if _, err = uow.SellerRepository().Get(ctx, cmd.SellerID()); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	created, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.SellerID(), cmd.Items(), now)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	notifications, err := h.notifier.OrderPlaced(created, customer, now)
	if err != nil {
		return nil, err
	}
	for _, n := range notifications {
		if err = uow.NotificationRepository().Add(ctx, n); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
