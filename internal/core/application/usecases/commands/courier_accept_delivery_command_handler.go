package commands

import (
	"context"
)

// CourierAcceptDeliveryCommandHandler checks a courier's acknowledgment. Nothing is
// written: the order stays in AwaitingCourier and no notification is sent.
type CourierAcceptDeliveryCommandHandler struct {
	uowFactory UoWFactory
	locks      OrderLocker
}

func NewCourierAcceptDeliveryCommandHandler(uowFactory UoWFactory, locks OrderLocker) CourierAcceptDeliveryCommandHandler {
	return CourierAcceptDeliveryCommandHandler{uowFactory: uowFactory, locks: locks}
}

// Handle returns order.ErrInvalidStateTransition when the order is not awaiting a courier
// and order.ErrCourierNotAssigned when another courier holds it.
func (h CourierAcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd CourierAcceptDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.locks.Lock(cmd.OrderID().String())
	defer unlock()

	current, err := h.uowFactory.Create().OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	return current.AcceptDelivery(cmd.CourierID())
}
