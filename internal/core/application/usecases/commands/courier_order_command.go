package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var (
	ErrCourierAcceptDeliveryCommandIsNotConstructed = errors.New(
		"CourierAcceptDeliveryCommand must be created via NewCourierAcceptDeliveryCommand constructor",
	)
	ErrCourierArrivedCommandIsNotConstructed = errors.New(
		"CourierArrivedCommand must be created via NewCourierArrivedCommand constructor",
	)
)

type courierOrderCommand struct {
	orderID   kernel.UUID
	courierID kernel.UUID
	guard     guard.ConstructorGuard
}

func newCourierOrderCommand(orderID, courierID kernel.UUID) (courierOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return courierOrderCommand{}, err
	}
	return courierOrderCommand{orderID: orderID, courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

func (c courierOrderCommand) OrderID() kernel.UUID   { return c.orderID }
func (c courierOrderCommand) CourierID() kernel.UUID { return c.courierID }

// CourierAcceptDeliveryCommand is the assigned courier acknowledging a delivery request.
type CourierAcceptDeliveryCommand struct {
	courierOrderCommand
}

func NewCourierAcceptDeliveryCommand(orderID, courierID kernel.UUID) (CourierAcceptDeliveryCommand, error) {
	c, err := newCourierOrderCommand(orderID, courierID)
	if err != nil {
		return CourierAcceptDeliveryCommand{}, err
	}
	return CourierAcceptDeliveryCommand{c}, nil
}

func (c CourierAcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCourierAcceptDeliveryCommandIsNotConstructed)
}

// CourierArrivedCommand is the assigned courier reporting pickup at the seller.
type CourierArrivedCommand struct {
	courierOrderCommand
}

func NewCourierArrivedCommand(orderID, courierID kernel.UUID) (CourierArrivedCommand, error) {
	c, err := newCourierOrderCommand(orderID, courierID)
	if err != nil {
		return CourierArrivedCommand{}, err
	}
	return CourierArrivedCommand{c}, nil
}

func (c CourierArrivedCommand) Validate() error {
	return c.guard.Validate(ErrCourierArrivedCommandIsNotConstructed)
}
