package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var ErrAssembleOrderCommandIsNotConstructed = errors.New(
	"AssembleOrderCommand must be created via NewAssembleOrderCommand constructor",
)

// AssembleOrderCommand marks a cooked order as being assembled.
type AssembleOrderCommand struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewAssembleOrderCommand(orderID kernel.UUID) (AssembleOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssembleOrderCommand{}, err
	}
	return AssembleOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c AssembleOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssembleOrderCommandIsNotConstructed)
}

func (c AssembleOrderCommand) OrderID() kernel.UUID { return c.orderID }
