package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var ErrSearchCourierCommandIsNotConstructed = errors.New(
	"SearchCourierCommand must be created via NewSearchCourierCommand constructor",
)

// SearchCourierCommand starts, or retries, the courier search for an assembled order.
type SearchCourierCommand struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewSearchCourierCommand(orderID kernel.UUID) (SearchCourierCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SearchCourierCommand{}, err
	}
	return SearchCourierCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c SearchCourierCommand) Validate() error {
	return c.guard.Validate(ErrSearchCourierCommandIsNotConstructed)
}

func (c SearchCourierCommand) OrderID() kernel.UUID { return c.orderID }
