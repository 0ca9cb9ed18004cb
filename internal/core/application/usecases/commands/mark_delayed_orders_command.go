package commands

import (
	"errors"
	"time"

	"ordermanagement/internal/pkg/guard"
)

var ErrMarkDelayedOrdersCommandIsNotConstructed = errors.New(
	"MarkDelayedOrdersCommand must be created via NewMarkDelayedOrdersCommand constructor",
)

// MarkDelayedOrdersCommand flags orders whose courier has not arrived within timeout.
type MarkDelayedOrdersCommand struct {
	timeout time.Duration
	guard   guard.ConstructorGuard
}

func NewMarkDelayedOrdersCommand(timeout time.Duration) (MarkDelayedOrdersCommand, error) {
	if err := validateTimeout(timeout); err != nil {
		return MarkDelayedOrdersCommand{}, err
	}
	return MarkDelayedOrdersCommand{timeout: timeout, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkDelayedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrMarkDelayedOrdersCommandIsNotConstructed)
}

func (c MarkDelayedOrdersCommand) Timeout() time.Duration { return c.timeout }
