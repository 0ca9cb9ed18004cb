package commands

import (
	"errors"
	"time"

	"ordermanagement/internal/pkg/guard"
)

var ErrCancelOverdueOrdersCommandIsNotConstructed = errors.New(
	"CancelOverdueOrdersCommand must be created via NewCancelOverdueOrdersCommand constructor",
)

// CancelOverdueOrdersCommand cancels orders the seller has not reviewed within timeout.
type CancelOverdueOrdersCommand struct {
	timeout time.Duration
	guard   guard.ConstructorGuard
}

func NewCancelOverdueOrdersCommand(timeout time.Duration) (CancelOverdueOrdersCommand, error) {
	if err := validateTimeout(timeout); err != nil {
		return CancelOverdueOrdersCommand{}, err
	}
	return CancelOverdueOrdersCommand{timeout: timeout, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelOverdueOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelOverdueOrdersCommandIsNotConstructed)
}

func (c CancelOverdueOrdersCommand) Timeout() time.Duration { return c.timeout }
