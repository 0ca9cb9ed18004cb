package order

import (
	"errors"
	"fmt"
	"strings"

	"ordermanagement/internal/core/domain/model/kernel"
)

var (
	// ErrInvalidStateTransition is matched by every InvalidStateTransitionError.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrCourierNotAssigned is returned when a courier acts on an order that is bound to
	// a different courier, or to none.
	ErrCourierNotAssigned = errors.New("courier is not assigned to the order")
)

// InvalidStateTransitionError describes a rejected lifecycle operation. The order is left
// unchanged whenever this error is returned.
type InvalidStateTransitionError struct {
	OrderID  kernel.UUID
	Current  Status
	Target   Status
	Expected []Status
}

func (e *InvalidStateTransitionError) Error() string {
	expected := make([]string, 0, len(e.Expected))
	for _, s := range e.Expected {
		expected = append(expected, s.String())
	}
	return fmt.Sprintf("%s: order %s is %s, cannot move to %s (expected %s)",
		ErrInvalidStateTransition.Error(), e.OrderID.String(), e.Current, e.Target, strings.Join(expected, " or "))
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

func withOrderID(err error, id kernel.UUID) error {
	var target *InvalidStateTransitionError
	if errors.As(err, &target) {
		target.OrderID = id
	}
	return err
}
