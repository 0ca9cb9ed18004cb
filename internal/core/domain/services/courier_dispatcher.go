package services

import (
	"errors"
	"slices"
	"time"

	"ordermanagement/internal/core/domain/model/courier"
	"ordermanagement/internal/core/domain/model/order"
)

// ErrCourierNotFound is returned when none of the provided couriers is available.
var ErrCourierNotFound = errors.New("courier not found")

// CourierDispatcher pairs an order that is searching for a courier with one courier.
//
// Business rules:
//   - only available couriers are candidates
//   - candidates are tried in ascending id order so repeated searches are deterministic
//   - pairing reserves the courier and moves the order to AwaitingCourier together;
//     persisting both snapshots atomically is the caller's job
//
// Example usage:
//
//	dispatcher := services.NewCourierDispatcher()
//	for _, c := range dispatcher.Candidates(couriers) {
//	    nextOrder, nextCourier, err := dispatcher.Dispatch(o, c, now)
//	    ...
//	}
type CourierDispatcher struct{}

func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{}
}

// Candidates returns the available couriers in the order they should be tried.
// The input slice is not modified.
func (d CourierDispatcher) Candidates(couriers []*courier.Courier) []*courier.Courier {
	candidates := make([]*courier.Courier, 0, len(couriers))
	for _, c := range couriers {
		if c.Validate() != nil || !c.IsAvailable() {
			continue
		}
		candidates = append(candidates, c)
	}

	slices.SortFunc(candidates, func(a, b *courier.Courier) int {
		return a.ID().Compare(b.ID())
	})
	return candidates
}

// Dispatch binds c to o. It returns the reserved courier and the order in AwaitingCourier.
// Neither input snapshot is modified.
func (d CourierDispatcher) Dispatch(
	o *order.Order,
	c *courier.Courier,
	now time.Time,
) (*order.Order, *courier.Courier, error) {
	if err := errors.Join(o.Validate(), c.Validate()); err != nil {
		return nil, nil, err
	}

	reserved, err := c.Reserve()
	if err != nil {
		return nil, nil, err
	}

	assigned, err := o.AssignCourier(c.ID(), now)
	if err != nil {
		return nil, nil, err
	}

	return assigned, reserved, nil
}

// First returns the first candidate or ErrCourierNotFound.
func (d CourierDispatcher) First(couriers []*courier.Courier) (*courier.Courier, error) {
	candidates := d.Candidates(couriers)
	if len(candidates) == 0 {
		return nil, ErrCourierNotFound
	}
	return candidates[0], nil
}
