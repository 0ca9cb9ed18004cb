package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var ErrReviewOrderCommandIsNotConstructed = errors.New(
	"ReviewOrderCommand must be created via NewReviewOrderCommand constructor",
)

// ReviewOrderCommand carries the seller's decision on an order in processing.
// reason is only used when canFulfill is false and may be empty.
type ReviewOrderCommand struct {
	orderID    kernel.UUID
	canFulfill bool
	reason     string

	guard guard.ConstructorGuard
}

func NewReviewOrderCommand(orderID kernel.UUID, canFulfill bool, reason string) (ReviewOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ReviewOrderCommand{}, err
	}

	return ReviewOrderCommand{
		orderID:    orderID,
		canFulfill: canFulfill,
		reason:     reason,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ReviewOrderCommand) Validate() error {
	return c.guard.Validate(ErrReviewOrderCommandIsNotConstructed)
}

func (c ReviewOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c ReviewOrderCommand) CanFulfill() bool     { return c.canFulfill }
func (c ReviewOrderCommand) Reason() string       { return c.reason }
