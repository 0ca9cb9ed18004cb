package ports

import (
	"context"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
)

// OrderFilter narrows Find. Nil fields match everything; set fields are combined with AND.
type OrderFilter struct {
	Status     *order.Status
	CustomerID *kernel.UUID
	SellerID   *kernel.UUID
	CourierID  *kernel.UUID
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the next snapshot of an order. The stored version must equal
	// aggregate.Version()-1, otherwise errs.ErrVersionIsInvalid is returned and nothing
	// is written. Items are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Find returns the orders matching filter, oldest first.
	Find(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// GetAllInProcessingNotifiedBefore returns InProcessing orders whose seller was
	// notified strictly before cutoff.
	GetAllInProcessingNotifiedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// GetAllAwaitingCourierAssignedBefore returns AwaitingCourier orders whose courier
	// was assigned strictly before cutoff.
	GetAllAwaitingCourierAssignedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
