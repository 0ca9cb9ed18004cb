// Package ports defines the contracts between the application core and its adapters.
package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/courier"
	"ordermanagement/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier.
	Add(ctx context.Context, c *courier.Courier) error

	// Get returns the courier or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAll returns every courier ordered by id.
	GetAll(ctx context.Context) ([]*courier.Courier, error)

	// GetAllAvailable returns the available couriers ordered by id.
	GetAllAvailable(ctx context.Context) ([]*courier.Courier, error)

	// CompareAndSwap stores next only if the stored courier is still at version
	// next.Version()-1 with the opposite availability. Otherwise it returns
	// courier.ErrAssignmentConflict and leaves the stored courier unchanged.
	//
	// Example:
	//   reserved, _ := c.Reserve()
	//   err := repo.CompareAndSwap(ctx, reserved)
	//   if errors.Is(err, courier.ErrAssignmentConflict) {
	//       // somebody else reserved or released the courier first
	//   }
	CompareAndSwap(ctx context.Context, next *courier.Courier) error
}
