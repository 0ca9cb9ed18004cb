// Package commands contains business operations that modify system state.
// Every command follows the same pattern: a validated command value, a handler that
// opens a unit of work, applies domain logic and commits.
//
// Handlers that change an order first take the per-order lock, so manual operations,
// courier assignment and timer escalation on one order never interleave.
package commands

import (
	"context"

	"ordermanagement/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	SellerRepoFactory interface {
		SellerRepository() ports.SellerRepository
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// DirectoryUoW manages transactions for customer and seller registration.
	DirectoryUoW interface {
		TxManager
		CustomerRepoFactory
		SellerRepoFactory
	}

	DirectoryUoWFactory interface {
		Create() DirectoryUoW
	}

	// NotificationUoW manages transactions that only touch notifications.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// UoW spans every repository the workflow engine touches. An order transition,
	// the courier it binds or releases and the notifications it emits are committed
	// through one UoW.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   next, err := current.Assemble(now)
	//   err = uow.OrderRepository().Update(ctx, next)
	//   err = uow.NotificationRepository().Add(ctx, n)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
		NotificationRepoFactory
		CustomerRepoFactory
		SellerRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}

	// OrderLocker serializes work on one order id. Lock blocks until the key is free
	// and returns the function that frees it.
	OrderLocker interface {
		Lock(key string) (unlock func())
	}
)
