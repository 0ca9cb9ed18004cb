package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories obtained after Begin share the transaction; repositories obtained
// without Begin read and write directly.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	CourierRepository() CourierRepository
	NotificationRepository() NotificationRepository
	CustomerRepository() CustomerRepository
	SellerRepository() SellerRepository
}
