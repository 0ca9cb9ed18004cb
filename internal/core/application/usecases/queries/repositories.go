// Package queries contains read operations for retrieving system state.
// Queries never open a transaction: they read committed data through the same
// repositories the commands write with, and return read models decoupled from the
// domain aggregates.
package queries

import (
	"ordermanagement/internal/core/ports"
)

type (
	// Repositories exposes the read side of every repository.
	Repositories interface {
		OrderRepository() ports.OrderRepository
		CourierRepository() ports.CourierRepository
		NotificationRepository() ports.NotificationRepository
		CustomerRepository() ports.CustomerRepository
		SellerRepository() ports.SellerRepository
	}

	RepositoriesFactory interface {
		Create() Repositories
	}
)
