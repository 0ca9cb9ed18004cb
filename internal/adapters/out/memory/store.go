// Package memory is an in-process implementation of the persistence ports.
//
// A Store is an arena of aggregates keyed by id. Aggregates are immutable snapshots,
// so the store keeps pointers and never copies. A unit of work stages its writes and
// validates them against the store when it commits: orders by version, couriers by
// version and availability. That gives the same compare-and-swap semantics as the
// conditional updates in the postgres adapter.
package memory

import (
	"cmp"
	"slices"
	"sync"

	"ordermanagement/internal/core/domain/model/courier"
	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/notification"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/model/seller"
	"ordermanagement/internal/core/ports"
)

type storedNotification struct {
	n   *notification.Notification
	seq int64
}

// Store holds every aggregate. It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	orders        map[string]*order.Order
	couriers      map[string]*courier.Courier
	customers     map[string]*customer.Customer
	sellers       map[string]*seller.Seller
	notifications map[string]storedNotification
	seq           int64
}

func NewStore() *Store {
	return &Store{
		orders:        make(map[string]*order.Order),
		couriers:      make(map[string]*courier.Courier),
		customers:     make(map[string]*customer.Customer),
		sellers:       make(map[string]*seller.Seller),
		notifications: make(map[string]storedNotification),
	}
}

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

func sortedOrders(list []*order.Order) []*order.Order {
	slices.SortFunc(list, func(a, b *order.Order) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return a.ID().Compare(b.ID())
	})
	return list
}

func sortedCouriers(list []*courier.Courier) []*courier.Courier {
	slices.SortFunc(list, func(a, b *courier.Courier) int {
		return a.ID().Compare(b.ID())
	})
	return list
}

func sortedNewestFirst(list []storedNotification) []*notification.Notification {
	slices.SortFunc(list, func(a, b storedNotification) int {
		if c := b.n.CreatedAt().Compare(a.n.CreatedAt()); c != 0 {
			return c
		}
		return cmp.Compare(b.seq, a.seq)
	})
	out := make([]*notification.Notification, 0, len(list))
	for _, s := range list {
		out = append(out, s.n)
	}
	return out
}
