package memory

import (
	"context"
	"errors"
	"fmt"

	"ordermanagement/internal/core/domain/model/courier"
	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/notification"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/model/seller"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"
)

// ErrNoTransaction is returned by Commit and Rollback without a preceding Begin.
var ErrNoTransaction = errors.New("no active transaction")

type stagedOrder struct {
	next        *order.Order
	baseVersion int64
	isNew       bool
}

type stagedCourier struct {
	next          *courier.Courier
	baseVersion   int64
	baseAvailable bool
	isNew         bool
}

// txn is the set of writes of one unit of work.
type txn struct {
	orders        map[string]stagedOrder
	couriers      map[string]stagedCourier
	customers     map[string]*customer.Customer
	sellers       map[string]*seller.Seller
	notifications []*notification.Notification
	reads         map[string]bool
}

func newTxn() *txn {
	return &txn{
		orders:    make(map[string]stagedOrder),
		couriers:  make(map[string]stagedCourier),
		customers: make(map[string]*customer.Customer),
		sellers:   make(map[string]*seller.Seller),
		reads:     make(map[string]bool),
	}
}

// UnitOfWork implements ports.UnitOfWork over a Store.
// Without Begin every repository write commits on its own.
type UnitOfWork struct {
	store *Store
	tx    *txn
}

func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.tx == nil {
		u.tx = newTxn()
	}
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.tx == nil {
		return ErrNoTransaction
	}
	tx := u.tx
	u.tx = nil
	return u.store.apply(tx)
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return ErrNoTransaction
	}
	u.tx = nil
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: u}
}

func (u *UnitOfWork) CourierRepository() ports.CourierRepository {
	return &CourierRepository{uow: u}
}

func (u *UnitOfWork) NotificationRepository() ports.NotificationRepository {
	return &NotificationRepository{uow: u}
}

func (u *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	return &CustomerRepository{uow: u}
}

func (u *UnitOfWork) SellerRepository() ports.SellerRepository {
	return &SellerRepository{uow: u}
}

// write stages fn into the active transaction, or runs it in a transaction of its own.
func (u *UnitOfWork) write(fn func(tx *txn) error) error {
	if u.tx != nil {
		return fn(u.tx)
	}
	tx := newTxn()
	if err := fn(tx); err != nil {
		return err
	}
	return u.store.apply(tx)
}

// apply validates every staged write against the current state and then applies all of
// them. Nothing is applied when a check fails.
func (s *Store) apply(tx *txn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, o := range tx.orders {
		stored, ok := s.orders[id]
		switch {
		case o.isNew && ok:
			return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("order %s already exists", id))
		case !o.isNew && !ok:
			return errs.NewObjectNotFoundError("order", id)
		case !o.isNew && stored.Version() != o.baseVersion:
			return errs.NewVersionIsInvalidErrorWithCause("order",
				fmt.Errorf("order %s is at version %d, expected %d", id, stored.Version(), o.baseVersion))
		}
	}
	for id, c := range tx.couriers {
		stored, ok := s.couriers[id]
		switch {
		case c.isNew && ok:
			return errs.NewValueIsInvalidErrorWithCause("courier", fmt.Errorf("courier %s already exists", id))
		case !c.isNew && !ok:
			return errs.NewObjectNotFoundError("courier", id)
		case !c.isNew && (stored.Version() != c.baseVersion || stored.IsAvailable() != c.baseAvailable):
			return fmt.Errorf("%w: courier %s", courier.ErrAssignmentConflict, id)
		}
	}
	for id := range tx.customers {
		if _, ok := s.customers[id]; ok {
			return errs.NewValueIsInvalidErrorWithCause("customer", fmt.Errorf("customer %s already exists", id))
		}
	}
	for id := range tx.sellers {
		if _, ok := s.sellers[id]; ok {
			return errs.NewValueIsInvalidErrorWithCause("seller", fmt.Errorf("seller %s already exists", id))
		}
	}
	for _, n := range tx.notifications {
		if _, ok := s.notifications[n.ID().String()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("notification", fmt.Errorf("notification %s already exists", n.ID()))
		}
	}

	for id, o := range tx.orders {
		s.orders[id] = o.next
	}
	for id, c := range tx.couriers {
		s.couriers[id] = c.next
	}
	for id, c := range tx.customers {
		s.customers[id] = c
	}
	for id, sl := range tx.sellers {
		s.sellers[id] = sl
	}
	for _, n := range tx.notifications {
		s.seq++
		s.notifications[n.ID().String()] = storedNotification{n: n, seq: s.seq}
	}
	for id := range tx.reads {
		if stored, ok := s.notifications[id]; ok {
			stored.n = stored.n.MarkRead()
			s.notifications[id] = stored
		}
	}

	return nil
}
