package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"ordermanagement/internal/core/domain/model/courier"
	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/notification"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/model/seller"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type RepositoriesIntegrationTestSuite struct {
	postgresSuite
}

func TestRepositoriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoriesIntegrationTestSuite))
}

func (s *RepositoriesIntegrationTestSuite) TestOrder_RoundTrip() {
	ctx := context.Background()
	o := s.newOrder(kernel.NewUUID(), kernel.NewUUID(), baseTime)
	repo := s.factory.Create().OrderRepository()

	s.Require().NoError(repo.Add(ctx, o))
	got, err := repo.Get(ctx, o.ID())

	s.Require().NoError(err)
	s.Equal(order.InProcessing, got.Status())
	s.Equal("30.05", got.TotalPrice().String())
	s.Require().Len(got.Items(), 2)
	s.Equal("pizza", got.Items()[0].ProductName())
	s.Equal("3.35", got.Items()[1].Price().String())
	s.True(baseTime.Equal(got.CreatedAt()))
	s.Require().NotNil(got.SellerNotifiedAt())
	s.True(baseTime.Equal(*got.SellerNotifiedAt()))
	s.Nil(got.CourierID())
	s.Equal(int64(1), got.Version())
}

func (s *RepositoriesIntegrationTestSuite) TestOrder_GetUnknown() {
	_, err := s.factory.Create().OrderRepository().Get(context.Background(), kernel.NewUUID())
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *RepositoriesIntegrationTestSuite) TestOrder_UpdateChecksVersion() {
	ctx := context.Background()
	repo := s.factory.Create().OrderRepository()
	o := s.newOrder(kernel.NewUUID(), kernel.NewUUID(), baseTime)
	s.Require().NoError(repo.Add(ctx, o))

	cooking, err := o.Review(true, "", baseTime.Add(time.Minute))
	s.Require().NoError(err)
	cancelled, err := o.Review(false, "out of stock", baseTime.Add(time.Minute))
	s.Require().NoError(err)

	s.Require().NoError(repo.Update(ctx, cooking))
	err = repo.Update(ctx, cancelled)
	s.Require().ErrorIs(err, errs.ErrVersionIsInvalid, "second writer from the same base version loses")

	got, err := repo.Get(ctx, o.ID())
	s.Require().NoError(err)
	s.Equal(order.Cooking, got.Status())
	s.Equal(int64(2), got.Version())
	s.Empty(got.CancelReason())
	s.Len(got.Items(), 2, "items are untouched by updates")
}

func (s *RepositoriesIntegrationTestSuite) TestOrder_UpdatePersistsLifecycle() {
	ctx := context.Background()
	repo := s.factory.Create().OrderRepository()
	courierID := kernel.NewUUID()
	o := s.newOrder(kernel.NewUUID(), kernel.NewUUID(), baseTime)
	s.Require().NoError(repo.Add(ctx, o))

	next := o
	steps := []func(*order.Order) (*order.Order, error){
		func(x *order.Order) (*order.Order, error) { return x.Review(true, "", baseTime) },
		func(x *order.Order) (*order.Order, error) { return x.Assemble(baseTime) },
		func(x *order.Order) (*order.Order, error) { return x.StartCourierSearch(baseTime) },
		func(x *order.Order) (*order.Order, error) { return x.AssignCourier(courierID, baseTime) },
	}
	for _, step := range steps {
		var err error
		next, err = step(next)
		s.Require().NoError(err)
		s.Require().NoError(repo.Update(ctx, next))
	}

	got, err := repo.Get(ctx, o.ID())
	s.Require().NoError(err)
	s.Equal(order.AwaitingCourier, got.Status())
	s.True(got.IsAssignedTo(courierID))
	s.NotNil(got.CourierAssignedAt())
	s.NotNil(got.CourierNotifiedAt())
	s.NotNil(got.SellerNotifiedAt())
}

func (s *RepositoriesIntegrationTestSuite) TestOrder_FindAndOverdueQueries() {
	ctx := context.Background()
	repo := s.factory.Create().OrderRepository()
	customerID, sellerID := kernel.NewUUID(), kernel.NewUUID()

	old := s.newOrder(customerID, sellerID, baseTime)
	fresh := s.newOrder(kernel.NewUUID(), sellerID, baseTime.Add(20*time.Minute))
	s.Require().NoError(repo.Add(ctx, old))
	s.Require().NoError(repo.Add(ctx, fresh))

	overdue, err := repo.GetAllInProcessingNotifiedBefore(ctx, baseTime.Add(10*time.Minute))
	s.Require().NoError(err)
	s.Require().Len(overdue, 1)
	s.Equal(old.ID(), overdue[0].ID())

	bySeller, err := repo.Find(ctx, ports.OrderFilter{SellerID: &sellerID})
	s.Require().NoError(err)
	s.Require().Len(bySeller, 2)
	s.Equal(old.ID(), bySeller[0].ID(), "oldest first")

	byCustomer, err := repo.Find(ctx, ports.OrderFilter{CustomerID: &customerID})
	s.Require().NoError(err)
	s.Len(byCustomer, 1)

	cooking := order.Cooking
	none, err := repo.Find(ctx, ports.OrderFilter{Status: &cooking})
	s.Require().NoError(err)
	s.NotNil(none)
	s.Empty(none)

	awaiting, err := repo.GetAllAwaitingCourierAssignedBefore(ctx, baseTime.Add(time.Hour))
	s.Require().NoError(err)
	s.Empty(awaiting)
}

func (s *RepositoriesIntegrationTestSuite) TestCourier_CompareAndSwap() {
	ctx := context.Background()
	repo := s.factory.Create().CourierRepository()
	c := s.newCourier("Alice")
	s.Require().NoError(repo.Add(ctx, c))

	first, err := c.Reserve()
	s.Require().NoError(err)
	second, err := c.Reserve()
	s.Require().NoError(err)

	s.Require().NoError(repo.CompareAndSwap(ctx, first))
	s.Require().ErrorIs(repo.CompareAndSwap(ctx, second), courier.ErrAssignmentConflict)

	got, err := repo.Get(ctx, c.ID())
	s.Require().NoError(err)
	s.False(got.IsAvailable())
	s.Equal(int64(2), got.Version())

	available, err := repo.GetAllAvailable(ctx)
	s.Require().NoError(err)
	s.Empty(available)

	released, err := got.Release()
	s.Require().NoError(err)
	s.Require().NoError(repo.CompareAndSwap(ctx, released))

	ghost, err := s.newCourier("Ghost").Reserve()
	s.Require().NoError(err)
	s.ErrorIs(repo.CompareAndSwap(ctx, ghost), errs.ErrObjectNotFound)
}

func (s *RepositoriesIntegrationTestSuite) TestCourier_ConcurrentReservationsHaveOneWinner() {
	ctx := context.Background()
	c := s.newCourier("Solo")
	s.Require().NoError(s.factory.Create().CourierRepository().Add(ctx, c))

	const contenders = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for range contenders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uow := s.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				return
			}
			defer func() { _ = uow.Rollback(ctx) }()

			reserved, err := c.Reserve()
			if err != nil {
				return
			}
			if err = uow.CourierRepository().CompareAndSwap(ctx, reserved); err != nil {
				return
			}
			if uow.Commit(ctx) == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(1, wins)
}

func (s *RepositoriesIntegrationTestSuite) TestCourier_GetAllOrderedByID() {
	ctx := context.Background()
	repo := s.factory.Create().CourierRepository()
	for _, name := range []string{"A", "B", "C"} {
		s.Require().NoError(repo.Add(ctx, s.newCourier(name)))
	}

	all, err := repo.GetAll(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	for i := 1; i < len(all); i++ {
		s.Negative(all[i-1].ID().Compare(all[i].ID()))
	}
}

func (s *RepositoriesIntegrationTestSuite) TestNotifications() {
	ctx := context.Background()
	repo := s.factory.Create().NotificationRepository()
	recipient := kernel.NewUUID()
	orderID := kernel.NewUUID()

	var ids []kernel.UUID
	for _, at := range []time.Time{baseTime, baseTime.Add(time.Minute), baseTime.Add(time.Minute)} {
		n, err := notification.NewNotification(kernel.NewUUID(), notification.RecipientCourier, recipient, orderID, "pick up", at)
		s.Require().NoError(err)
		s.Require().NoError(repo.Add(ctx, n))
		ids = append(ids, n.ID())
	}

	list, err := repo.ListByRecipient(ctx, notification.RecipientCourier, recipient, false)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal([]kernel.UUID{ids[2], ids[1], ids[0]}, []kernel.UUID{list[0].ID(), list[1].ID(), list[2].ID()})

	s.Require().NoError(repo.MarkRead(ctx, ids[1]))
	s.Require().NoError(repo.MarkRead(ctx, ids[1]), "marking twice is not an error")
	s.ErrorIs(repo.MarkRead(ctx, kernel.NewUUID()), errs.ErrObjectNotFound)

	unread, err := repo.ListByRecipient(ctx, notification.RecipientCourier, recipient, true)
	s.Require().NoError(err)
	s.Len(unread, 2)

	got, err := repo.Get(ctx, ids[1])
	s.Require().NoError(err)
	s.True(got.IsRead())

	other, err := repo.ListByRecipient(ctx, notification.RecipientCustomer, recipient, false)
	s.Require().NoError(err)
	s.Empty(other)
}

func (s *RepositoriesIntegrationTestSuite) TestDirectory() {
	ctx := context.Background()
	uow := s.factory.Create()

	c, err := customer.NewCustomer(kernel.NewUUID(), "Jane", "jane@example.com", "+100", baseTime)
	s.Require().NoError(err)
	sel, err := seller.NewSeller(kernel.NewUUID(), "Luigi's", "1 Main St", baseTime)
	s.Require().NoError(err)

	s.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	s.Require().NoError(uow.SellerRepository().Add(ctx, sel))

	gotCustomer, err := uow.CustomerRepository().Get(ctx, c.ID())
	s.Require().NoError(err)
	s.Equal("jane@example.com", gotCustomer.Email())
	s.Equal("+100", gotCustomer.Phone())

	gotSeller, err := uow.SellerRepository().Get(ctx, sel.ID())
	s.Require().NoError(err)
	s.Equal("1 Main St", gotSeller.Address())

	_, err = uow.SellerRepository().Get(ctx, c.ID())
	s.ErrorIs(err, errs.ErrObjectNotFound)
}
