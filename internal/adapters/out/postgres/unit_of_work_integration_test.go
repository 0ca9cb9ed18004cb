package postgres_test

import (
	"context"
	"testing"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type UnitOfWorkIntegrationTestSuite struct {
	postgresSuite
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

func (s *UnitOfWorkIntegrationTestSuite) TestFactoryCreatesSeparateInstances() {
	uow1 := s.factory.Create()
	uow2 := s.factory.Create()

	s.NotSame(uow1, uow2)
	s.NotNil(uow1.OrderRepository())
	s.NotNil(uow1.CourierRepository())
	s.NotNil(uow1.NotificationRepository())
	s.NotNil(uow1.CustomerRepository())
	s.NotNil(uow1.SellerRepository())
}

func (s *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := s.factory.Create()

	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.Begin(ctx), "nested Begin is a no-op")
	s.Require().NoError(uow.Commit(ctx))

	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.Rollback(ctx))

	s.Error(uow.Commit(ctx), "commit without transaction")
	s.Error(uow.Rollback(ctx), "rollback without transaction")
}

func (s *UnitOfWorkIntegrationTestSuite) TestCommitSpansRepositories() {
	ctx := context.Background()
	o := s.newOrder(kernel.NewUUID(), kernel.NewUUID(), baseTime)
	c := s.newCourier("Alice")

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	s.Require().NoError(uow.CourierRepository().Add(ctx, c))

	_, err := s.factory.Create().OrderRepository().Get(ctx, o.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound, "uncommitted order is invisible outside the transaction")

	s.Require().NoError(uow.Commit(ctx))

	_, err = s.factory.Create().OrderRepository().Get(ctx, o.ID())
	s.Require().NoError(err)
	_, err = s.factory.Create().CourierRepository().Get(ctx, c.ID())
	s.Require().NoError(err)
}

func (s *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsEverything() {
	ctx := context.Background()
	o := s.newOrder(kernel.NewUUID(), kernel.NewUUID(), baseTime)
	c := s.newCourier("Alice")

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	s.Require().NoError(uow.CourierRepository().Add(ctx, c))
	_, err := uow.OrderRepository().Get(ctx, o.ID())
	s.Require().NoError(err, "a transaction sees its own writes")
	s.Require().NoError(uow.Rollback(ctx))

	fresh := s.factory.Create()
	_, err = fresh.OrderRepository().Get(ctx, o.ID())
	s.ErrorIs(err, errs.ErrObjectNotFound)
	_, err = fresh.CourierRepository().Get(ctx, c.ID())
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *UnitOfWorkIntegrationTestSuite) TestWithoutTransactionWritesImmediately() {
	ctx := context.Background()
	o := s.newOrder(kernel.NewUUID(), kernel.NewUUID(), baseTime)

	s.Require().NoError(s.factory.Create().OrderRepository().Add(ctx, o))

	got, err := s.factory.Create().OrderRepository().Get(ctx, o.ID())
	s.Require().NoError(err)
	s.Equal(o.ID(), got.ID())
}
