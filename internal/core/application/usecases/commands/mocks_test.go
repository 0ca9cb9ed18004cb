package commands_test

import (
	"context"
	"time"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/courier"
	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/notification"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/model/seller"
	"ordermanagement/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Find(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*order.Order)
	return list, args.Error(1)
}

func (m *MockOrderRepository) GetAllInProcessingNotifiedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	list, _ := args.Get(0).([]*order.Order)
	return list, args.Error(1)
}

func (m *MockOrderRepository) GetAllAwaitingCourierAssignedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	list, _ := args.Get(0).([]*order.Order)
	return list, args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*courier.Courier)
	return c, args.Error(1)
}

func (m *MockCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*courier.Courier)
	return list, args.Error(1)
}

func (m *MockCourierRepository) GetAllAvailable(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*courier.Courier)
	return list, args.Error(1)
}

func (m *MockCourierRepository) CompareAndSwap(ctx context.Context, next *courier.Courier) error {
	args := m.Called(ctx, next)
	return args.Error(0)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(*notification.Notification)
	return n, args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListByRecipient(
	ctx context.Context,
	recipientType notification.RecipientType,
	recipientID kernel.UUID,
	unreadOnly bool,
) ([]*notification.Notification, error) {
	args := m.Called(ctx, recipientType, recipientID, unreadOnly)
	list, _ := args.Get(0).([]*notification.Notification)
	return list, args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type MockSellerRepository struct{ mock.Mock }

func (m *MockSellerRepository) Add(ctx context.Context, s *seller.Seller) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSellerRepository) Get(ctx context.Context, id kernel.UUID) (*seller.Seller, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*seller.Seller)
	return s, args.Error(1)
}

// MockUoW hands out the same repository mocks on every call.
type MockUoW struct {
	mock.Mock

	orders        *MockOrderRepository
	couriers      *MockCourierRepository
	notifications *MockNotificationRepository
	customers     *MockCustomerRepository
	sellers       *MockSellerRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		orders:        new(MockOrderRepository),
		couriers:      new(MockCourierRepository),
		notifications: new(MockNotificationRepository),
		customers:     new(MockCustomerRepository),
		sellers:       new(MockSellerRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository               { return m.orders }
func (m *MockUoW) CourierRepository() ports.CourierRepository           { return m.couriers }
func (m *MockUoW) NotificationRepository() ports.NotificationRepository { return m.notifications }
func (m *MockUoW) CustomerRepository() ports.CustomerRepository         { return m.customers }
func (m *MockUoW) SellerRepository() ports.SellerRepository             { return m.sellers }

func (m *MockUoW) assertAll(t mock.TestingT) {
	m.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.couriers.AssertExpectations(t)
	m.notifications.AssertExpectations(t)
	m.customers.AssertExpectations(t)
	m.sellers.AssertExpectations(t)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// mockFactoryFor makes every Create return uow. Rollback is always allowed since
// handlers defer it unconditionally.
func mockFactoryFor(uow *MockUoW) *MockUoWFactory {
	uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)
	return factory
}

type noopLocker struct{}

func (noopLocker) Lock(string) func() { return func() {} }

func fixedClock(t time.Time) ports.Clock {
	return ports.ClockFunc(func() time.Time { return t })
}

type funcUoWFactory func() commands.UoW

func (f funcUoWFactory) Create() commands.UoW { return f() }

type funcCourierUoWFactory func() commands.CourierUoW

func (f funcCourierUoWFactory) Create() commands.CourierUoW { return f() }

type funcDirectoryUoWFactory func() commands.DirectoryUoW

func (f funcDirectoryUoWFactory) Create() commands.DirectoryUoW { return f() }

type funcNotificationUoWFactory func() commands.NotificationUoW

func (f funcNotificationUoWFactory) Create() commands.NotificationUoW { return f() }
