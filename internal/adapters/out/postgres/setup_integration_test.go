package postgres_test

import (
	"context"
	"time"

	postgres_adapter "ordermanagement/internal/adapters/out/postgres"
	"ordermanagement/internal/core/domain/model/courier"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// postgresSuite starts one PostgreSQL container per suite and truncates every
// table before each test.
type postgresSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

func (s *postgresSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(postgres_adapter.Migrate(ctx, db))
	s.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (s *postgresSuite) SetupTest() {
	s.Require().NoError(s.db.Exec(
		"TRUNCATE TABLE order_items, orders, couriers, notifications, customers, sellers RESTART IDENTITY",
	).Error)
}

func (s *postgresSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *postgresSuite) newOrder(customerID, sellerID kernel.UUID, at time.Time) *order.Order {
	first, err := kernel.MoneyFromString("10.00")
	s.Require().NoError(err)
	second, err := kernel.MoneyFromString("3.35")
	s.Require().NoError(err)
	pizza, err := order.NewItem("pizza", 2, first)
	s.Require().NoError(err)
	cola, err := order.NewItem("cola", 3, second)
	s.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID, sellerID, []order.Item{pizza, cola}, at)
	s.Require().NoError(err)
	return o
}

func (s *postgresSuite) newCourier(name string) *courier.Courier {
	c, err := courier.NewCourier(kernel.NewUUID(), name, "", baseTime)
	s.Require().NoError(err)
	return c
}
