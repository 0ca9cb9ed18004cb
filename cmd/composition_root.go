package cmd

import (
	"log/slog"
	"time"

	httpin "ordermanagement/internal/adapters/in/http"
	"ordermanagement/internal/adapters/out/memory"
	"ordermanagement/internal/adapters/out/postgres"
	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/jobs"
	"ordermanagement/internal/pkg/keylock"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	uowFactory ports.UnitOfWorkFactory
	locks      *keylock.KeyedMutex
	clock      ports.Clock
}

// NewCompositionRoot wires the gorm backend when gormDB is set and the in-memory
// store otherwise.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB) CompositionRoot {
	var uows ports.UnitOfWorkFactory
	if gormDB != nil {
		uows = postgres.NewGormUnitOfWorkFactory(gormDB)
	} else {
		uows = memory.NewUnitOfWorkFactory(memory.NewStore())
	}

	return CompositionRoot{
		cfg:        cfg,
		uowFactory: uows,
		locks:      keylock.New(),
		clock: ports.ClockFunc(func() time.Time {
			// postgres keeps microseconds
			return time.Now().UTC().Truncate(time.Microsecond)
		}),
	}
}

func (c *CompositionRoot) uows() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) repositories() queries.RepositoriesFactory {
	return FuncRepositoriesFactory(func() queries.Repositories { return c.uowFactory.Create() })
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.DirectoryUoWFactory = FuncDirectoryUoWFactory(func() commands.DirectoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCreateSellerCommandHandler() commands.CreateSellerCommandHandler {
	var f commands.DirectoryUoWFactory = FuncDirectoryUoWFactory(func() commands.DirectoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateSellerCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uows(), c.clock)
}

func (c *CompositionRoot) CreateReviewOrderCommandHandler() commands.ReviewOrderCommandHandler {
	return commands.NewReviewOrderCommandHandler(c.uows(), c.locks, c.clock)
}

func (c *CompositionRoot) CreateAssembleOrderCommandHandler() commands.AssembleOrderCommandHandler {
	return commands.NewAssembleOrderCommandHandler(c.uows(), c.locks, c.clock)
}

func (c *CompositionRoot) CreateSearchCourierCommandHandler() commands.SearchCourierCommandHandler {
	return commands.NewSearchCourierCommandHandler(c.uows(), c.locks, c.clock)
}

func (c *CompositionRoot) CreateCourierAcceptDeliveryCommandHandler() commands.CourierAcceptDeliveryCommandHandler {
	return commands.NewCourierAcceptDeliveryCommandHandler(c.uows(), c.locks)
}

func (c *CompositionRoot) CreateCourierArrivedCommandHandler() commands.CourierArrivedCommandHandler {
	return commands.NewCourierArrivedCommandHandler(c.uows(), c.locks, c.clock)
}

func (c *CompositionRoot) CreateCancelOverdueOrdersCommandHandler() commands.CancelOverdueOrdersCommandHandler {
	return commands.NewCancelOverdueOrdersCommandHandler(c.uows(), c.locks, c.clock)
}

func (c *CompositionRoot) CreateMarkDelayedOrdersCommandHandler() commands.MarkDelayedOrdersCommandHandler {
	return commands.NewMarkDelayedOrdersCommandHandler(c.uows(), c.locks, c.clock)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkNotificationReadCommandHandler(f)
}

func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	repos := c.repositories()
	return httpin.Handlers{
		CreateCustomer: c.CreateCreateCustomerCommandHandler(),
		CreateSeller:   c.CreateCreateSellerCommandHandler(),
		CreateCourier:  c.CreateCreateCourierCommandHandler(),

		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		ReviewOrder:    c.CreateReviewOrderCommandHandler(),
		AssembleOrder:  c.CreateAssembleOrderCommandHandler(),
		SearchCourier:  c.CreateSearchCourierCommandHandler(),
		AcceptDelivery: c.CreateCourierAcceptDeliveryCommandHandler(),
		CourierArrived: c.CreateCourierArrivedCommandHandler(),

		MarkNotificationRead: c.CreateMarkNotificationReadCommandHandler(),

		GetCustomer:       queries.NewGetCustomerQueryHandler(repos),
		GetSeller:         queries.NewGetSellerQueryHandler(repos),
		GetCourier:        queries.NewGetCourierQueryHandler(repos),
		GetAllCouriers:    queries.NewGetAllCouriersQueryHandler(repos),
		GetOrder:          queries.NewGetOrderQueryHandler(repos),
		ListOrders:        queries.NewListOrdersQueryHandler(repos),
		ListNotifications: queries.NewListNotificationsQueryHandler(repos),
	}
}

// CreateJobManager builds both timer sweeps on the configured scan interval.
func (c *CompositionRoot) CreateJobManager(reg prometheus.Registerer, logger *slog.Logger) (*jobs.JobManager, error) {
	metrics := jobs.NewEscalationMetrics(reg)

	sellerJob, err := jobs.NewSellerTimeoutJob(
		c.CreateCancelOverdueOrdersCommandHandler(), c.cfg.SellerReactionTimeout, metrics, logger)
	if err != nil {
		return nil, err
	}
	courierJob, err := jobs.NewCourierTimeoutJob(
		c.CreateMarkDelayedOrdersCommandHandler(), c.cfg.CourierArrivalTimeout, metrics, logger)
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(c.cfg.TimerScanInterval, logger, sellerJob, courierJob)
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncDirectoryUoWFactory func() commands.DirectoryUoW

func (f FuncDirectoryUoWFactory) Create() commands.DirectoryUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncRepositoriesFactory func() queries.Repositories

func (f FuncRepositoriesFactory) Create() queries.Repositories {
	return f()
}
