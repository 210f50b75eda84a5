package cmd

import (
	"errors"
	"log/slog"

	"warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/kafka"
	"warehouse/internal/adapters/out/memory"
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
	"warehouse/internal/jobs"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	uowFactory ports.UnitOfWorkFactory
	reader     *services.WarehouseService
	publisher  ports.OrderEventPublisher
	closers    []func() error
}

// NewCompositionRoot opens the configured storage and, when KAFKA_HOST is
// set, the order event publisher. Close releases both.
func NewCompositionRoot(config Config, log *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config: config,
		logger: log,
	}

	switch config.StorageDriver {
	case StorageMemory:
		store := memory.NewStore()
		c.uowFactory = memory.NewUnitOfWorkFactory(store)
		c.reader = services.NewWarehouseService(memory.NewProductRepository(store), memory.NewOrderRepository(store))
	default:
		db, err := c.openPostgres()
		if err != nil {
			return nil, err
		}
		factory := postgres.NewGormUnitOfWorkFactory(db)
		c.uowFactory = factory

		// Outside a transaction the repositories run directly on the pool.
		reads := factory.Create()
		c.reader = services.NewWarehouseService(reads.ProductRepository(), reads.OrderRepository())
	}

	if brokers := config.KafkaBrokers(); len(brokers) > 0 {
		publisher := kafka.NewOrderChangedPublisher(brokers, config.KafkaOrderChangedTopic)
		c.publisher = publisher
		c.closers = append(c.closers, publisher.Close)
	}

	return c, nil
}

func (c *CompositionRoot) openPostgres() (*gorm.DB, error) {
	dsn := postgres.DSN(c.config.DBHost, c.config.DBPort, c.config.DBUser,
		c.config.DBPassword, c.config.DBName, c.config.DBSslMode)

	db, err := postgres.Open(dsn, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, sqlDB.Close)

	if err = postgres.Migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// Close releases storage and messaging resources.
func (c *CompositionRoot) Close() error {
	var err error
	for i := len(c.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, c.closers[i]())
	}
	return err
}

func (c *CompositionRoot) commandUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductPriceCommandHandler() commands.UpdateProductPriceCommandHandler {
	return commands.NewUpdateProductPriceCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateRestockProductCommandHandler() commands.RestockProductCommandHandler {
	return commands.NewRestockProductCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.commandUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.commandUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.commandUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.commandUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		CreateProduct:      c.CreateCreateProductCommandHandler(),
		UpdateProductPrice: c.CreateUpdateProductPriceCommandHandler(),
		RestockProduct:     c.CreateRestockProductCommandHandler(),
		DeleteProduct:      c.CreateDeleteProductCommandHandler(),
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		ConfirmOrder:       c.CreateConfirmOrderCommandHandler(),
		CancelOrder:        c.CreateCancelOrderCommandHandler(),
		CompleteOrder:      c.CreateCompleteOrderCommandHandler(),
		GetProduct:         c.CreateGetProductQueryHandler(),
		ListProducts:       c.CreateListProductsQueryHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateListProductsQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		jobs.Schedules{
			StockReport:  c.config.StockReportSchedule,
			OrderBacklog: c.config.OrderBacklogSchedule,
		},
		c.logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
