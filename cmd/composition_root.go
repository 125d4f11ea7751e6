package cmd

import (
	"context"
	"log/slog"

	"castlecare/internal/adapters/out/memcache"
	"castlecare/internal/adapters/out/postgres"
	"castlecare/internal/adapters/out/propertydata"
	"castlecare/internal/adapters/out/rabbitmq"
	redisadapter "castlecare/internal/adapters/out/redis"
	"castlecare/internal/core/application/usecases/commands"
	"castlecare/internal/core/application/usecases/queries"
	"castlecare/internal/core/domain/services"
	"castlecare/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. One instance lives
// for the process lifetime; handlers are built per call and are cheap.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	cache      ports.CacheStore
	publisher  ports.OrderEventPublisher
	property   ports.PropertySizeProvider
	validator  services.EligibilityValidator
	logger     *slog.Logger

	closers []func() error
}

// NewCompositionRoot builds the object graph from config and the database handle.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		validator:  services.NewEligibilityValidator(logger),
		logger:     logger,
	}

	if config.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		root.cache = redisadapter.NewCacheStore(client)
		root.closers = append(root.closers, client.Close)
	} else {
		logger.Warn("REDIS_ADDR not set, using in-process cache")
		root.cache = memcache.NewCacheStore()
	}

	if config.RabbitURL != "" {
		publisher, err := rabbitmq.NewOrderEventPublisher(config.RabbitURL, config.RabbitExchange)
		if err != nil {
			return nil, err
		}
		root.publisher = publisher
		root.closers = append(root.closers, publisher.Close)
	} else {
		logger.Warn("RABBITMQ_URL not set, order events will be dropped")
		root.publisher = noopPublisher{}
	}

	root.property = propertydata.NewClient(root.cache, propertydata.Config{
		BaseURL:  config.PropertyAPIBaseURL,
		APIKey:   config.PropertyAPIKey,
		APIHost:  config.PropertyAPIHost,
		CacheTTL: config.PropertyCacheTTL,
		Fallback: ports.PropertySize{
			LivingAreaSqFt: config.FallbackLivingAreaSqFt,
			LotSize:        config.FallbackLotSize,
		},
	}, logger)

	return root, nil
}

// Close releases broker and cache connections.
func (c *CompositionRoot) Close() {
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			c.logger.Error("failed to close resource", "error", err)
		}
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.property, c.validator, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderWorkerUoWFactory = FuncOrderWorkerUoWFactory(func() commands.OrderWorkerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.cache, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAddProofCommandHandler() commands.AddProofCommandHandler {
	return commands.NewAddProofCommandHandler(c.orderUoWFactory(), c.cache, c.logger)
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateAddAddressCommandHandler() commands.AddAddressCommandHandler {
	return commands.NewAddAddressCommandHandler(c.customerUoWFactory(), c.cache, c.logger)
}

func (c *CompositionRoot) CreateRemoveAddressCommandHandler() commands.RemoveAddressCommandHandler {
	return commands.NewRemoveAddressCommandHandler(c.customerUoWFactory(), c.cache, c.logger)
}

func (c *CompositionRoot) CreateCreateWorkerCommandHandler() commands.CreateWorkerCommandHandler {
	return commands.NewCreateWorkerCommandHandler(c.workerUoWFactory())
}

func (c *CompositionRoot) CreateApproveWorkerCommandHandler() commands.ApproveWorkerCommandHandler {
	return commands.NewApproveWorkerCommandHandler(c.workerUoWFactory(), c.cache, c.logger)
}

func (c *CompositionRoot) CreateSetWorkerAvailabilityCommandHandler() commands.SetWorkerAvailabilityCommandHandler {
	return commands.NewSetWorkerAvailabilityCommandHandler(c.workerUoWFactory(), c.cache, c.logger)
}

func (c *CompositionRoot) CreateCreatePricingOptionCommandHandler() commands.CreatePricingOptionCommandHandler {
	return commands.NewCreatePricingOptionCommandHandler(c.pricingUoWFactory(), c.cache, c.logger)
}

func (c *CompositionRoot) CreateUpdatePricingOptionCommandHandler() commands.UpdatePricingOptionCommandHandler {
	return commands.NewUpdatePricingOptionCommandHandler(c.pricingUoWFactory(), c.cache, c.logger)
}

func (c *CompositionRoot) CreateEscalatePendingOrdersCommandHandler() commands.EscalatePendingOrdersCommandHandler {
	return commands.NewEscalatePendingOrdersCommandHandler(
		c.orderUoWFactory(), c.publisher, c.config.StaleOrderAge, c.logger)
}

func (c *CompositionRoot) CreateOrderByIDHandler() queries.OrderByIDHandler {
	inner := queries.NewGetOrderByIDQueryHandler(c.gormDB)
	return queries.NewCachedOrderByIDHandler(inner, c.cache, c.config.OrderCacheTTL, c.logger)
}

func (c *CompositionRoot) CreateGetOrdersByCustomerIDQueryHandler() queries.GetOrdersByCustomerIDQueryHandler {
	return queries.NewGetOrdersByCustomerIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByWorkerIDQueryHandler() queries.GetOrdersByWorkerIDQueryHandler {
	return queries.NewGetOrdersByWorkerIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableWorkersByRoleQueryHandler() queries.GetAvailableWorkersByRoleQueryHandler {
	// Outside a transaction the unit of work binds repositories to the
	// connection pool, which is all a read needs.
	return queries.NewGetAvailableWorkersByRoleQueryHandler(c.uowFactory.Create().WorkerRepository())
}

func (c *CompositionRoot) CreatePricingOptionsHandler() queries.PricingOptionsHandler {
	inner := queries.NewGetPricingOptionsQueryHandler(c.gormDB)
	return queries.NewCachedPricingOptionsHandler(inner, c.cache, c.config.PricingCacheTTL, c.logger)
}

func (c *CompositionRoot) CreatePricingOptionByIDHandler() queries.PricingOptionByIDHandler {
	inner := queries.NewGetPricingOptionByIDQueryHandler(c.gormDB)
	return queries.NewCachedPricingOptionByIDHandler(inner, c.cache, c.config.PricingCacheTTL, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) workerUoWFactory() commands.WorkerUoWFactory {
	return FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) pricingUoWFactory() commands.PricingUoWFactory {
	return FuncPricingUoWFactory(func() commands.PricingUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncWorkerUoWFactory func() commands.WorkerUoW

func (f FuncWorkerUoWFactory) Create() commands.WorkerUoW {
	return f()
}

type FuncPricingUoWFactory func() commands.PricingUoW

func (f FuncPricingUoWFactory) Create() commands.PricingUoW {
	return f()
}

type FuncOrderWorkerUoWFactory func() commands.OrderWorkerUoW

func (f FuncOrderWorkerUoWFactory) Create() commands.OrderWorkerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// noopPublisher drops events when no broker is configured.
type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, ports.OrderEvent) error {
	return nil
}
