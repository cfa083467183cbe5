package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpadapter "careshare/internal/adapters/in/http"
	"careshare/internal/adapters/out/memory"
	"careshare/internal/adapters/out/metrics"
	"careshare/internal/adapters/out/notifier"
	"careshare/internal/adapters/out/postgres"
	"careshare/internal/core/application/usecases/commands"
	"careshare/internal/core/application/usecases/queries"
	"careshare/internal/core/ports"
	"careshare/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot owns the long lived collaborators of the service and builds
// the use case handlers on top of them.
type CompositionRoot struct {
	config   Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	uowFactory ports.UnitOfWorkFactory
	counter    ports.StatusCounter
	notifier   ports.Notifier
	identity   *httpadapter.JWTIdentityProvider

	closers []func(ctx context.Context) error
}

func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		config:   config,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}

	if err := root.registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	m, err := metrics.New(root.registry)
	if err != nil {
		return nil, err
	}
	root.metrics = m

	if root.identity, err = NewIdentityProvider(config); err != nil {
		return nil, err
	}

	if err = root.openStore(); err != nil {
		return nil, errors.Join(err, root.Close(context.Background()))
	}
	if err = root.startNotifier(); err != nil {
		return nil, errors.Join(err, root.Close(context.Background()))
	}

	return root, nil
}

func (c *CompositionRoot) openStore() error {
	switch c.config.StoreDriver {
	case StoreDriverMemory:
		store := memory.NewStore()
		c.uowFactory = store
		c.counter = store
		c.logger.Warn("using the in-memory store, state is lost on exit")
		return nil
	case StoreDriverPostgres:
		db, err := OpenDatabase(c.config)
		if err != nil {
			return err
		}
		c.closers = append(c.closers, func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		})
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
		c.counter = postgres.NewGormStatusCounter(db)
		return nil
	default:
		return fmt.Errorf("unknown store driver %q", c.config.StoreDriver)
	}
}

func (c *CompositionRoot) startNotifier() error {
	var (
		sink   notifier.Sink
		sinkID string
	)
	if c.config.NatsURL != "" {
		conn, err := notifier.ConnectNATS(c.config.NatsURL, c.logger)
		if err != nil {
			return err
		}
		c.closers = append(c.closers, func(context.Context) error {
			return conn.Drain()
		})
		sink = notifier.NewNatsSink(conn, c.config.NatsSubjectPrefix, notifier.DefaultBreakerConfig(), c.logger)
		sinkID = "nats"
	} else {
		sink = notifier.NewLogSink(c.logger)
		sinkID = "log"
	}

	async := notifier.NewAsyncNotifier(sink, sinkID, c.config.NotifierConfig(), c.logger)
	async.Start()
	// Registered last, closed first: pending events drain before the transport goes away.
	c.closers = append(c.closers, async.Close)
	c.notifier = c.metrics.Notifier(async)
	return nil
}

// OpenDatabase connects to PostgreSQL with the settings of config.
func OpenDatabase(config Config) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	return db, nil
}

// Close releases the collaborators in reverse order of creation.
func (c *CompositionRoot) Close(ctx context.Context) error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](ctx); err != nil {
			errList = append(errList, err)
		}
	}
	c.closers = nil
	return errors.Join(errList...)
}

func (c *CompositionRoot) conflictRetry() commands.ConflictRetry {
	return commands.NewConflictRetry(c.config.ConflictMaxRetries)
}

func (c *CompositionRoot) CreateApplyActionCommandHandler() commands.ApplyActionCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyActionCommandHandler(f, c.notifier, c.conflictRetry(), c.logger)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDonateItemCommandHandler() commands.CreateDonateItemCommandHandler {
	var f commands.DonateItemUoWFactory = FuncDonateItemUoWFactory(func() commands.DonateItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDonateItemCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDonateRequestCommandHandler() commands.CreateDonateRequestCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDonateRequestCommandHandler(f, c.notifier, c.conflictRetry(), c.logger)
}

func (c *CompositionRoot) CreateCreateExchangeRequestCommandHandler() commands.CreateExchangeRequestCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateExchangeRequestCommandHandler(f, c.notifier, c.conflictRetry(), c.logger)
}

func (c *CompositionRoot) CreateCreatePurchaseRequestCommandHandler() commands.CreatePurchaseRequestCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePurchaseRequestCommandHandler(f, c.notifier, c.conflictRetry(), c.logger)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.counter)
}

func (c *CompositionRoot) CreateCountByStatusQueryHandler() queries.CountByStatusQueryHandler {
	return queries.NewCountByStatusQueryHandler(c.counter)
}

func (c *CompositionRoot) CreateGetEntityQueryHandler() queries.GetEntityQueryHandler {
	return queries.NewGetEntityQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListEntitiesQueryHandler() queries.ListEntitiesQueryHandler {
	return queries.NewListEntitiesQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateRouter() *echo.Echo {
	server := httpadapter.NewServer(httpadapter.Handlers{
		ApplyAction:           c.CreateApplyActionCommandHandler(),
		CreateProduct:         c.CreateCreateProductCommandHandler(),
		CreateDonateItem:      c.CreateCreateDonateItemCommandHandler(),
		CreateDonateRequest:   c.CreateCreateDonateRequestCommandHandler(),
		CreateExchangeRequest: c.CreateCreateExchangeRequestCommandHandler(),
		CreatePurchaseRequest: c.CreateCreatePurchaseRequestCommandHandler(),
		GetDashboardStats:     c.CreateGetDashboardStatsQueryHandler(),
		CountByStatus:         c.CreateCountByStatusQueryHandler(),
		GetEntity:             c.CreateGetEntityQueryHandler(),
		ListEntities:          c.CreateListEntitiesQueryHandler(),
	}, c.identity)
	return httpadapter.NewRouter(server, c.registry, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetDashboardStatsQueryHandler(), c.metrics, c.config.StatsCron, c.logger)
}

// NewIdentityProvider builds the bearer token provider shared by the API and
// the development token command.
func NewIdentityProvider(config Config) (*httpadapter.JWTIdentityProvider, error) {
	return httpadapter.NewJWTIdentityProvider(config.JWTSecret)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncDonateItemUoWFactory func() commands.DonateItemUoW

func (f FuncDonateItemUoWFactory) Create() commands.DonateItemUoW {
	return f()
}
