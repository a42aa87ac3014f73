package cmd

import (
	"errors"
	"log/slog"
	"strings"

	httpin "orderflow/internal/adapters/in/http"
	"orderflow/internal/adapters/out/kafka"
	"orderflow/internal/adapters/out/metrics"
	"orderflow/internal/adapters/out/postgres"
	redisstore "orderflow/internal/adapters/out/redis"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
	"orderflow/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory

	registry    *prometheus.Registry
	metrics     *metrics.PrometheusTransitionMetrics
	publisher   ports.OrderEventPublisher
	idempotency ports.IdempotencyStore
	machine     *services.Machine

	closers []func() error
}

// NewCompositionRoot builds the long-lived dependencies. Kafka and Redis are
// optional: an empty KAFKA_HOST or REDIS_ADDR swaps in a no-op adapter.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	transitionMetrics, err := metrics.NewPrometheusTransitionMetrics(registry)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   registry,
		metrics:    transitionMetrics,
	}

	if cfg.KafkaHost != "" {
		publisher := kafka.NewOrderEventPublisher(cfg.KafkaOrderChangedTopic, logger, strings.Split(cfg.KafkaHost, ",")...)
		root.publisher = publisher
		root.closers = append(root.closers, publisher.Close)
	} else {
		logger.Warn("KAFKA_HOST is empty, order state changes will not be published")
		root.publisher = kafka.NopOrderEventPublisher{}
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		root.idempotency = redisstore.NewIdempotencyStore(client, cfg.IdempotencyTTL)
		root.closers = append(root.closers, client.Close)
	} else {
		logger.Warn("REDIS_ADDR is empty, Idempotency-Key headers will be ignored")
		root.idempotency = redisstore.NopIdempotencyStore{}
	}

	root.machine = services.NewMachine(
		services.DefaultTransitionTable(),
		logger,
		services.NewStateChangeLogger(logger),
	)

	return root, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(), c.machine, c.idempotency, c.publisher, c.metrics, c.cfg.PublishTimeout, c.logger,
	)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(
		c.orderUoWFactory(), c.machine, c.publisher, c.metrics, c.cfg.PublishTimeout, c.logger,
	)
}

func (c *CompositionRoot) CreateOrderWorkflow() commands.OrderWorkflow {
	return commands.NewOrderWorkflow(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAdvanceOrderCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusCountsQueryHandler() queries.GetOrderStatusCountsQueryHandler {
	return queries.NewGetOrderStatusCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewOrderStatusReportJob(
			c.CreateGetOrderStatusCountsQueryHandler(),
			c.metrics,
			c.cfg.StatusReportSchedule,
			c.logger,
		),
	)
}

func (c *CompositionRoot) CreateHTTPRouter() (*echo.Echo, error) {
	server := httpin.NewServer(c.CreateOrderWorkflow(), c.CreateGetOrderQueryHandler(), c.machine)
	return httpin.NewRouter(server, c.registry, c.logger)
}

// Close releases the Kafka writer and Redis client, if any.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
