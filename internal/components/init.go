package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"tiendita/internal/checkout"
	"tiendita/internal/config"
	"tiendita/internal/gateway"
	"tiendita/internal/kafka"
	"tiendita/internal/ports"
	"tiendita/internal/service"
	"tiendita/internal/service/render"
	"tiendita/internal/storage/pg"
	"tiendita/internal/storage/redis"
	"tiendita/internal/worker"
	"tiendita/pkg/logger"

	"github.com/IBM/sarama"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

type Components struct {
	HttpServer *ports.Server
	Postgres   *pg.Postgres
	Redis      *redis.Redis
	Producer   *kafka.Producer
	Reconciler *worker.Reconciler
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	postgres, err := pg.NewPostgres(ctx, logger, cfg.Postgres.PostgresURL)
	if err != nil {
		return nil, fmt.Errorf("components.InitComponents.postgres failed: %w", err)
	}
	if err := postgres.Migrate(cfg.Postgres.MigrationsPath, cfg.Postgres.PostgresURL); err != nil {
		return nil, fmt.Errorf("components.InitComponents.migrate failed: %w", err)
	}

	// the idempotency cache is optional: without redis every resubmission
	// creates a fresh transaction
	var redisClient *redis.Redis
	var idem checkout.IdempotencyCache
	if len(cfg.Redis.Addrs) > 0 {
		redisClient, err = redis.NewRedis(&cfg.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("components.InitComponents.redis failed: %w", err)
		}
		idem = redisClient
	} else {
		logger.Warn("redis not configured, idempotency cache disabled")
	}

	var producer *kafka.Producer
	var events checkout.EventPublisher
	if len(cfg.Kafka.BrokerList) > 0 {
		saramaConfig := sarama.NewConfig()
		saramaConfig.Producer.Return.Successes = true
		saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal

		syncProducer, err := sarama.NewSyncProducer(cfg.Kafka.BrokerList, saramaConfig)
		if err != nil {
			return nil, fmt.Errorf("components.InitComponents.producer failed: %w", err)
		}
		producer = kafka.NewProducer(cfg.Kafka.Topic, logger, syncProducer)
		events = producer
	} else {
		logger.Warn("kafka not configured, transaction events disabled")
	}

	var gw gateway.Gateway
	switch cfg.Gateway.Mode {
	case "simulate":
		gw = gateway.NewSimulator(logger)
	default:
		gw = gateway.NewApprover(logger)
	}

	forms := checkout.NewFormValidator()
	cart := checkout.NewCart(logger, postgres)
	processor := checkout.NewProcessor(logger, cart, postgres, gw, idem, events, cfg.Checkout.IdempotencyTTL)
	checkoutService := service.NewService(logger, forms, cart, processor, postgres)

	serviceRender := render.New(cfg.Checkout.TemplatesDir, logger)
	httpServer := ports.NewServer(ctx, cfg, logger, checkoutService, serviceRender)

	reconciler := worker.NewReconciler(logger, postgres, gw, cfg.Worker.Interval, cfg.Worker.StuckAfter)

	return &Components{
		HttpServer: httpServer,
		Postgres:   postgres,
		Redis:      redisClient,
		Producer:   producer,
		Reconciler: reconciler,
	}, nil
}

func (c *Components) Shutdown() error {
	var errs []error
	c.Postgres.CloseConnection()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis client: %w", err))
		}
	}
	if c.Producer != nil {
		if err := c.Producer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close kafka producer: %w", err))
		}
	}
	if err := c.HttpServer.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close Http Server: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}

	return nil
}

func SetupLogger(cfg config.Config) *slog.Logger {
	log := &slog.Logger{}

	switch cfg.Env {
	case envLocal:
		log = logger.SetupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}
