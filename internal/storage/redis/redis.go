package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tiendita/internal/config"
	"tiendita/pkg/e"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idem:"

// Redis backs the idempotency cache: client supplied key -> transaction id.
type Redis struct {
	client redis.UniversalClient
	logger *slog.Logger
}

func NewRedis(cfg *config.RedisConfig, logger *slog.Logger) (*Redis, error) {
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    cfg.Addrs,
		Password: cfg.Password,
		DB:       cfg.DBRedis,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis.NewRedis: failed to ping: %w", err)
	}

	logger.Info("connected to redis")

	return &Redis{
		client: client,
		logger: logger,
	}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (uuid.UUID, error) {
	val, err := r.client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, e.ErrNotFound
		}
		return uuid.Nil, e.Wrap("redis.Get", err)
	}

	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, e.Wrap("redis.Get: corrupt idempotency entry", err)
	}

	return id, nil
}

func (r *Redis) Set(ctx context.Context, key string, id uuid.UUID, exp time.Duration) error {
	if err := r.client.Set(ctx, keyPrefix+key, id.String(), exp).Err(); err != nil {
		return e.Wrap("redis.Set", err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
