package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"cape-tours-api/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis returns nil when redis is unreachable: the rate limiter fails open
// and the rest of the service does not depend on redis.
func NewRedis(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unavailable, rate limiting disabled", "addr", cfg.Redis.Addr, "error", err.Error())
		_ = rdb.Close()
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return rdb
}
