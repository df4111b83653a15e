package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra/cache"
	"hotel-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewCache,
	),
)

// NewCache returns nil when REDIS_ADDR is unset.
func NewCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *cache.Cache {
	if !cfg.Redis.Enabled() {
		logger.Info("REDIS_ADDR が未設定のため、カタログのキャッシュを無効にします")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// キャッシュは任意なので、接続できなくても起動は続ける
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Redisに接続できません", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.New(client)
}
