package attempts

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/vertexinvest/checkout/internal/config"
)

// Module exposes the login attempt limiter to the fx graph.
var Module = fx.Provide(newLimiter)

type limiterParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

var newRedisClient = func(url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opt), nil
}

func newLimiter(p limiterParams) (Limiter, error) {
	opts := Options{MaxAttempts: p.Config.LoginMaxAttempts, Lockout: p.Config.LoginLockout}
	if p.Config.RedisURL == "" {
		p.Logger.Info("login attempts tracked in memory")
		return NewMemoryLimiter(opts), nil
	}

	client, err := newRedisClient(p.Config.RedisURL)
	if err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, redisTimeout)
			defer cancel()
			if err := client.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("ping redis: %w", err)
			}
			p.Logger.Info("login attempts tracked in redis")
			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewRedisLimiter(client, opts), nil
}
