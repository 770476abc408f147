package attempts

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix    = "checkout:login_attempts:"
	redisTimeout = 2 * time.Second
)

// redisClient is the subset of redis.Cmdable used by RedisLimiter.
type redisClient interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisLimiter shares counters between instances through Redis INCR and EXPIRE.
// The INCR result is the decision, so concurrent attempts cannot all slip under the limit.
type RedisLimiter struct {
	client redisClient
	opts   Options
}

// NewRedisLimiter wraps an existing Redis client.
func NewRedisLimiter(client redisClient, opts Options) *RedisLimiter {
	return &RedisLimiter{client: client, opts: opts.normalized()}
}

func (l *RedisLimiter) Attempt(ctx context.Context, key string) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	n, err := l.client.Incr(ctx, keyPrefix+key).Result()
	if err != nil {
		return 0, fmt.Errorf("count login attempt: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, keyPrefix+key, l.opts.Lockout).Err(); err != nil {
			return 0, fmt.Errorf("set lockout window: %w", err)
		}
	}
	if n <= int64(l.opts.MaxAttempts) {
		return 0, nil
	}

	ttl, err := l.client.TTL(ctx, keyPrefix+key).Result()
	if err != nil {
		return 0, fmt.Errorf("read lockout ttl: %w", err)
	}
	if ttl <= 0 {
		// Counter lost its expiry; start a fresh lockout window.
		if err := l.client.Expire(ctx, keyPrefix+key, l.opts.Lockout).Err(); err != nil {
			return 0, fmt.Errorf("set lockout window: %w", err)
		}
		ttl = l.opts.Lockout
	}
	return ttl, nil
}

func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	if err := l.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("reset login attempts: %w", err)
	}
	return nil
}
