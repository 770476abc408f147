// Package attempts tracks admin logins per client and enforces a lockout window.
package attempts

import (
	"context"
	"time"
)

// Limiter counts login attempts per key. Attempt records one attempt before the
// password is checked and reports a positive retry-after once the key exceeds the
// allowed number of attempts in the current window.
type Limiter interface {
	Attempt(ctx context.Context, key string) (time.Duration, error)
	Reset(ctx context.Context, key string) error
}

// Options configures the lockout policy shared by all limiter backends.
type Options struct {
	MaxAttempts int
	Lockout     time.Duration
}

func (o Options) normalized() Options {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 5
	}
	if o.Lockout <= 0 {
		o.Lockout = 15 * time.Minute
	}
	return o
}
