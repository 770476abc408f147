package attempts

import (
	"context"
	"sync"
	"time"
)

type window struct {
	attempts int
	expires  time.Time
}

// MemoryLimiter keeps counters in process. Used when no Redis is configured.
type MemoryLimiter struct {
	opts Options
	now  func() time.Time

	mu        sync.Mutex
	windows   map[string]window
	nextSweep time.Time
}

// NewMemoryLimiter builds an in-process limiter.
func NewMemoryLimiter(opts Options) *MemoryLimiter {
	return &MemoryLimiter{opts: opts.normalized(), now: time.Now, windows: make(map[string]window)}
}

func (l *MemoryLimiter) Attempt(_ context.Context, key string) (time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	w, ok := l.windows[key]
	if !ok || !now.Before(w.expires) {
		w = window{expires: now.Add(l.opts.Lockout)}
	}
	w.attempts++
	l.windows[key] = w

	if w.attempts <= l.opts.MaxAttempts {
		return 0, nil
	}
	return w.expires.Sub(now), nil
}

func (l *MemoryLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.windows, key)
	return nil
}

// sweep drops expired windows at most once per lockout period. Callers hold mu.
func (l *MemoryLimiter) sweep(now time.Time) {
	if now.Before(l.nextSweep) {
		return
	}
	for key, w := range l.windows {
		if !now.Before(w.expires) {
			delete(l.windows, key)
		}
	}
	l.nextSweep = now.Add(l.opts.Lockout)
}
