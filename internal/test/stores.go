package test

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/vertexinvest/checkout/internal/domain/model"
)

// ProofStoreStub records saved proofs in memory.
type ProofStoreStub struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Types   map[string]string
	Deleted []string

	SaveFn   func(ctx context.Context, name, contentType string, body io.Reader) (string, error)
	DeleteFn func(ctx context.Context, name string) error
}

// NewProofStoreStub constructs an empty store.
func NewProofStoreStub() *ProofStoreStub {
	return &ProofStoreStub{Objects: map[string][]byte{}, Types: map[string]string{}}
}

func (s *ProofStoreStub) Save(ctx context.Context, name, contentType string, body io.Reader) (string, error) {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, name, contentType, body)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Objects[name] = data
	s.Types[name] = contentType
	return "/uploads/" + name, nil
}

func (s *ProofStoreStub) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	s.Deleted = append(s.Deleted, name)
	delete(s.Objects, name)
	s.mu.Unlock()
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, name)
	}
	return nil
}

// Count returns how many proofs are currently stored.
func (s *ProofStoreStub) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Objects)
}

// LimiterStub is a programmable attempt limiter.
type LimiterStub struct {
	mu       sync.Mutex
	Attempts map[string]int
	Resets   int

	RetryAfter time.Duration
	AttemptErr error
	ResetErr   error
}

func (l *LimiterStub) Attempt(_ context.Context, key string) (time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.AttemptErr != nil {
		return 0, l.AttemptErr
	}
	if l.Attempts == nil {
		l.Attempts = map[string]int{}
	}
	l.Attempts[key]++
	return l.RetryAfter, nil
}

func (l *LimiterStub) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Resets++
	delete(l.Attempts, key)
	return l.ResetErr
}

// Transition is one observed status change.
type Transition struct {
	From, To model.OrderStatus
}

// ObserverStub records applied transitions.
type ObserverStub struct {
	mu          sync.Mutex
	Transitions []Transition
}

func (o *ObserverStub) ObserveTransition(from, to model.OrderStatus) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Transitions = append(o.Transitions, Transition{From: from, To: to})
}

// Recorded returns a copy of the observed transitions.
func (o *ObserverStub) Recorded() []Transition {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Transition(nil), o.Transitions...)
}

// HealthCheckerStub reports a fixed health result.
type HealthCheckerStub struct {
	Err error
}

func (h HealthCheckerStub) HealthCheck(context.Context) error {
	return h.Err
}
