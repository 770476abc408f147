package test

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/vertexinvest/checkout/internal/domain/errors"
	"github.com/vertexinvest/checkout/internal/domain/model"
)

// OrderRepositoryStub keeps orders in memory and honours the compare-and-swap contract.
type OrderRepositoryStub struct {
	mu     sync.Mutex
	orders map[string]model.Order
	clock  time.Time

	CreateErr error
	GetErr    error
	ListErr   error
	UpdateErr error
	AttachErr error

	// BeforeWrite runs inside UpdateStatus and AttachProof before the status check, without the lock held.
	BeforeWrite func(id string)
}

// NewOrderRepositoryStub constructs an empty in-memory repository.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{orders: make(map[string]model.Order), clock: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

// Put stores order as is, overwriting any previous value.
func (s *OrderRepositoryStub) Put(order model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.ID] = order
}

// Snapshot returns the stored order without going through GetByID hooks.
func (s *OrderRepositoryStub) Snapshot(id string) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	return o, ok
}

func (s *OrderRepositoryStub) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *OrderRepositoryStub) Create(_ context.Context, order *model.Order) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.orders[order.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	now := s.tick()
	order.CreatedAt = now
	order.UpdatedAt = now
	s.orders[order.ID] = *order
	return nil
}

func (s *OrderRepositoryStub) GetByID(_ context.Context, id string) (*model.Order, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &o, nil
}

func (s *OrderRepositoryStub) List(_ context.Context, limit, offset int) ([]model.Order, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		all = append(all, o)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	if offset >= len(all) {
		return []model.Order{}, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (s *OrderRepositoryStub) UpdateStatus(_ context.Context, id string, from, to model.OrderStatus, notes *string) (*model.Order, error) {
	if s.UpdateErr != nil {
		return nil, s.UpdateErr
	}
	if s.BeforeWrite != nil {
		s.BeforeWrite(id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if o.Status != from {
		return nil, domainErrors.ErrStatusConflict
	}
	o.Status = to
	if notes != nil {
		n := *notes
		o.AdminNotes = &n
	}
	o.UpdatedAt = s.tick()
	s.orders[id] = o
	return &o, nil
}

func (s *OrderRepositoryStub) AttachProof(_ context.Context, id, proofURL string) (*model.Order, error) {
	if s.AttachErr != nil {
		return nil, s.AttachErr
	}
	if s.BeforeWrite != nil {
		s.BeforeWrite(id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if o.Status != model.OrderStatusPending || o.PaymentProofURL != nil {
		return nil, domainErrors.ErrStatusConflict
	}
	url := proofURL
	o.PaymentProofURL = &url
	o.Status = model.OrderStatusPaymentSent
	o.UpdatedAt = s.tick()
	s.orders[id] = o
	return &o, nil
}
