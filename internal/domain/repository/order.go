package repository

import (
	"context"

	"github.com/vertexinvest/checkout/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
//
// UpdateStatus and AttachProof are compare-and-swap writes: they return
// ErrStatusConflict when the stored status differs from the expected one.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, limit, offset int) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id string, from, to model.OrderStatus, notes *string) (*model.Order, error)
	AttachProof(ctx context.Context, id, proofURL string) (*model.Order, error)
}
