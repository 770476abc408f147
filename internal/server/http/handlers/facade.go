package handlers

import (
	"context"
	"io"

	"github.com/vertexinvest/checkout/internal/domain/model"
)

// CatalogFacade exposes static checkout data.
type CatalogFacade interface {
	Plans() []model.Plan
	Plan(id string) (*model.Plan, error)
	PixInfo() model.PixInfo
	OrderStatuses() []model.StatusInfo
}

// CustomerFacade encapsulates the public order operations.
type CustomerFacade interface {
	CreateOrder(ctx context.Context, planID string, customer model.CustomerData, method model.PaymentMethod, premium bool) (*model.OrderWithPlan, error)
	Order(ctx context.Context, id string) (*model.OrderWithPlan, error)
	SubmitProof(ctx context.Context, orderID, filename, contentType string, size int64, body io.Reader) (*model.Order, error)
	MaxProofSize() int64
}

// AdminFacade provides the operations behind the admin panel.
type AdminFacade interface {
	Login(ctx context.Context, password, clientKey string) (model.AdminSession, error)
	VerifyToken(token string) (model.AdminIdentity, error)
	ListOrders(ctx context.Context, limit, offset int) ([]model.OrderWithPlan, error)
	SetOrderStatus(ctx context.Context, id string, status model.OrderStatus, notes *string, actor string) (*model.Order, error)
}

// CheckoutFacade aggregates the full set of operations used across handlers.
type CheckoutFacade interface {
	CatalogFacade
	CustomerFacade
	AdminFacade
}

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
