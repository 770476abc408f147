package app

import (
	"context"
	"io"

	"github.com/vertexinvest/checkout/internal/config"
	"github.com/vertexinvest/checkout/internal/domain/model"
	"github.com/vertexinvest/checkout/internal/domain/repository"
	"github.com/vertexinvest/checkout/internal/usecase"
)

type CheckoutFacade struct {
	orders *usecase.OrderUseCase
	proofs *usecase.ProofUseCase
	auth   *usecase.AdminAuthUseCase
	plans  repository.PlanCatalog
	pix    model.PixInfo
}

func NewCheckoutFacade(orders *usecase.OrderUseCase, proofs *usecase.ProofUseCase, auth *usecase.AdminAuthUseCase, plans repository.PlanCatalog, cfg *config.Config) *CheckoutFacade {
	return &CheckoutFacade{
		orders: orders,
		proofs: proofs,
		auth:   auth,
		plans:  plans,
		pix: model.PixInfo{
			RecipientName: cfg.PixRecipientName,
			Bank:          cfg.PixBank,
			Key:           cfg.PixKey,
		},
	}
}

func (f *CheckoutFacade) Plans() []model.Plan {
	return f.plans.List()
}

func (f *CheckoutFacade) Plan(id string) (*model.Plan, error) {
	return f.plans.Get(id)
}

func (f *CheckoutFacade) PixInfo() model.PixInfo {
	return f.pix
}

func (f *CheckoutFacade) OrderStatuses() []model.StatusInfo {
	return model.Statuses()
}

func (f *CheckoutFacade) CreateOrder(ctx context.Context, planID string, customer model.CustomerData, method model.PaymentMethod, premium bool) (*model.OrderWithPlan, error) {
	return f.orders.Create(ctx, usecase.CreateOrderInput{
		PlanID:        planID,
		Customer:      customer,
		PaymentMethod: method,
		IsPremium:     premium,
	})
}

func (f *CheckoutFacade) Order(ctx context.Context, id string) (*model.OrderWithPlan, error) {
	return f.orders.Get(ctx, id)
}

func (f *CheckoutFacade) SubmitProof(ctx context.Context, orderID, filename, contentType string, size int64, body io.Reader) (*model.Order, error) {
	return f.proofs.Submit(ctx, orderID, usecase.ProofUpload{
		Filename:    filename,
		ContentType: contentType,
		Size:        size,
		Body:        body,
	})
}

func (f *CheckoutFacade) MaxProofSize() int64 {
	return f.proofs.MaxSize()
}

func (f *CheckoutFacade) Login(ctx context.Context, password, clientKey string) (model.AdminSession, error) {
	return f.auth.Authenticate(ctx, password, clientKey)
}

func (f *CheckoutFacade) VerifyToken(token string) (model.AdminIdentity, error) {
	return f.auth.Verify(token)
}

func (f *CheckoutFacade) ListOrders(ctx context.Context, limit, offset int) ([]model.OrderWithPlan, error) {
	return f.orders.List(ctx, limit, offset)
}

func (f *CheckoutFacade) SetOrderStatus(ctx context.Context, id string, status model.OrderStatus, notes *string, actor string) (*model.Order, error) {
	return f.orders.Transition(ctx, id, status, notes, actor)
}
