package test

import (
	"context"
	"io"
	"time"

	domainErrors "github.com/vertexinvest/checkout/internal/domain/errors"
	"github.com/vertexinvest/checkout/internal/domain/model"
)

// SampleOrder returns a pending order placed for the pessoa-fisica plan.
func SampleOrder(id string) model.Order {
	created := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	return model.Order{
		ID:     id,
		PlanID: "pessoa-fisica",
		Customer: model.CustomerData{
			Name:    "Maria Silva",
			Email:   "maria@example.com",
			Phone:   "+55 11 91234-5678",
			CPFCNPJ: "12345678909",
		},
		PaymentMethod: model.PaymentMethodPix,
		Amount:        3500,
		Status:        model.OrderStatusPending,
		CreatedAt:     created,
		UpdatedAt:     created,
	}
}

// SamplePlan returns a plan with a premium tier.
func SamplePlan() model.Plan {
	premium := int64(4500)
	return model.Plan{ID: "pessoa-fisica", Title: "Pessoa Física", Price: 3500, PremiumPrice: &premium, Period: "/mês", Features: []string{"Suporte"}}
}

// ProofCall captures SubmitProof arguments.
type ProofCall struct {
	OrderID     string
	Filename    string
	ContentType string
	Size        int64
	Body        []byte
}

// CheckoutFacadeStub provides controllable behaviour for every HTTP facade.
type CheckoutFacadeStub struct {
	PlansFn     func() []model.Plan
	PlanFn      func(string) (*model.Plan, error)
	Pix         model.PixInfo
	CreateFn    func(context.Context, string, model.CustomerData, model.PaymentMethod, bool) (*model.OrderWithPlan, error)
	OrderFn     func(context.Context, string) (*model.OrderWithPlan, error)
	ProofFn     func(context.Context, ProofCall) (*model.Order, error)
	MaxProof    int64
	LoginFn     func(context.Context, string, string) (model.AdminSession, error)
	VerifyFn    func(string) (model.AdminIdentity, error)
	ListFn      func(context.Context, int, int) ([]model.OrderWithPlan, error)
	SetStatusFn func(ctx context.Context, id string, status model.OrderStatus, notes *string, actor string) (*model.Order, error)
}

func (s CheckoutFacadeStub) Plans() []model.Plan {
	if s.PlansFn != nil {
		return s.PlansFn()
	}
	return []model.Plan{SamplePlan()}
}

func (s CheckoutFacadeStub) Plan(id string) (*model.Plan, error) {
	if s.PlanFn != nil {
		return s.PlanFn(id)
	}
	plan := SamplePlan()
	if id != plan.ID {
		return nil, domainErrors.ErrNotFound
	}
	return &plan, nil
}

func (s CheckoutFacadeStub) PixInfo() model.PixInfo {
	return s.Pix
}

func (s CheckoutFacadeStub) OrderStatuses() []model.StatusInfo {
	return model.Statuses()
}

func (s CheckoutFacadeStub) CreateOrder(ctx context.Context, planID string, customer model.CustomerData, method model.PaymentMethod, premium bool) (*model.OrderWithPlan, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, planID, customer, method, premium)
	}
	plan := SamplePlan()
	order := SampleOrder("order-1")
	order.Customer = customer
	return &model.OrderWithPlan{Order: order, Plan: &plan}, nil
}

func (s CheckoutFacadeStub) Order(ctx context.Context, id string) (*model.OrderWithPlan, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	plan := SamplePlan()
	return &model.OrderWithPlan{Order: SampleOrder(id), Plan: &plan}, nil
}

func (s CheckoutFacadeStub) SubmitProof(ctx context.Context, orderID, filename, contentType string, size int64, body io.Reader) (*model.Order, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	call := ProofCall{OrderID: orderID, Filename: filename, ContentType: contentType, Size: size, Body: data}
	if s.ProofFn != nil {
		return s.ProofFn(ctx, call)
	}
	order := SampleOrder(orderID)
	order.Status = model.OrderStatusPaymentSent
	return &order, nil
}

func (s CheckoutFacadeStub) MaxProofSize() int64 {
	if s.MaxProof > 0 {
		return s.MaxProof
	}
	return 5 << 20
}

func (s CheckoutFacadeStub) Login(ctx context.Context, password, clientKey string) (model.AdminSession, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, password, clientKey)
	}
	return model.AdminSession{Token: "token-admin", ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}, nil
}

func (s CheckoutFacadeStub) VerifyToken(token string) (model.AdminIdentity, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(token)
	}
	return model.AdminIdentity{Subject: "admin"}, nil
}

func (s CheckoutFacadeStub) ListOrders(ctx context.Context, limit, offset int) ([]model.OrderWithPlan, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, limit, offset)
	}
	plan := SamplePlan()
	return []model.OrderWithPlan{{Order: SampleOrder("order-1"), Plan: &plan}}, nil
}

func (s CheckoutFacadeStub) SetOrderStatus(ctx context.Context, id string, status model.OrderStatus, notes *string, actor string) (*model.Order, error) {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, id, status, notes, actor)
	}
	order := SampleOrder(id)
	order.Status = status
	order.AdminNotes = notes
	return &order, nil
}
