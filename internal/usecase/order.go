package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	domainErrors "github.com/vertexinvest/checkout/internal/domain/errors"
	"github.com/vertexinvest/checkout/internal/domain/model"
	"github.com/vertexinvest/checkout/internal/domain/repository"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// TransitionObserver is notified after every applied status change.
type TransitionObserver interface {
	ObserveTransition(from, to model.OrderStatus)
}

// CreateOrderInput is the customer intake submission.
type CreateOrderInput struct {
	PlanID        string
	Customer      model.CustomerData
	PaymentMethod model.PaymentMethod
	IsPremium     bool
}

// OrderUseCase owns the order lifecycle. It is the only writer of order status.
type OrderUseCase struct {
	orders   repository.OrderRepository
	plans    repository.PlanCatalog
	observer TransitionObserver
	logger   *slog.Logger
	newID    func() string
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, plans repository.PlanCatalog, observer TransitionObserver, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{
		orders:   orders,
		plans:    plans,
		observer: observer,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

// Create validates the intake, snapshots the plan price and stores a PENDING order.
func (u *OrderUseCase) Create(ctx context.Context, in CreateOrderInput) (*model.OrderWithPlan, error) {
	if in.PaymentMethod == "" {
		in.PaymentMethod = model.PaymentMethodPix
	}
	if !in.PaymentMethod.Valid() {
		return nil, domainErrors.Validation("payment_method", "must be pix or credit_card")
	}

	customer := NormalizeCustomer(in.Customer)
	if err := ValidateCustomer(customer); err != nil {
		return nil, err
	}

	plan, err := u.plans.Get(in.PlanID)
	if err != nil {
		return nil, fmt.Errorf("plan %q: %w", in.PlanID, err)
	}

	amount, ok := plan.AmountFor(in.IsPremium)
	if !ok {
		return nil, domainErrors.Validation("is_premium", "plan has no premium tier")
	}

	order := &model.Order{
		ID:            u.newID(),
		PlanID:        plan.ID,
		Customer:      customer,
		PaymentMethod: in.PaymentMethod,
		IsPremium:     in.IsPremium,
		Amount:        amount,
		Status:        model.OrderStatusPending,
	}
	if err := u.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	u.logger.Info("order created",
		slog.String("order_id", order.ID),
		slog.String("plan_id", order.PlanID),
		slog.Int64("amount", order.Amount),
		slog.Bool("premium", order.IsPremium),
		slog.String("payment_method", string(order.PaymentMethod)),
	)

	return &model.OrderWithPlan{Order: *order, Plan: plan}, nil
}

// Get returns the order joined with its plan.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.OrderWithPlan, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.OrderWithPlan{Order: *order, Plan: u.planFor(order.PlanID)}, nil
}

// List returns a newest-first page of orders with their plans.
func (u *OrderUseCase) List(ctx context.Context, limit, offset int) ([]model.OrderWithPlan, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	orders, err := u.orders.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	result := make([]model.OrderWithPlan, 0, len(orders))
	for _, o := range orders {
		result = append(result, model.OrderWithPlan{Order: o, Plan: u.planFor(o.PlanID)})
	}
	return result, nil
}

// Transition applies an admin status change. notes replace the stored admin notes when non-nil.
func (u *OrderUseCase) Transition(ctx context.Context, id string, to model.OrderStatus, notes *string, actor string) (*model.Order, error) {
	if !to.Valid() {
		return nil, domainErrors.Validation("status", fmt.Sprintf("unknown status %q", to))
	}

	current, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransition(to, model.TriggerAdmin) {
		return nil, &domainErrors.InvalidTransitionError{OrderID: id, From: string(current.Status), To: string(to)}
	}

	updated, err := u.orders.UpdateStatus(ctx, id, current.Status, to, notes)
	if err != nil {
		if errors.Is(err, domainErrors.ErrStatusConflict) {
			return nil, u.lostRace(ctx, id, to)
		}
		return nil, err
	}

	u.applied(updated.ID, current.Status, to, model.TriggerAdmin, actor)
	return updated, nil
}

// MarkPaymentSent records the proof URL and moves PENDING to PAYMENT_SENT.
func (u *OrderUseCase) MarkPaymentSent(ctx context.Context, id, proofURL string) (*model.Order, error) {
	updated, err := u.orders.AttachProof(ctx, id, proofURL)
	if err != nil {
		if errors.Is(err, domainErrors.ErrStatusConflict) {
			return nil, u.lostRace(ctx, id, model.OrderStatusPaymentSent)
		}
		return nil, err
	}

	u.applied(updated.ID, model.OrderStatusPending, model.OrderStatusPaymentSent, model.TriggerProofUpload, "customer")
	return updated, nil
}

// lostRace reports the status that won a concurrent compare-and-swap.
func (u *OrderUseCase) lostRace(ctx context.Context, id string, to model.OrderStatus) error {
	actual, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	u.logger.Warn("order transition lost to concurrent update",
		slog.String("order_id", id),
		slog.String("current_status", string(actual.Status)),
		slog.String("requested_status", string(to)),
	)
	return &domainErrors.InvalidTransitionError{OrderID: id, From: string(actual.Status), To: string(to)}
}

func (u *OrderUseCase) applied(id string, from, to model.OrderStatus, trigger model.Trigger, actor string) {
	if u.observer != nil {
		u.observer.ObserveTransition(from, to)
	}
	u.logger.Info("order status changed",
		slog.String("order_id", id),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
		slog.String("trigger", string(trigger)),
		slog.String("actor", actor),
	)
}

func (u *OrderUseCase) planFor(id string) *model.Plan {
	plan, err := u.plans.Get(id)
	if err != nil {
		return nil
	}
	return plan
}
