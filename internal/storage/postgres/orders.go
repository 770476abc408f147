package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/vertexinvest/checkout/internal/domain/errors"
	"github.com/vertexinvest/checkout/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

const orderColumns = `id, plan_id, customer_data, payment_method, is_premium, amount, status, payment_proof_url, admin_notes, created_at, updated_at`

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	customer, err := json.Marshal(order.Customer)
	if err != nil {
		return fmt.Errorf("encode customer data: %w", err)
	}

	const query = `INSERT INTO orders (id, plan_id, customer_data, payment_method, is_premium, amount, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING created_at, updated_at`
	err = r.storage.pool.QueryRow(ctx, query,
		order.ID, order.PlanID, customer, order.PaymentMethod, order.IsPremium, order.Amount, order.Status,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) List(ctx context.Context, limit, offset int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`
	rows, err := r.storage.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, from, to model.OrderStatus, notes *string) (*model.Order, error) {
	query := `UPDATE orders SET status=$3, admin_notes=COALESCE($4, admin_notes), updated_at=NOW()
              WHERE id=$1 AND status=$2
              RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id, from, to, notes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.missReason(ctx, id)
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) AttachProof(ctx context.Context, id, proofURL string) (*model.Order, error) {
	query := `UPDATE orders SET payment_proof_url=$2, status=$3, updated_at=NOW()
              WHERE id=$1 AND status=$4 AND payment_proof_url IS NULL
              RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id, proofURL, model.OrderStatusPaymentSent, model.OrderStatusPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.missReason(ctx, id)
		}
		return nil, err
	}
	return order, nil
}

// missReason tells a missing order apart from a lost compare-and-swap.
func (r *orderRepository) missReason(ctx context.Context, id string) error {
	const query = `SELECT status FROM orders WHERE id=$1`
	var status model.OrderStatus
	if err := r.storage.pool.QueryRow(ctx, query, id).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	r.storage.logger.Debug("order status compare-and-swap missed",
		slog.String("order_id", id), slog.String("current_status", string(status)))
	return domainErrors.ErrStatusConflict
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o        model.Order
		customer []byte
	)
	err := row.Scan(&o.ID, &o.PlanID, &customer, &o.PaymentMethod, &o.IsPremium, &o.Amount, &o.Status,
		&o.PaymentProofURL, &o.AdminNotes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(customer, &o.Customer); err != nil {
		return nil, fmt.Errorf("decode customer data: %w", err)
	}
	return &o, nil
}
