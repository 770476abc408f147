package dto

import "time"

// CustomerRequest is the intake form.
type CustomerRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	CPFCNPJ string  `json:"cpf_cnpj"`
	Address *string `json:"address,omitempty"`
}

// CreateOrderRequest is the POST /api/orders payload.
type CreateOrderRequest struct {
	PlanID        string          `json:"plan_id" binding:"required"`
	CustomerData  CustomerRequest `json:"customer_data"`
	PaymentMethod string          `json:"payment_method"`
	IsPremium     bool            `json:"is_premium"`
}

// OrderResponse is the public view of an order. Amount is in cents.
type OrderResponse struct {
	ID              string          `json:"id"`
	PlanID          string          `json:"plan_id"`
	CustomerData    CustomerRequest `json:"customer_data"`
	PaymentMethod   string          `json:"payment_method"`
	IsPremium       bool            `json:"is_premium"`
	Amount          int64           `json:"amount"`
	Status          string          `json:"status"`
	PaymentProofURL *string         `json:"payment_proof_url"`
	AdminNotes      *string         `json:"admin_notes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderWithPlanResponse joins an order with its plan.
type OrderWithPlanResponse struct {
	Order OrderResponse `json:"order"`
	Plan  *PlanResponse `json:"plan"`
}

// OrderStatusResponse answers GET /api/orders/:id/status.
type OrderStatusResponse struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateStatusRequest is the admin status change payload.
type UpdateStatusRequest struct {
	Status     string  `json:"status" binding:"required"`
	AdminNotes *string `json:"admin_notes"`
}
