package model

import "time"

// OrderStatus describes the checkout lifecycle. See status.go for the transition table.
type OrderStatus string

const (
	OrderStatusPending     OrderStatus = "PENDING"
	OrderStatusPaymentSent OrderStatus = "PAYMENT_SENT"
	OrderStatusConfirmed   OrderStatus = "CONFIRMED"
	OrderStatusActive      OrderStatus = "ACTIVE"
	OrderStatusCancelled   OrderStatus = "CANCELLED"
)

// PaymentMethod is recorded on the order; no gateway is involved.
type PaymentMethod string

const (
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodPix || m == PaymentMethodCreditCard
}

// CustomerData is the intake form snapshot captured at order creation.
type CustomerData struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	CPFCNPJ string  `json:"cpf_cnpj"`
	Address *string `json:"address,omitempty"`
}

// Order is a single checkout attempt. Amount is in cents and frozen at creation.
type Order struct {
	ID              string
	PlanID          string
	Customer        CustomerData
	PaymentMethod   PaymentMethod
	IsPremium       bool
	Amount          int64
	Status          OrderStatus
	PaymentProofURL *string
	AdminNotes      *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderWithPlan joins an order with the plan it was placed for.
type OrderWithPlan struct {
	Order Order
	Plan  *Plan
}
