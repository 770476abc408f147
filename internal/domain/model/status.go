package model

// Trigger names who may drive a transition.
type Trigger string

const (
	TriggerProofUpload Trigger = "proof_upload"
	TriggerAdmin       Trigger = "admin"
)

// StatusInfo is the single source for status validity and presentation.
type StatusInfo struct {
	Status   OrderStatus
	Label    string
	Color    string
	Terminal bool
}

type transition struct {
	from, to OrderStatus
}

var statusTable = []StatusInfo{
	{Status: OrderStatusPending, Label: "Aguardando", Color: "#f59e0b"},
	{Status: OrderStatusPaymentSent, Label: "Comprovante Enviado", Color: "#3b82f6"},
	{Status: OrderStatusConfirmed, Label: "Confirmado", Color: "#10b981"},
	{Status: OrderStatusActive, Label: "Ativo", Color: "#059669", Terminal: true},
	{Status: OrderStatusCancelled, Label: "Cancelado", Color: "#ef4444", Terminal: true},
}

var transitions = map[transition]Trigger{
	{OrderStatusPending, OrderStatusPaymentSent}:   TriggerProofUpload,
	{OrderStatusPaymentSent, OrderStatusConfirmed}: TriggerAdmin,
	{OrderStatusPaymentSent, OrderStatusCancelled}: TriggerAdmin,
	{OrderStatusConfirmed, OrderStatusActive}:      TriggerAdmin,
	{OrderStatusPending, OrderStatusCancelled}:     TriggerAdmin,
	{OrderStatusConfirmed, OrderStatusCancelled}:   TriggerAdmin,
}

// Statuses returns presentation metadata in lifecycle order.
func Statuses() []StatusInfo {
	return append([]StatusInfo(nil), statusTable...)
}

// Info returns metadata for s.
func (s OrderStatus) Info() (StatusInfo, bool) {
	for _, info := range statusTable {
		if info.Status == s {
			return info, true
		}
	}
	return StatusInfo{}, false
}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	_, ok := s.Info()
	return ok
}

// Terminal reports whether no transition leaves s.
func (s OrderStatus) Terminal() bool {
	info, ok := s.Info()
	return ok && info.Terminal
}

// CanTransition reports whether trigger may move an order from s to next.
func (s OrderStatus) CanTransition(next OrderStatus, trigger Trigger) bool {
	allowed, ok := transitions[transition{s, next}]
	return ok && allowed == trigger
}

// NextStatuses lists the statuses reachable from s by trigger, in lifecycle order.
func (s OrderStatus) NextStatuses(trigger Trigger) []OrderStatus {
	var next []OrderStatus
	for _, info := range statusTable {
		if s.CanTransition(info.Status, trigger) {
			next = append(next, info.Status)
		}
	}
	return next
}
