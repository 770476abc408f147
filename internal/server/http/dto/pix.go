package dto

// PixInfoResponse carries the manual transfer instructions.
type PixInfoResponse struct {
	RecipientName string `json:"recipient_name"`
	Bank          string `json:"bank"`
	PixKey        string `json:"pix_key"`
}

// StatusInfoResponse describes how a status is displayed.
type StatusInfoResponse struct {
	Status   string `json:"status"`
	Label    string `json:"label"`
	Color    string `json:"color"`
	Terminal bool   `json:"terminal"`
	// Next lists the statuses an admin may move an order to from this one.
	Next []string `json:"next"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse answers GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
