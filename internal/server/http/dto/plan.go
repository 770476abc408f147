package dto

// PlanResponse is a catalog entry. Prices are in cents.
type PlanResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Price           int64    `json:"price"`
	PremiumPrice    *int64   `json:"premium_price,omitempty"`
	PremiumText     *string  `json:"premium_text,omitempty"`
	Period          string   `json:"period"`
	Commission      string   `json:"commission"`
	Subtitle        *string  `json:"subtitle,omitempty"`
	Features        []string `json:"features"`
	PremiumFeatures []string `json:"premium_features,omitempty"`
	WhatsAppMessage string   `json:"whatsapp_message"`
}
