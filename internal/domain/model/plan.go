package model

// Plan is a subscription offer. Prices are in cents.
type Plan struct {
	ID              string
	Title           string
	Price           int64
	PremiumPrice    *int64
	PremiumText     *string
	Period          string
	Commission      string
	Subtitle        *string
	Features        []string
	PremiumFeatures []string
	WhatsAppMessage string
}

// AmountFor returns the price charged for the chosen tier.
// ok is false when premium is requested on a plan without a premium price.
func (p Plan) AmountFor(premium bool) (amount int64, ok bool) {
	if !premium {
		return p.Price, true
	}
	if p.PremiumPrice == nil {
		return 0, false
	}
	return *p.PremiumPrice, true
}

// Clone returns a deep copy so callers cannot alter catalog entries.
func (p Plan) Clone() Plan {
	out := p
	out.Features = append([]string(nil), p.Features...)
	if p.PremiumFeatures != nil {
		out.PremiumFeatures = append([]string(nil), p.PremiumFeatures...)
	}
	if p.PremiumPrice != nil {
		v := *p.PremiumPrice
		out.PremiumPrice = &v
	}
	if p.PremiumText != nil {
		v := *p.PremiumText
		out.PremiumText = &v
	}
	if p.Subtitle != nil {
		v := *p.Subtitle
		out.Subtitle = &v
	}
	return out
}

// PixInfo holds the static bank transfer instructions shown to customers.
type PixInfo struct {
	RecipientName string
	Bank          string
	Key           string
}
