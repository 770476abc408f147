package handlers

import (
	"github.com/vertexinvest/checkout/internal/domain/model"
	"github.com/vertexinvest/checkout/internal/server/http/dto"
)

func toPlanResponse(p model.Plan) dto.PlanResponse {
	return dto.PlanResponse{
		ID:              p.ID,
		Title:           p.Title,
		Price:           p.Price,
		PremiumPrice:    p.PremiumPrice,
		PremiumText:     p.PremiumText,
		Period:          p.Period,
		Commission:      p.Commission,
		Subtitle:        p.Subtitle,
		Features:        p.Features,
		PremiumFeatures: p.PremiumFeatures,
		WhatsAppMessage: p.WhatsAppMessage,
	}
}

func toOrderResponse(o model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:     o.ID,
		PlanID: o.PlanID,
		CustomerData: dto.CustomerRequest{
			Name:    o.Customer.Name,
			Email:   o.Customer.Email,
			Phone:   o.Customer.Phone,
			CPFCNPJ: o.Customer.CPFCNPJ,
			Address: o.Customer.Address,
		},
		PaymentMethod:   string(o.PaymentMethod),
		IsPremium:       o.IsPremium,
		Amount:          o.Amount,
		Status:          string(o.Status),
		PaymentProofURL: o.PaymentProofURL,
		AdminNotes:      o.AdminNotes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toOrderWithPlanResponse(o model.OrderWithPlan) dto.OrderWithPlanResponse {
	resp := dto.OrderWithPlanResponse{Order: toOrderResponse(o.Order)}
	if o.Plan != nil {
		plan := toPlanResponse(*o.Plan)
		resp.Plan = &plan
	}
	return resp
}

func toCustomerData(req dto.CustomerRequest) model.CustomerData {
	return model.CustomerData{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		CPFCNPJ: req.CPFCNPJ,
		Address: req.Address,
	}
}
