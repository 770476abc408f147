package repository

import "github.com/vertexinvest/checkout/internal/domain/model"

// PlanCatalog provides read-only access to subscription plans.
type PlanCatalog interface {
	Get(id string) (*model.Plan, error)
	List() []model.Plan
}
