// Package catalog serves the fixed set of subscription plans.
package catalog

import (
	"fmt"

	domainErrors "github.com/vertexinvest/checkout/internal/domain/errors"
	"github.com/vertexinvest/checkout/internal/domain/model"
)

// Catalog is an immutable, in-memory plan lookup. It is safe for concurrent use.
type Catalog struct {
	order []string
	plans map[string]model.Plan
}

// New builds a catalog from plans, rejecting duplicates and premium tiers cheaper than the base price.
func New(plans []model.Plan) (*Catalog, error) {
	c := &Catalog{plans: make(map[string]model.Plan, len(plans))}
	for _, p := range plans {
		if p.ID == "" {
			return nil, fmt.Errorf("plan without id")
		}
		if _, dup := c.plans[p.ID]; dup {
			return nil, fmt.Errorf("duplicate plan %q", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("plan %q: negative price", p.ID)
		}
		if p.PremiumPrice != nil && *p.PremiumPrice < p.Price {
			return nil, fmt.Errorf("plan %q: premium price below base price", p.ID)
		}
		c.order = append(c.order, p.ID)
		c.plans[p.ID] = p.Clone()
	}
	return c, nil
}

// Default returns the catalog seeded with the standard Vertex plans.
func Default() *Catalog {
	c, err := New(DefaultPlans())
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns a copy of the plan with id or ErrNotFound.
func (c *Catalog) Get(id string) (*model.Plan, error) {
	p, ok := c.plans[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	clone := p.Clone()
	return &clone, nil
}

// List returns copies of every plan in seed order.
func (c *Catalog) List() []model.Plan {
	out := make([]model.Plan, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.plans[id].Clone())
	}
	return out
}
