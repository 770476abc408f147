package catalog

import (
	"go.uber.org/fx"

	"github.com/vertexinvest/checkout/internal/domain/repository"
)

// Module provides the seeded plan catalog.
var Module = fx.Options(
	fx.Provide(Default),
	fx.Provide(func(c *Catalog) repository.PlanCatalog { return c }),
)
