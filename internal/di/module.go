package di

import (
	"go.uber.org/fx"

	"github.com/vertexinvest/checkout/internal/adapter/attempts"
	"github.com/vertexinvest/checkout/internal/adapter/proofstore"
	"github.com/vertexinvest/checkout/internal/app"
	"github.com/vertexinvest/checkout/internal/catalog"
	"github.com/vertexinvest/checkout/internal/config"
	"github.com/vertexinvest/checkout/internal/logger"
	"github.com/vertexinvest/checkout/internal/metrics"
	"github.com/vertexinvest/checkout/internal/pkg/auth"
	"github.com/vertexinvest/checkout/internal/server/http/handlers"
	"github.com/vertexinvest/checkout/internal/server/http/router"
	"github.com/vertexinvest/checkout/internal/storage/postgres"
	"github.com/vertexinvest/checkout/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		auth.Module,
		catalog.Module,
		postgres.Module,
		attempts.Module,
		proofstore.Module,
		usecase.Module,
		fx.Provide(
			func(l attempts.Limiter) usecase.AttemptLimiter { return l },
			func(m *metrics.Metrics) usecase.TransitionObserver { return m },
			func(s *postgres.Storage) handlers.HealthChecker { return s },
			func(f *app.CheckoutFacade) handlers.CheckoutFacade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
