package router

import (
	"fmt"
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/vertexinvest/checkout/internal/config"
	"github.com/vertexinvest/checkout/internal/metrics"
	"github.com/vertexinvest/checkout/internal/server/http/handlers"
	"github.com/vertexinvest/checkout/internal/server/http/middleware"
)

// Params collects router dependencies.
type Params struct {
	fx.In

	Facade  handlers.CheckoutFacade
	Health  handlers.HealthChecker
	Metrics *metrics.Metrics
	Config  *config.Config
	Logger  *slog.Logger
}

// Setup configures gin router with handlers and middleware.
// Client addresses come from X-Forwarded-For only when the peer is a configured trusted proxy.
func Setup(p Params) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	bodyLimit := p.Config.MaxProofSize + (1 << 20)
	engine.MaxMultipartMemory = bodyLimit
	if err := engine.SetTrustedProxies(p.Config.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.Metrics(p.Metrics))
	engine.Use(middleware.CORS(p.Config.CORSOrigins))
	engine.Use(middleware.DecompressRequest(bodyLimit))
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics", p.Config.UploadURLPrefix})))

	catalogHandler := handlers.NewCatalogHandler(p.Facade)
	orderHandler := handlers.NewOrderHandler(p.Facade)
	authHandler := handlers.NewAuthHandler(p.Facade)
	adminHandler := handlers.NewAdminHandler(p.Facade)
	healthHandler := handlers.NewHealthHandler(p.Health)

	api := engine.Group("/api")
	api.GET("/plans", catalogHandler.Plans)
	api.GET("/plans/:id", catalogHandler.Plan)
	api.GET("/pix-info", catalogHandler.PixInfo)
	api.GET("/order-statuses", catalogHandler.OrderStatuses)

	orders := api.Group("/orders")
	orders.POST("", orderHandler.Create)
	orders.GET("/:id", orderHandler.Get)
	orders.GET("/:id/status", orderHandler.Status)
	orders.POST("/:id/payment-proof", orderHandler.UploadProof)

	admin := api.Group("/admin")
	admin.POST("/auth", authHandler.Login)

	adminAuth := admin.Group("")
	adminAuth.Use(middleware.AdminRequired(p.Facade))
	adminAuth.GET("/orders", adminHandler.ListOrders)
	adminAuth.PUT("/orders/:id/status", adminHandler.SetStatus)

	engine.GET("/health", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	if p.Config.ProofStorage == config.ProofStorageLocal {
		engine.Static(p.Config.UploadURLPrefix, p.Config.UploadDir)
	}

	return engine, nil
}
