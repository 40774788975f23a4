// Package router registers the register API routes.
package router

import (
	"pos/config"
	"pos/internal/delivery/api/middleware"
	"pos/internal/delivery/api/router/handler"
	"pos/internal/delivery/api/ws"
	"pos/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler  *handler.SessionHandler
	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	ReportHandler   *handler.ReportHandler
	SettingsHandler *handler.SettingsHandler
	BackupHandler   *handler.BackupHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Hub             *ws.Hub
	Metrics         *metrics.Metrics
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	e.GET("/health", handler.HealthCheck)

	if cfg := p.Config.Metrics; cfg == nil || cfg.Enabled {
		path := "/metrics"
		if cfg != nil && cfg.Path != "" {
			path = cfg.Path
		}
		e.GET(path, echo.WrapHandler(p.Metrics.Handler()))
	}

	e.GET("/ws", p.Hub.Handle, p.AuthMiddleware.Authenticate)

	apiV1 := e.Group("/api/v1")
	apiV1.POST("/auth/login", p.SessionHandler.Login)

	// Everything below requires a cashier token when auth is enabled
	secured := apiV1.Group("", p.AuthMiddleware.Authenticate)

	catalogGroup := secured.Group("/catalog")
	{
		catalogGroup.GET("", p.CatalogHandler.Browse)
		catalogGroup.GET("/items", p.CatalogHandler.ListItems)
		catalogGroup.POST("/items", p.CatalogHandler.UpsertItem)
		catalogGroup.GET("/items/:id", p.CatalogHandler.GetItem)
		catalogGroup.DELETE("/items/:id", p.CatalogHandler.DeleteItem)
	}

	cartGroup := secured.Group("/cart")
	{
		cartGroup.GET("", p.CartHandler.GetCart)
		cartGroup.DELETE("", p.CartHandler.ClearCart)
		cartGroup.POST("/items", p.CartHandler.AddItem)
		cartGroup.PATCH("/items/:id", p.CartHandler.AdjustQuantity)
	}

	checkoutGroup := secured.Group("/checkout")
	{
		checkoutGroup.GET("", p.CheckoutHandler.Quote)
		checkoutGroup.POST("/method", p.CheckoutHandler.SelectMethod)
		checkoutGroup.POST("/received", p.CheckoutHandler.SetAmountReceived)
		checkoutGroup.POST("/confirm", p.CheckoutHandler.Confirm)
		checkoutGroup.POST("/cancel", p.CheckoutHandler.Cancel)
	}

	ordersGroup := secured.Group("/orders")
	{
		ordersGroup.GET("", p.OrderHandler.ListOrders)
		ordersGroup.GET("/:orderNumber", p.OrderHandler.GetOrder)
		ordersGroup.DELETE("/:orderNumber", p.OrderHandler.DeleteOrder)
		ordersGroup.GET("/:orderNumber/qr", p.OrderHandler.ReceiptQR)
	}

	secured.GET("/dashboard", p.ReportHandler.Dashboard)

	secured.GET("/settings", p.SettingsHandler.GetSettings)
	secured.PUT("/settings", p.SettingsHandler.UpdateSettings)

	secured.GET("/backup", p.BackupHandler.Export)
	secured.POST("/backup/restore", p.BackupHandler.Restore)
	secured.GET("/backups", p.BackupHandler.ListArchives)
	secured.POST("/backups", p.BackupHandler.Archive)
	secured.POST("/backups/:name/restore", p.BackupHandler.RestoreArchive)
}

// Module provides the handlers and middleware the router needs
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		handler.NewSessionHandler,
		handler.NewCatalogHandler,
		handler.NewCartHandler,
		handler.NewCheckoutHandler,
		handler.NewOrderHandler,
		handler.NewReportHandler,
		handler.NewSettingsHandler,
		handler.NewBackupHandler,
		middleware.NewAuthMiddleware,
	),
)
