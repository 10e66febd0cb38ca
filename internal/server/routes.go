package server

import (
	"festa/internal/handler"
	"festa/internal/middleware"

	"github.com/labstack/echo/v4"
)

// 全ルートを登録。/debug_users は登録しない（404）
func RegisterRoutes(e *echo.Echo, d Deps) {
	f := newFlasher(d.Config)
	requireLogin := middleware.RequireLogin(f)

	handler.NewPageHandler(f).RegisterRoutes(e, requireLogin)
	handler.NewAuthHandler(d.Auth, f, d.Metrics, d.Config.CookieSecure).RegisterRoutes(e, requireLogin)
	handler.NewShopHandler(d.Products, d.Cart, f).RegisterRoutes(e, requireLogin)
	handler.NewPartyHandler(d.Parties, f).RegisterRoutes(e, requireLogin)
	handler.NewHealthHandler(d.Ping).RegisterRoutes(e)

	if d.Metrics != nil {
		e.GET("/metrics", d.Metrics.Handler())
	}
}
