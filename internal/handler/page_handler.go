package handler

import (
	"net/http"

	"festa/internal/flash"

	"github.com/labstack/echo/v4"
)

// 静的なページ（/, /base, /dashboard）
type PageHandler struct {
	base
}

func NewPageHandler(f *flash.Flasher) *PageHandler {
	return &PageHandler{base: base{flash: f}}
}

func (h *PageHandler) RegisterRoutes(e *echo.Echo, requireLogin echo.MiddlewareFunc) {
	e.GET("/", h.index)
	e.GET("/base", h.baseRedirect)
	e.GET("/dashboard", h.dashboard, requireLogin)
}

func (h *PageHandler) index(c echo.Context) error {
	return h.render(c, "index.html", "Início", nil)
}

func (h *PageHandler) baseRedirect(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/")
}

func (h *PageHandler) dashboard(c echo.Context) error {
	return h.render(c, "dash.html", "Painel", nil)
}
