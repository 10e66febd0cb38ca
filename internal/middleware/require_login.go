package middleware

import (
	"net/http"

	"festa/internal/flash"

	"github.com/labstack/echo/v4"
)

const (
	LoginPath         = "/login"
	loginRequiredText = "Faça login para acessar esta página"
)

// 未ログインなら/loginへ。handlerは呼ばない
func RequireLogin(f *flash.Flasher) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := PrincipalFrom(c); !ok {
				f.Add(c, flash.Info, loginRequiredText)
				return c.Redirect(http.StatusSeeOther, LoginPath)
			}
			return next(c)
		}
	}
}
