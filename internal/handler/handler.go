package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"festa/internal/domain/model"
	"festa/internal/flash"
	"festa/internal/middleware"
	"festa/internal/usecase"
	"festa/internal/validator"
	"festa/internal/view"

	"github.com/labstack/echo/v4"
)

const (
	msgLoginRequired = "Faça login para acessar esta página"
	msgBlankFields   = "Preencha todos os campos"
	msgTooLong       = "Campo muito longo"
	msgInternal      = "Erro interno, tente novamente"
)

// 各handler共通（描画・フラッシュ・エラー変換）
type base struct {
	flash *flash.Flasher
}

// layoutにログインユーザーとフラッシュを載せて描画
func (b base) render(c echo.Context, name string, title string, data any) error {
	var user *model.User
	if p, ok := middleware.PrincipalFrom(c); ok {
		user = p.User
	}
	return c.Render(http.StatusOK, name, view.Page{
		Title:   title,
		User:    user,
		Flashes: b.flash.Pop(c),
		Data:    data,
	})
}

func (b base) redirectWith(c echo.Context, cat flash.Category, text string, to string) error {
	b.flash.Add(c, cat, text)
	return c.Redirect(http.StatusSeeOther, to)
}

// usecaseのエラーをフラッシュ+リダイレクトに変換
func (b base) fail(c echo.Context, err error, to string) error {
	switch {
	case errors.Is(err, validator.ErrTooLong):
		return b.redirectWith(c, flash.Error, msgTooLong, to)
	case errors.Is(err, usecase.ErrValidation):
		return b.redirectWith(c, flash.Error, msgBlankFields, to)
	case errors.Is(err, usecase.ErrUnauthorized):
		return b.redirectWith(c, flash.Info, msgLoginRequired, middleware.LoginPath)
	default:
		slog.ErrorContext(c.Request().Context(), "request failed",
			"path", c.Path(),
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"err", err,
		)
		return b.redirectWith(c, flash.Error, msgInternal, to)
	}
}

// RequireLoginの後ろでだけ使う
func principal(c echo.Context) *model.Principal {
	p, _ := middleware.PrincipalFrom(c)
	return p
}

// :id は正の整数だけ。それ以外は404
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.ErrNotFound
	}
	return id, nil
}
