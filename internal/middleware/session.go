package middleware

import (
	"context"
	"errors"
	"log/slog"

	"festa/internal/domain/model"
	"festa/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	// セッショントークンを入れるクッキー
	SessionCookieName = "festa_session"

	CtxPrincipalKey = "principal" // *model.Principal
)

// クッキーの値からログイン主体を復元する約束（AuthUsecase）
type SessionResolver interface {
	Resolve(ctx context.Context, raw string) (*model.Principal, error)
}

// 全ルートで動かす。復元できなければ匿名のままnextへ
func LoadSession(resolver SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(SessionCookieName)
			if err != nil || ck.Value == "" {
				return next(c)
			}

			p, err := resolver.Resolve(c.Request().Context(), ck.Value)
			if err != nil {
				// DB障害などはログに残す。不正・期限切れは匿名扱いのみ
				if !errors.Is(err, usecase.ErrUnauthorized) {
					slog.WarnContext(c.Request().Context(), "session resolve failed", "err", err)
				}
				return next(c)
			}

			c.Set(CtxPrincipalKey, p)
			return next(c)
		}
	}
}

// contextからログイン主体を取り出す
func PrincipalFrom(c echo.Context) (*model.Principal, bool) {
	p, ok := c.Get(CtxPrincipalKey).(*model.Principal)
	if !ok || p == nil || p.UserID() <= 0 {
		return nil, false
	}
	return p, true
}
