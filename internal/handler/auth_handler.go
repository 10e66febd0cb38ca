package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"festa/internal/flash"
	"festa/internal/metrics"
	"festa/internal/middleware"
	"festa/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	msgBadCredentials = "Nome de usuário ou senha incorretos"
	msgUserExists     = "Usuário já existe"
)

type AuthHandler struct {
	base
	uc           *usecase.AuthUsecase
	metrics      *metrics.Metrics
	cookieSecure bool
}

// DIコンストラクタ
func NewAuthHandler(uc *usecase.AuthUsecase, f *flash.Flasher, m *metrics.Metrics, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		base:         base{flash: f},
		uc:           uc,
		metrics:      m,
		cookieSecure: cookieSecure,
	}
}

// /login, /register, /logout を登録
func (h *AuthHandler) RegisterRoutes(e *echo.Echo, requireLogin echo.MiddlewareFunc) {
	e.GET("/login", h.loginForm)
	e.POST("/login", h.login)
	e.GET("/register", h.registerForm)
	e.POST("/register", h.register)
	e.POST("/logout", h.logout, requireLogin)
}

func (h *AuthHandler) loginForm(c echo.Context) error {
	return h.render(c, "login.html", "Entrar", nil)
}

func (h *AuthHandler) registerForm(c echo.Context) error {
	return h.render(c, "register.html", "Cadastro", nil)
}

// POST /login（form: name, password）
func (h *AuthHandler) login(c echo.Context) error {
	res, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Name:     c.FormValue("name"),
		Password: c.FormValue("password"),
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			h.metrics.LoginAttempt("failure")
			return h.redirectWith(c, flash.Error, msgBadCredentials, "/login")
		}
		h.metrics.LoginAttempt("error")
		return h.fail(c, err, "/login")
	}

	h.metrics.LoginAttempt("success")
	h.dropPreviousSession(c, res.SessionID)
	h.setSessionCookie(c, res.Token, res.ExpiresAt)
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// POST /register。成功したらそのままログイン
func (h *AuthHandler) register(c echo.Context) error {
	res, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     c.FormValue("name"),
		Password: c.FormValue("password"),
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrConflict):
			h.metrics.RegistrationAttempt("conflict")
			return h.redirectWith(c, flash.Error, msgUserExists, "/register")
		case errors.Is(err, usecase.ErrValidation):
			h.metrics.RegistrationAttempt("invalid")
		default:
			h.metrics.RegistrationAttempt("error")
		}
		return h.fail(c, err, "/register")
	}

	h.metrics.RegistrationAttempt("success")
	h.dropPreviousSession(c, res.SessionID)
	h.setSessionCookie(c, res.Token, res.ExpiresAt)
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// POST /logout
func (h *AuthHandler) logout(c echo.Context) error {
	p := principal(c)
	if err := h.uc.Logout(c.Request().Context(), p.SessionID); err != nil {
		return h.fail(c, err, "/dashboard")
	}
	h.clearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/")
}

// ログイン中に再ログインした場合、古いセッションとそのカートを消す
func (h *AuthHandler) dropPreviousSession(c echo.Context, current string) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok || p.SessionID == current {
		return
	}
	if err := h.uc.Logout(c.Request().Context(), p.SessionID); err != nil {
		slog.WarnContext(c.Request().Context(), "previous session not removed", "err", err)
	}
}

// セッショントークンをCookieにセット。
func (h *AuthHandler) setSessionCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expiresAt,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
