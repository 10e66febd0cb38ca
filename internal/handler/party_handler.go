package handler

import (
	"festa/internal/flash"
	"festa/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	msgPartyCreated = "Festa cadastrada com sucesso!"
	msgPartyRemoved = "Festa removida com sucesso!"
)

// /festas, /festa/*
type PartyHandler struct {
	base
	uc *usecase.PartyUsecase
}

// DI
func NewPartyHandler(uc *usecase.PartyUsecase, f *flash.Flasher) *PartyHandler {
	return &PartyHandler{base: base{flash: f}, uc: uc}
}

func (h *PartyHandler) RegisterRoutes(e *echo.Echo, requireLogin echo.MiddlewareFunc) {
	e.GET("/festas", h.list, requireLogin)
	e.GET("/festa/nova", h.form, requireLogin)
	e.POST("/festa/nova", h.create, requireLogin)
	e.POST("/festa/remover/:id", h.remove, requireLogin)
}

// ログインユーザーのfestaだけ
func (h *PartyHandler) list(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context(), principal(c).UserID())
	if err != nil {
		return h.fail(c, err, "/dashboard")
	}
	return h.render(c, "festas.html", "Festas", list)
}

func (h *PartyHandler) form(c echo.Context) error {
	return h.render(c, "nova_festa.html", "Nova festa", nil)
}

// POST /festa/nova（form: nome, data, local）
func (h *PartyHandler) create(c echo.Context) error {
	_, err := h.uc.Create(c.Request().Context(), principal(c).UserID(), usecase.CreatePartyInput{
		Name:     c.FormValue("nome"),
		Date:     c.FormValue("data"),
		Location: c.FormValue("local"),
	})
	if err != nil {
		return h.fail(c, err, "/festa/nova")
	}
	return h.redirectWith(c, flash.Success, msgPartyCreated, "/festas")
}

// 他人のfestaでも成功メッセージ（何も消えない）
func (h *PartyHandler) remove(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Remove(c.Request().Context(), principal(c).UserID(), id); err != nil {
		return h.fail(c, err, "/festas")
	}
	return h.redirectWith(c, flash.Success, msgPartyRemoved, "/festas")
}
