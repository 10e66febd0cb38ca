package handler

import (
	"net/http"

	"festa/internal/flash"
	"festa/internal/usecase"

	"github.com/labstack/echo/v4"
)

const msgAddedToCart = "Produto adicionado ao carrinho"

// 商品一覧とカート
type ShopHandler struct {
	base
	products *usecase.ProductUsecase
	cart     *usecase.CartUsecase
}

// DI
func NewShopHandler(products *usecase.ProductUsecase, cart *usecase.CartUsecase, f *flash.Flasher) *ShopHandler {
	return &ShopHandler{base: base{flash: f}, products: products, cart: cart}
}

// すべてログイン必須。
// Groupにするとcatch-allの404までrequireLoginを通るのでルートごとに付ける
func (h *ShopHandler) RegisterRoutes(e *echo.Echo, requireLogin echo.MiddlewareFunc) {
	e.GET("/produtos", h.listProducts, requireLogin)
	e.GET("/add_carrinho/:id", h.addToCart, requireLogin)
	e.GET("/carrinho", h.showCart, requireLogin)
	e.GET("/limpar_carrinho", h.clearCart, requireLogin)
}

func (h *ShopHandler) listProducts(c echo.Context) error {
	list, err := h.products.List(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "/dashboard")
	}
	return h.render(c, "produtos.html", "Produtos", list)
}

// GET /add_carrinho/:id
func (h *ShopHandler) addToCart(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.cart.Add(c.Request().Context(), principal(c).SessionID, id); err != nil {
		return h.fail(c, err, "/produtos")
	}
	return h.redirectWith(c, flash.Success, msgAddedToCart, "/produtos")
}

func (h *ShopHandler) showCart(c echo.Context) error {
	cart, err := h.cart.List(c.Request().Context(), principal(c).SessionID)
	if err != nil {
		return h.fail(c, err, "/produtos")
	}
	return h.render(c, "carrinho.html", "Carrinho", cart)
}

func (h *ShopHandler) clearCart(c echo.Context) error {
	if err := h.cart.Clear(c.Request().Context(), principal(c).SessionID); err != nil {
		return h.fail(c, err, "/carrinho")
	}
	return c.Redirect(http.StatusSeeOther, "/carrinho")
}
