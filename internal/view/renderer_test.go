package view

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"festa/internal/domain/model"
	"festa/internal/flash"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, name string, page Page) string {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, name, page, c))
	return buf.String()
}

func TestRenderer_AllPagesParse(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	for _, name := range []string{
		"index.html", "login.html", "register.html", "dash.html",
		"produtos.html", "carrinho.html", "festas.html", "nova_festa.html",
	} {
		assert.Contains(t, r.pages, name)
	}
}

func TestRenderer_Cart(t *testing.T) {
	cart := model.Cart{
		Lines:      []model.CartLine{{ProductID: 1, Name: "Produto 1", PriceCents: 1099}, {ProductID: 1, Name: "Produto 1", PriceCents: 1099}},
		TotalCents: 2198,
	}
	out := render(t, "carrinho.html", Page{Title: "Carrinho", User: &model.User{ID: 1, Name: "alice"}, Data: cart})

	assert.Equal(t, 2, strings.Count(out, `<tr class="item">`))
	assert.Contains(t, out, "R$ 10.99")
	assert.Contains(t, out, "R$ 21.98")

	out = render(t, "carrinho.html", Page{Title: "Carrinho", User: &model.User{ID: 1, Name: "alice"}, Data: model.Cart{}})
	assert.Contains(t, out, "vazio")
}

// 名前はエスケープされる
func TestRenderer_EscapesUserContent(t *testing.T) {
	parties := []model.Party{{ID: 3, Name: "<script>alert(1)</script>", Date: "2025-01-01", Location: "Casa"}}
	out := render(t, "festas.html", Page{
		Title:   "Festas",
		User:    &model.User{ID: 1, Name: "alice"},
		Flashes: []flash.Message{{Category: flash.Success, Text: "Festa cadastrada com sucesso!"}},
		Data:    parties,
	})

	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, `action="/festa/remover/3"`)
	assert.Contains(t, out, "Festa cadastrada com sucesso!")
}

func TestRenderer_Unknown(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Error(t, r.Render(&bytes.Buffer{}, "nope.html", Page{}, c))
}
