package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"festa/internal/domain/model"
	"festa/internal/flash"
	"festa/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	principal *model.Principal
	err       error
	calls     int
}

func (f *fakeResolver) Resolve(ctx context.Context, raw string) (*model.Principal, error) {
	f.calls++
	if raw != "good" {
		return nil, usecase.ErrUnauthorized
	}
	return f.principal, f.err
}

func newEcho(resolver SessionResolver, protected echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.Use(LoadSession(resolver))
	e.GET("/open", func(c echo.Context) error {
		if p, ok := PrincipalFrom(c); ok {
			return c.String(http.StatusOK, p.User.Name)
		}
		return c.String(http.StatusOK, "anonymous")
	})
	e.GET("/dashboard", protected, RequireLogin(flash.New(false)))
	return e
}

func get(e *echo.Echo, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLoadSession(t *testing.T) {
	r := &fakeResolver{principal: &model.Principal{User: &model.User{ID: 1, Name: "alice"}, SessionID: "s1"}}
	e := newEcho(r, func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := get(e, "/open", &http.Cookie{Name: SessionCookieName, Value: "good"})
	assert.Equal(t, "alice", rec.Body.String())

	rec = get(e, "/open", &http.Cookie{Name: SessionCookieName, Value: "tampered"})
	assert.Equal(t, "anonymous", rec.Body.String())

	// クッキーが無ければ問い合わせない
	before := r.calls
	rec = get(e, "/open", nil)
	assert.Equal(t, "anonymous", rec.Body.String())
	assert.Equal(t, before, r.calls)
}

func TestLoadSession_StorageFailureIsAnonymous(t *testing.T) {
	r := &fakeResolver{err: usecase.ErrStorage}
	e := newEcho(r, func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := get(e, "/open", &http.Cookie{Name: SessionCookieName, Value: "good"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", rec.Body.String())
}

// 未ログインではhandlerが動かない
func TestRequireLogin_Redirects(t *testing.T) {
	called := false
	e := newEcho(&fakeResolver{}, func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	rec := get(e, "/dashboard", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get(echo.HeaderLocation))
	assert.False(t, called)

	var flashSet bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == flash.CookieName {
			flashSet = true
		}
	}
	assert.True(t, flashSet)
}

func TestRequireLogin_PassesPrincipal(t *testing.T) {
	r := &fakeResolver{principal: &model.Principal{User: &model.User{ID: 9, Name: "bob"}, SessionID: "s9"}}
	e := newEcho(r, func(c echo.Context) error {
		p, ok := PrincipalFrom(c)
		require.True(t, ok)
		return c.String(http.StatusOK, p.SessionID)
	})

	rec := get(e, "/dashboard", &http.Cookie{Name: SessionCookieName, Value: "good"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "s9", rec.Body.String())
}

func TestPrincipalFrom_RejectsZeroUser(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	c.Set(CtxPrincipalKey, &model.Principal{User: &model.User{ID: 0}})
	_, ok := PrincipalFrom(c)
	assert.False(t, ok)

	c.Set(CtxPrincipalKey, "not a principal")
	_, ok = PrincipalFrom(c)
	assert.False(t, ok)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	e.Use(RequestLogger(logger))
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	e.GET("/fail", func(c echo.Context) error { return errors.New("boom") })

	get(e, "/ok", nil)
	assert.Contains(t, buf.String(), "uri=/ok")
	assert.Contains(t, buf.String(), "status=204")

	buf.Reset()
	rec := get(e, "/fail", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "err=boom")
}
