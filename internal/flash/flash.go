package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	CookieName = "festa_flash"

	// リクエスト内で追加済みのメッセージ
	ctxPendingKey = "flash_pending"
)

type Category string

const (
	Success Category = "success"
	Error   Category = "error"
	Info    Category = "info"
)

// 1件のフラッシュメッセージ
type Message struct {
	Category Category `json:"c"`
	Text     string   `json:"t"`
}

// 次のリクエストで1回だけ表示するメッセージ。クッキーに入れて運ぶ
type Flasher struct {
	secure bool
}

// DI
func New(secure bool) *Flasher {
	return &Flasher{secure: secure}
}

// Add はメッセージを積んでクッキーを書き直す
func (f *Flasher) Add(c echo.Context, cat Category, text string) {
	pending, _ := c.Get(ctxPendingKey).([]Message)
	pending = append(pending, Message{Category: cat, Text: text})
	c.Set(ctxPendingKey, pending)

	b, err := json.Marshal(pending)
	if err != nil {
		return
	}
	c.SetCookie(f.cookie(base64.RawURLEncoding.EncodeToString(b), 0))
}

// Pop はクッキーのメッセージを取り出して消す
func (f *Flasher) Pop(c echo.Context) []Message {
	ck, err := c.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return nil
	}
	c.SetCookie(f.cookie("", -1))

	b, err := base64.RawURLEncoding.DecodeString(ck.Value)
	if err != nil {
		return nil
	}
	var msgs []Message
	if err := json.Unmarshal(b, &msgs); err != nil {
		return nil
	}
	return msgs
}

func (f *Flasher) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   f.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
