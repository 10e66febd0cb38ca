package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"festa/internal/config"
	"festa/internal/flash"
	"festa/internal/handler"
	"festa/internal/metrics"
	"festa/internal/middleware"
	"festa/internal/usecase"
	"festa/internal/view"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// サーバーが使う部品（main.goで組み立てる）
type Deps struct {
	Config   config.Config
	Logger   *slog.Logger
	Auth     *usecase.AuthUsecase
	Cart     *usecase.CartUsecase
	Products *usecase.ProductUsecase
	Parties  *usecase.PartyUsecase
	Ping     handler.Pinger
	// nilならメトリクス無効
	Metrics *metrics.Metrics
}

// echoを組み立てる
func New(d Deps) (*echo.Echo, error) {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(d.Logger))
	if d.Metrics != nil {
		e.Use(d.Metrics.Middleware())
	}
	e.Use(middleware.LoadSession(d.Auth))

	RegisterRoutes(e, d)
	return e, nil
}

// ctxがキャンセルされたらgracefulに止める
func Start(ctx context.Context, e *echo.Echo, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	slog.Info("server shutting down")
	return e.Shutdown(shutdownCtx)
}

func newFlasher(cfg config.Config) *flash.Flasher {
	return flash.New(cfg.CookieSecure)
}
