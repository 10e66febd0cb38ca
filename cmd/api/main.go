package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"festa/internal/config"
	"festa/internal/infra/db"
	infraRepo "festa/internal/infra/repository"
	"festa/internal/infra/token"
	"festa/internal/metrics"
	"festa/internal/server"
	"festa/internal/usecase"
	"festa/pkg/logging"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無くてもよい
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "err", err)
	}

	logger := logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid config", "err", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close(gormDB) }()

	if err := db.Migrate(gormDB); err != nil {
		return err
	}
	logger.Info("database ready", "driver", cfg.DBDriver)

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	sessionRepo := infraRepo.NewSessionGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	partyRepo := infraRepo.NewPartyGormRepository(gormDB)
	productRepo := infraRepo.NewStaticProductCatalog()
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(
		userRepo,
		sessionRepo,
		txm,
		usecase.NewBcryptPasswordHasher(cfg.BcryptCost),
		token.NewJWTCodec(cfg.SessionSecret),
		usecase.UUIDGenerator{},
		usecase.SystemClock{},
		cfg.SessionTTL,
	)

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	e, err := server.New(server.Deps{
		Config:   cfg,
		Logger:   logger,
		Auth:     authUC,
		Cart:     usecase.NewCartUsecase(cartItemRepo, productRepo),
		Products: usecase.NewProductUsecase(productRepo),
		Parties:  usecase.NewPartyUsecase(partyRepo),
		Ping: func(ctx context.Context) error {
			return db.Ping(ctx, gormDB)
		},
		Metrics: m,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//期限切れセッションの掃除
	go runJanitor(ctx, authUC, cfg.SessionPurgeInterval)

	//Server起動
	return server.Start(ctx, e, cfg.Addr())
}

type sessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

func runJanitor(ctx context.Context, p sessionPurger, interval time.Duration) {
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if _, err := p.PurgeExpired(ctx); err != nil {
				slog.Warn("session purge failed", "err", err)
			}
		}
	}
}
