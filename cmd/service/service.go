package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shift-scheduler/internal/cache"
	"shift-scheduler/internal/config"
	"shift-scheduler/internal/database"
	"shift-scheduler/internal/handler"
	"shift-scheduler/internal/logger"
	"shift-scheduler/internal/middleware"
	"shift-scheduler/internal/router"
	"shift-scheduler/internal/service"

	_ "shift-scheduler/docs" // 引入 swag 產出的 docs

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 10 * time.Second

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	ensureAdmin     = service.EnsureAdmin
	startServer     = serve
	exitFunc        = os.Exit
)

// serve blocks until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, e *echo.Echo, addr string) error {
	errCh := make(chan error, 1)
	go func() {
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.IsDevelopment()})

	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer rdb.Close()

	// 開發用：清空後重建 schema
	if cfg.MigrateReset {
		log.Warn().Msg("MIGRATE_RESET set, rolling back all migrations")
		if err := rollbackAllFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Migration 回滾失敗: %w", err)
		}
	}
	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	if cfg.Admin.Enabled() {
		created, err := ensureAdmin(ctx, db, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			return fmt.Errorf("建立管理員失敗: %w", err)
		}
		log.Info().Bool("created", created).Str("email", cfg.Admin.Email).Msg("bootstrap admin checked")
	}

	issuer, err := service.NewTokenIssuer(cfg.JWTSecret)
	if err != nil {
		return err
	}
	throttle := service.NewLoginThrottle(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(log)
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.Instrument())
	e.Use(middleware.RequestLogger(log))

	router.Setup(e, router.Deps{DB: db, Cache: rdb, Issuer: issuer, Throttle: throttle})

	log.Info().Str("addr", cfg.Addr()).Msg("listening")
	if err := startServer(ctx, e, cfg.Addr()); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	log.Info().Msg("bye")
	return nil
}
