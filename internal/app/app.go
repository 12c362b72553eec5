package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/stpnv0/SlotBooker/internal/config"
	"github.com/stpnv0/SlotBooker/internal/handler"
	"github.com/stpnv0/SlotBooker/internal/middleware"
	"github.com/stpnv0/SlotBooker/internal/router"
	"github.com/stpnv0/SlotBooker/internal/scheduler"
	"github.com/wb-go/wbf/logger"
)

const appName = "SlotBooker"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	core       *Core
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	app.log = log

	ctx := context.Background()

	core, err := NewCore(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("init core: %w", err)
	}
	app.core = core

	if err = core.Seed(ctx, cfg.Auth.AdminPassword); err != nil {
		_ = core.Close(ctx)
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

func NewLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

func (a *App) initHTTP() {
	a.scheduler = scheduler.New(
		a.core.Bookings,
		a.core.Drafts,
		a.cfg.Scheduler.Interval,
		a.cfg.Scheduler.AutoComplete,
		a.log,
	)

	h := handler.NewHandler(
		a.core.Availability,
		a.core.Bookings,
		a.core.Drafts,
		a.core.Catalog,
		a.core.Auth,
		a.core.Transfer,
		a.core.Tasks,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		a.core.Tokens,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Driver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.core.Close(shutdownCtx); err != nil {
		return err
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "storage closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
