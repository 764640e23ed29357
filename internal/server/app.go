// Package server initializes and runs the main application server.
// It opens the storage backend, wires the notifier and the protocol
// dispatcher, handles graceful shutdown, and starts the TCP endpoint.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/edtechlab/coursehub/internal/logging"
	"github.com/edtechlab/coursehub/internal/server/config"
	"github.com/edtechlab/coursehub/internal/server/notify"
	"github.com/edtechlab/coursehub/internal/server/repositories/repomanager"
	"github.com/edtechlab/coursehub/internal/server/services"
	"github.com/edtechlab/coursehub/internal/server/tcp"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	notifier notify.Notifier
	server   *tcp.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, rm, err := repomanager.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	var notifier notify.Notifier
	if cfg.RedisAddr != "" {
		notifier = notify.NewRedis(cfg.RedisAddr)
	} else {
		notifier = notify.NewLog(logger)
	}

	us := services.NewUserService(db, rm)
	cs := services.NewCatalogService(db, rm, notifier, logger)

	dispatcher := tcp.NewDispatcher(us, cs, logger)
	srv := tcp.NewServer(cfg.Addr, cfg.ReadTimeout, dispatcher, logger)

	return &App{config: cfg, logger: logger, db: db, notifier: notifier, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if closer, ok := app.notifier.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			app.logger.Error(ctx, err.Error())
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	app.logger.Info(ctx, "App stopped")
}
