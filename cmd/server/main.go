package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vantage-crm/vantage/internal/server"
	"github.com/vantage-crm/vantage/modules"
	"github.com/vantage-crm/vantage/pkg/application"
	"github.com/vantage-crm/vantage/pkg/configuration"
	"github.com/vantage-crm/vantage/pkg/eventbus"
)

func main() {
	conf := configuration.Use()
	defer conf.Unload()
	log := conf.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		log.WithError(err).Fatal("failed to create database pool")
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	app := application.New(pool, eventbus.NewEventPublisher(log), log)
	if err := modules.Load(app); err != nil {
		log.WithError(err).Fatal("failed to load modules")
	}
	if err := app.RunMigrations(ctx); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	srv := server.Default(conf, app)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start(conf.SocketAddress)
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("http server failed")
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("graceful shutdown failed")
		}
	}
}
