package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"la-carta/internal/archive"
	"la-carta/internal/broadcast"
	"la-carta/internal/clock"
	"la-carta/internal/config"
	"la-carta/internal/handler"
	"la-carta/internal/logger"
	"la-carta/internal/report"
	"la-carta/internal/service"
	"la-carta/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zaplog, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer zaplog.Sync()

	menuStore, err := store.OpenMenuStore(filepath.Join(cfg.DataDir, "menu.json"))
	if err != nil {
		return err
	}
	historyLog, err := store.OpenHistoryLog(filepath.Join(cfg.DataDir, "historico.json"))
	if err != nil {
		return err
	}
	orderStore := store.NewOrderStore()

	hub := broadcast.NewHub(zaplog)
	publisher := broadcast.Multi{hub}
	if cfg.RabbitMQ != nil {
		amqpPub, err := broadcast.ConnectAMQP(cfg.RabbitMQ.URL(), zaplog)
		if err != nil {
			// broadcast stays best-effort: run with in-process viewers only
			zaplog.Warn("rabbitmq unavailable", zap.Error(err))
		} else {
			defer amqpPub.Close()
			publisher = append(publisher, amqpPub)
		}
	}

	clk := clock.NewSystem()
	orderSvc := service.NewOrderService(orderStore, publisher, clk, zaplog)
	menuSvc := service.NewMenuService(menuStore, publisher, clk, zaplog)
	scheduler := archive.NewScheduler(orderStore, historyLog,
		report.NewExcelWriter(cfg.ReportDir), cfg.ArchiveInterval, clk, zaplog)

	h := handler.New(orderSvc, menuSvc, historyLog, hub, cfg.ReportDir, clk,
		cfg.Admin, cfg.Cook, zaplog)

	srv := &http.Server{
		Addr:        cfg.Addr,
		Handler:     h.Router(),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 60 * time.Second,
		// no WriteTimeout: the events endpoint holds connections open
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		zaplog.Info("server started",
			zap.String("addr", cfg.Addr),
			zap.Duration("archive_interval", cfg.ArchiveInterval),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return scheduler.Run(ctx)
	})

	g.Go(func() error {
		<-ctx.Done()
		zaplog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
