package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"warotator/internal/bot"
	"warotator/internal/cache"
	"warotator/internal/config"
	"warotator/internal/database"
	"warotator/internal/enrich"
	"warotator/internal/logger"
	"warotator/internal/service"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Error loading .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	log, logCloser := logger.New(cfg.Log)
	defer logCloser.Close()
	slog.SetDefault(log)
	slog.Info("Starting WhatsApp rotator...", "port", cfg.Server.Port)

	if err := run(cfg); err != nil {
		slog.Error("Service stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.ConnectPostgres(ctx, cfg.Database.PostgresURL, database.PostgresOptions{
		MaxOpenConns: cfg.Database.MaxOpenConns,
		LockTimeout:  cfg.Database.SelectLockTimeout,
	})
	if err != nil {
		slog.Error("Could not connect to Postgres", "error", err)
		return err
	}
	defer db.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := service.NewMetrics(reg)

	sinks := []service.ClickSink{db}
	if cfg.ClickHouse.Enabled {
		analytics, err := database.ConnectClickHouse(ctx, database.ClickHouseOptions{
			Addr:     cfg.ClickHouse.Address,
			User:     cfg.ClickHouse.User,
			Password: cfg.ClickHouse.Password,
			Database: cfg.ClickHouse.Database,
		})
		if err != nil {
			slog.Error("Could not connect to ClickHouse", "error", err)
			return err
		}
		defer analytics.Close()
		sinks = append(sinks, analytics)
	}

	enricher, err := enrich.Open(cfg.GeoIP.Path)
	if err != nil {
		slog.Error("Could not open GeoIP database", "path", cfg.GeoIP.Path, "error", err)
		return err
	}
	defer enricher.Close()

	selector := service.NewSelector(db, metrics)
	recorder := service.NewRecorder(service.RecorderConfig{
		QueueSize:     cfg.Clicks.QueueSize,
		BatchSize:     cfg.Clicks.BatchSize,
		FlushInterval: cfg.Clicks.FlushInterval,
	}, enricher, metrics, sinks...)
	recorder.Start()

	var opts []service.DispatcherOption
	var groupCache service.GroupCache
	if cfg.Redis.Enabled {
		cacheDB, err := cache.ConnectRedis(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			slog.Error("Could not connect to Redis", "error", err)
			return err
		}
		defer cacheDB.Close()
		groupCache = cacheDB
		opts = append(opts, service.WithGroupCache(cacheDB, cfg.Redis.GroupTTL))
	}

	botErr := make(chan error, 1)
	if cfg.Telegram.Enabled {
		tgBot, err := bot.NewTelegramBot(cfg.Telegram.Token, cfg.Telegram.ChatID, cfg.Telegram.Cooldown, db)
		if err != nil {
			slog.Error("Could not initialize bot", "error", err)
			return err
		}
		opts = append(opts, service.WithAlerter(tgBot.Alerter()))
		go func() { botErr <- tgBot.Start(ctx) }()
	} else {
		opts = append(opts, service.WithAlerter(bot.Nop{}))
	}

	dispatcher := service.NewDispatcher(db, selector, recorder, metrics, opts...)
	stats := service.NewStats(db)
	admin := service.NewAdmin(db, selector, groupCache)

	server := service.NewServer(cfg.Server, dispatcher, stats, admin, reg, db)
	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start(ctx) }()

	slog.Info("Service is up and running!")

	var runErr error
	serverDone := false
	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-serverErr:
		serverDone = true
		if err != nil {
			slog.Error("Server stopped with error", "error", err)
			runErr = err
		}
	case err := <-botErr:
		if err != nil {
			slog.Error("Bot stopped with error", "error", err)
			runErr = err
		}
	}
	stop()

	slog.Info("Shutting down gracefully...")
	// let the server finish in-flight redirects before the queue is drained
	if !serverDone {
		select {
		case <-serverErr:
		case <-time.After(6 * time.Second):
		}
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := recorder.Close(flushCtx); err != nil {
		slog.Error("Click queue not fully flushed", "error", err)
	}
	return runErr
}
