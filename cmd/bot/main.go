// Package main запускает Telegram-бота каталога кино.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"kinobot/internal/bot"
	"kinobot/internal/config"
	"kinobot/internal/storage"
	"kinobot/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := storage.NewPostgres(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("Failed to close database", zap.Error(err))
		}
	}()

	if err := db.InitSchema(); err != nil {
		log.Fatal("Failed to initialize schema", zap.Error(err))
	}

	if cfg.CatalogPath != "" {
		if err := db.Seed(cfg.CatalogPath); err != nil {
			log.Fatal("Failed to seed catalog", zap.Error(err))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("Shutdown signal received")
		cancel()
	}()

	b, err := bot.New(cfg, log,
		db.GetFilmRepository(),
		db.GetCinemaRepository(),
		db.GetUserRepository())
	if err != nil {
		log.Fatal("Failed to create bot", zap.Error(err))
	}
	defer b.Stop()

	if err := b.Start(ctx); err != nil && ctx.Err() == nil {
		log.Error("Bot stopped with error", zap.Error(err))
		os.Exit(1)
	}

	log.Info("Bot stopped successfully")
}
