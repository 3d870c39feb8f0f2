package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"kcalbot/internal/adapter/memory"
	"kcalbot/internal/adapter/openfoodfacts"
	"kcalbot/internal/adapter/openweather"
	"kcalbot/internal/adapter/telegram"
	"kcalbot/internal/app"
	"kcalbot/internal/config"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config", zap.Error(err))
	}

	store := memory.New()
	weather := openweather.New(cfg.WeatherBaseURL, cfg.WeatherAPIKey, cfg.LookupTimeout, log)
	food := openfoodfacts.New(cfg.FoodBaseURL, cfg.LookupTimeout)

	dialogs := app.NewDialogs(store, weather, food)
	tracker := app.NewTracker(store)
	progress := app.NewProgress(store)

	bot, err := telegram.New(cfg.TelegramBotToken, dialogs, tracker, progress, log)
	if err != nil {
		log.Fatal("telegram", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("bot started")
	if err := bot.Run(ctx); err != nil {
		log.Fatal("run", zap.Error(err))
	}
	log.Info("bot stopped")
}
