package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hydromate/internal/config"
	"hydromate/internal/handler"
	"hydromate/internal/lookup"
	"hydromate/internal/repository/memory"
	"hydromate/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Hydromate Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Initialize lookup collaborators
	weather := lookup.NewWeatherClient(cfg.Weather.BaseURL, cfg.Weather.APIKey, cfg.LookupTimeout, logger)
	nutrition := lookup.NewNutritionClient(cfg.Nutrition.BaseURL, cfg.Nutrition.APIKey, cfg.LookupTimeout, logger)

	// Initialize repository (volatile, process lifetime)
	profileRepo := memory.NewProfileRepo()

	// Initialize services
	trackerService := service.NewTrackerService(profileRepo, weather, nutrition, logger)
	progressService := service.NewProgressService(profileRepo, weather, logger)
	statsService := service.NewStatsService(profileRepo, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:     cfg.BotToken,
		Poller:    &tele.LongPoller{Timeout: 10 * time.Second},
		ParseMode: tele.ModeHTML,
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize handler
	h := handler.NewHandler(bot, trackerService, progressService, profileRepo, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start stats job in background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runStatsJob(ctx, statsService, logger)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}

// runStatsJob periodically logs a usage snapshot
func runStatsJob(ctx context.Context, statsService *service.StatsService, logger *zap.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stats job stopped")
			return
		case <-ticker.C:
			statsService.LogUsage()
		}
	}
}
