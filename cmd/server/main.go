package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gdg-garage/campus-events-api/internal/auth"
	"github.com/gdg-garage/campus-events-api/internal/config"
	"github.com/gdg-garage/campus-events-api/internal/database"
	"github.com/gdg-garage/campus-events-api/internal/events"
	"github.com/gdg-garage/campus-events-api/internal/handlers"
	"github.com/gdg-garage/campus-events-api/internal/ledger"
	"github.com/gdg-garage/campus-events-api/internal/notifier"
	"github.com/gdg-garage/campus-events-api/internal/venues"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	// Load Configuration
	cfg := config.LoadConfig()

	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	// Connect to Database
	db := database.Connect(cfg)

	notifiers := notifier.Multi{}
	if cfg.DiscordBotToken != "" {
		discordNotifier, err := notifier.NewDiscordNotifier(cfg.DiscordBotToken, cfg.DiscordNotificationsChannelID)
		if err != nil {
			logger.Warn("Discord notifier not initialized", zap.Error(err))
		} else {
			notifiers = append(notifiers, discordNotifier)
		}
	}
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisNotifier, err := notifier.NewRedisNotifier(ctx, cfg.RedisURL, cfg.RedisChannel)
		cancel()
		if err != nil {
			logger.Warn("Redis notifier not initialized", zap.Error(err))
		} else {
			notifiers = append(notifiers, redisNotifier)
		}
	}

	// Initialize Handlers
	registry := venues.NewRegistry(db)
	store := events.NewStore(db, registry)
	authHandler := auth.NewAuthHandler(cfg, db)
	h := handlers.Handlers{
		Auth:         authHandler,
		Events:       handlers.NewEventHandler(store, authHandler, notifiers, logger),
		Venues:       handlers.NewVenueHandler(registry, authHandler, logger),
		Registration: handlers.NewRegistrationHandler(store, ledger.New(db, registry), authHandler, notifiers, logger),
		Reports:      handlers.NewReportHandler(store, authHandler, logger),
		Navigation:   handlers.NewNavigationHandler(authHandler, logger),
	}

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg, h)

	// Start Server
	logger.Info("Starting server", zap.String("port", cfg.Port), zap.Int("notifiers", len(notifiers)))
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func initLogger(level string) *zap.Logger {
	logLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		logLevel = zap.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(logLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return logger
}
