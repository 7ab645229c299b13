package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"paper-trade-bot-go/internal/bot"
	"paper-trade-bot-go/internal/config"
	"paper-trade-bot-go/internal/database"
	"paper-trade-bot-go/internal/logger"
	"paper-trade-bot-go/internal/market"
)

func main() {
	// Load application configuration
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		// We can't use the logger here because it's not initialized yet.
		panic(fmt.Sprintf("could not load config: %v", err))
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("Configuration loaded", zap.Int("configured_bots", len(cfg.Bots)))

	// Initialize database
	db, err := database.NewDatabase(&cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connection successful and schema migrated.")

	// Initialize market data client
	restClient := market.NewRestClient(&cfg.Market, log)
	if err := restClient.Ping(); err != nil {
		log.Fatal("Failed to connect to market data API", zap.Error(err))
	}
	log.Info("Successfully connected to market data API.")

	// Setup context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigchan := make(chan os.Signal, 1)
		signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
		<-sigchan
		log.Info("Shutdown signal received, gracefully shutting down...")
		cancel()
	}()

	// Initialize and run the evaluation engine
	engine := bot.NewEngine(log, &cfg, restClient, db)

	apiServer := bot.NewAPIServer(engine, log)
	apiServer.Start()

	engine.Run(ctx)

	if err := apiServer.Stop(context.Background()); err != nil {
		log.Error("Failed to stop API server cleanly", zap.Error(err))
	}
	log.Info("Bot service has been shut down.")
}
