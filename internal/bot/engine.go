package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"paper-trade-bot-go/internal/config"
	"paper-trade-bot-go/internal/market"
	"paper-trade-bot-go/internal/models"
	"paper-trade-bot-go/internal/strategy"
)

// Engine periodically evaluates every enabled bot against a fresh market
// snapshot and records the resulting paper trades.
type Engine struct {
	logger *zap.Logger
	cfg    *config.Config
	client market.RestClientInterface
	db     *gorm.DB

	UUID      string
	StartTime time.Time
}

// NewEngine creates a new evaluation engine.
func NewEngine(logger *zap.Logger, cfg *config.Config, client market.RestClientInterface, db *gorm.DB) *Engine {
	return &Engine{
		logger:    logger,
		cfg:       cfg,
		client:    client,
		db:        db,
		UUID:      uuid.NewString(),
		StartTime: time.Now(),
	}
}

// Run starts the engine's main loop.
func (e *Engine) Run(ctx context.Context) {
	e.logger.Info("Initializing evaluation engine...", zap.String("engine_id", e.UUID))
	if err := e.initialize(); err != nil {
		e.logger.Fatal("Failed to initialize engine", zap.Error(err))
	}

	interval := time.Duration(e.cfg.Trading.TickInterval) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	e.logger.Info("Starting evaluation loop", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("Stopping evaluation engine...")
			return
		case <-ticker.C:
			if err := e.tick(); err != nil {
				e.logger.Error("Evaluation cycle failed", zap.Error(err))
			}
		}
	}
}

// initialize verifies there is something to evaluate and logs the roster.
func (e *Engine) initialize() error {
	var count int64
	if err := e.db.Model(&models.Bot{}).Where("enabled = ?", true).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count enabled bots: %w", err)
	}
	if count == 0 {
		e.logger.Warn("No enabled bots found in the database. The engine will idle.")
	}
	e.logger.Info("Engine initialized", zap.Int64("enabled_bots", count))
	return nil
}

// EnabledBotCount returns the number of bots the engine evaluates per tick.
func (e *Engine) EnabledBotCount() (int64, error) {
	var count int64
	err := e.db.Model(&models.Bot{}).Where("enabled = ?", true).Count(&count).Error
	return count, err
}

// tick performs a single round of bot evaluations against one snapshot.
func (e *Engine) tick() error {
	tickers, err := e.client.GetMarkets(e.cfg.Market.VsCurrency)
	if err != nil {
		return fmt.Errorf("could not fetch market data: %w", err)
	}

	snapshot := make([]strategy.MarketData, 0, len(tickers))
	for _, t := range tickers {
		snapshot = append(snapshot, strategy.MarketData{
			Symbol:       t.Symbol,
			PriceAUD:     t.Price,
			Change24h:    t.Change24h,
			Volume24hAUD: t.Volume24h,
		})
	}

	var bots []models.Bot
	if err := e.db.Where("enabled = ?", true).Find(&bots).Error; err != nil {
		return fmt.Errorf("could not load enabled bots: %w", err)
	}

	e.logger.Info("Evaluating bots",
		zap.Int("bots", len(bots)),
		zap.Int("symbols", len(snapshot)))

	for i := range bots {
		e.evaluateBot(&bots[i], snapshot)
	}

	return nil
}

// evaluateBot runs one bot against the snapshot and persists the outcome.
func (e *Engine) evaluateBot(bot *models.Bot, snapshot []strategy.MarketData) {
	l := e.logger.With(
		zap.String("bot", bot.Name),
		zap.String("strategy", bot.Strategy),
	)

	decision := strategy.Evaluate(strategy.BotConfig{
		Strategy:        strategy.ParseType(bot.Strategy),
		TargetSymbols:   bot.TargetSymbols(),
		PaperBalance:    bot.PaperBalance,
		MaxPositionSize: bot.MaxPositionSize,
		RiskLevel:       bot.RiskLevel,
	}, snapshot)

	if !decision.IsTrade() {
		l.Debug("Holding", zap.String("reasoning", decision.Reasoning))
		return
	}

	trade := models.Trade{
		BotID:        bot.ID,
		Symbol:       decision.Symbol,
		Side:         string(decision.Action),
		Amount:       decision.Amount,
		Price:        decision.Price,
		Notional:     decision.Notional,
		Reasoning:    decision.Reasoning,
		Timestamp:    time.Now().Unix(),
		IsSimulation: true,
	}

	if err := e.db.Create(&trade).Error; err != nil {
		l.Error("Failed to save paper trade", zap.Error(err))
		return
	}

	l.Info("Recorded paper trade",
		zap.String("side", trade.Side),
		zap.String("symbol", trade.Symbol),
		zap.Float64("amount", trade.Amount),
		zap.Float64("price", trade.Price),
		zap.Float64("notional", trade.Notional),
		zap.String("reasoning", trade.Reasoning),
	)

	// Counter updates are best-effort: a failure here must not undo or
	// invalidate the recorded trade.
	err := e.db.Model(bot).Updates(map[string]interface{}{
		"total_trades":      gorm.Expr("total_trades + ?", 1),
		"last_evaluated_at": time.Now().Unix(),
	}).Error
	if err != nil {
		l.Warn("Failed to update bot performance counters", zap.Error(err))
	}
}
