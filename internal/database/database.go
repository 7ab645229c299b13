package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"paper-trade-bot-go/internal/config"
	"paper-trade-bot-go/internal/models"
)

// NewDatabase creates a new database connection and performs auto-migration.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := AutoMigrate(db, cfg); err != nil {
		return nil, err
	}

	return db, nil
}

// AutoMigrate creates the schema and seeds the configured bots.
func AutoMigrate(db *gorm.DB, cfg *config.Config) error {
	if err := db.AutoMigrate(&models.Bot{}, &models.Trade{}); err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	// Seed bots from the config. Existing rows keep their performance
	// counters, so restarting the service does not reset trade counts.
	for _, b := range cfg.Bots {
		bot := models.Bot{
			Name:            b.Name,
			Strategy:        b.Strategy,
			Symbols:         strings.Join(b.Symbols, ","),
			PaperBalance:    b.PaperBalance,
			MaxPositionSize: b.MaxPositionSize,
			RiskLevel:       b.RiskLevel,
			Enabled:         true,
		}
		if err := db.FirstOrCreate(&bot, models.Bot{Name: b.Name}).Error; err != nil {
			return fmt.Errorf("failed to seed bot '%s': %w", b.Name, err)
		}
	}

	return nil
}
