package models

import (
	"strings"

	"gorm.io/gorm"
)

// Bot represents a paper-trading bot and its performance counters.
type Bot struct {
	gorm.Model
	Name            string `gorm:"uniqueIndex"`
	Strategy        string `gorm:"not null"`
	Symbols         string // comma-separated target symbols, first one is traded
	PaperBalance    float64
	MaxPositionSize float64
	RiskLevel       string
	Enabled         bool `gorm:"default:true"`
	TotalTrades     int64
	LastEvaluatedAt int64
}

// TargetSymbols splits the stored symbol list into individual tickers.
func (b *Bot) TargetSymbols() []string {
	if b.Symbols == "" {
		return nil
	}
	parts := strings.Split(b.Symbols, ",")
	symbols := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}
