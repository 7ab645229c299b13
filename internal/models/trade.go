package models

import "gorm.io/gorm"

// Trade represents a recorded paper trade in the database.
type Trade struct {
	gorm.Model
	BotID        uint    `json:"bot_id"`
	Symbol       string  `json:"symbol"`
	Side         string  `json:"side"` // "BUY" or "SELL"
	Amount       float64 `json:"amount"`
	Price        float64 `json:"price"`
	Notional     float64 `json:"notional"`
	Reasoning    string  `json:"reasoning"`
	Timestamp    int64   `json:"timestamp"`
	IsSimulation bool    `json:"is_simulation"`
}
