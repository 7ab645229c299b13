package main

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"paper-trade-bot-go/internal/models"
)

// APIHandler holds dependencies for the API endpoints.
type APIHandler struct {
	log *zap.Logger
	db  *gorm.DB
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(log *zap.Logger, db *gorm.DB) *APIHandler {
	return &APIHandler{log: log, db: db}
}

// BotsHandler returns all configured bots with their performance counters.
func (h *APIHandler) BotsHandler(w http.ResponseWriter, r *http.Request) {
	var bots []models.Bot
	if err := h.db.Order("name asc").Find(&bots).Error; err != nil {
		h.log.Error("Failed to get bots from database", zap.Error(err))
		http.Error(w, "Failed to get bots", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bots)
}

// TradesHandler returns all recorded paper trades.
func (h *APIHandler) TradesHandler(w http.ResponseWriter, r *http.Request) {
	var trades []models.Trade
	// Order by most recent first
	if err := h.db.Order("timestamp desc").Find(&trades).Error; err != nil {
		h.log.Error("Failed to get trades from database", zap.Error(err))
		http.Error(w, "Failed to get trades", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(trades)
}

// StatsDetail holds calculated statistics for a given period.
type StatsDetail struct {
	TotalTrades    int64   `json:"total_trades"`
	Buys           int64   `json:"buys"`
	Sells          int64   `json:"sells"`
	NotionalVolume float64 `json:"notional_volume"`
}

// StatisticsResponse is the structure for the /api/statistics endpoint.
type StatisticsResponse struct {
	Since24h StatsDetail `json:"since_24h"`
	AllTime  StatsDetail `json:"all_time"`
}

// StatisticsHandler calculates and returns paper-trading statistics.
func (h *APIHandler) StatisticsHandler(w http.ResponseWriter, r *http.Request) {
	var allTrades []models.Trade
	if err := h.db.Find(&allTrades).Error; err != nil {
		h.log.Error("Failed to get trades for statistics", zap.Error(err))
		http.Error(w, "Failed to calculate statistics", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	since24h := now.Add(-24 * time.Hour)

	stats24h := StatsDetail{}
	statsAllTime := StatsDetail{}

	for _, trade := range allTrades {
		// Calculate for all time
		statsAllTime.TotalTrades++
		if trade.Side == "BUY" {
			statsAllTime.Buys++
		} else {
			statsAllTime.Sells++
		}
		statsAllTime.NotionalVolume += trade.Notional

		// Calculate for last 24 hours
		tradeTime := time.Unix(trade.Timestamp, 0)
		if tradeTime.After(since24h) {
			stats24h.TotalTrades++
			if trade.Side == "BUY" {
				stats24h.Buys++
			} else {
				stats24h.Sells++
			}
			stats24h.NotionalVolume += trade.Notional
		}
	}

	response := StatisticsResponse{
		Since24h: stats24h,
		AllTime:  statsAllTime,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
