package strategy

// BotConfig is the immutable policy of a single paper-trading bot.
type BotConfig struct {
	Strategy        Type
	TargetSymbols   []string
	PaperBalance    float64
	MaxPositionSize float64
	RiskLevel       string // informational only, not consulted by the rules
}

// MarketData is one tracked symbol's slice of the market snapshot.
type MarketData struct {
	Symbol       string
	PriceAUD     float64
	Change24h    float64 // 24h price change, percent
	Volume24hAUD float64
}

// Action is the side of a trading decision.
type Action string

const (
	ActionHold Action = "HOLD"
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
)

// Decision is the sole output of the evaluator. Hold decisions carry only
// the reasoning; trade decisions also carry symbol, sizing and price.
type Decision struct {
	Action    Action
	Symbol    string
	Amount    float64 // asset units, Notional / Price
	Price     float64 // AUD per unit at evaluation time
	Notional  float64 // AUD value of the trade
	Reasoning string
}

// IsTrade reports whether the decision should be recorded as a paper trade.
func (d Decision) IsTrade() bool {
	return d.Action != ActionHold
}
