package strategy

import (
	"fmt"
	"math"
	"strconv"
)

// defaultSymbol is traded when a bot has no target symbols configured.
const defaultSymbol = "BTC"

// Evaluate decides one action for a bot given the current market snapshot.
// It is a pure function: no I/O, no state across calls, and it never fails —
// missing data and unknown strategies are normal hold outcomes.
func Evaluate(bot BotConfig, market []MarketData) Decision {
	target := defaultSymbol
	if len(bot.TargetSymbols) > 0 {
		target = bot.TargetSymbols[0]
	}

	// Must be checked before any arithmetic on the snapshot.
	var data *MarketData
	for i := range market {
		if market[i].Symbol == target {
			data = &market[i]
			break
		}
	}
	if data == nil {
		return hold("No market data available")
	}

	switch bot.Strategy {
	case TypeDCA:
		return evaluateDCA(bot, *data)
	case TypeGridTrading:
		return evaluateGridTrading(bot, *data)
	case TypeMomentum:
		return evaluateMomentum(bot, *data)
	case TypeMeanReversion:
		return evaluateMeanReversion(bot, *data)
	default:
		return hold("Unknown strategy type")
	}
}

// evaluateDCA buys unconditionally, sized by whichever is smaller of 10% of
// the position cap and 5% of the remaining paper balance.
func evaluateDCA(bot BotConfig, data MarketData) Decision {
	notional := math.Min(bot.MaxPositionSize*0.10, bot.PaperBalance*0.05)
	reasoning := fmt.Sprintf("DCA strategy: Regular buy of %s AUD worth of %s",
		strconv.FormatFloat(notional, 'f', -1, 64), data.Symbol)
	return trade(ActionBuy, data, notional, reasoning)
}

// evaluateGridTrading buys dips below -3% and sells pumps above +5%.
func evaluateGridTrading(bot BotConfig, data MarketData) Decision {
	switch {
	case data.Change24h < -3:
		return trade(ActionBuy, data, bot.MaxPositionSize*0.20,
			fmt.Sprintf("Grid strategy: Buying on %.2f%% dip", data.Change24h))
	case data.Change24h > 5:
		return trade(ActionSell, data, bot.MaxPositionSize*0.10,
			fmt.Sprintf("Grid strategy: Selling on %.2f%% pump", data.Change24h))
	default:
		return hold("Grid strategy: Price within normal range")
	}
}

// evaluateMomentum trades in the direction of a strong 24h trend (+/-8%).
func evaluateMomentum(bot BotConfig, data MarketData) Decision {
	switch {
	case data.Change24h > 8:
		return trade(ActionBuy, data, bot.MaxPositionSize*0.30,
			fmt.Sprintf("Momentum strategy: Strong uptrend at %.2f%%", data.Change24h))
	case data.Change24h < -8:
		return trade(ActionSell, data, bot.MaxPositionSize*0.20,
			fmt.Sprintf("Momentum strategy: Strong downtrend at %.2f%%", data.Change24h))
	default:
		return hold("Momentum strategy: Waiting for stronger signal")
	}
}

// evaluateMeanReversion buys oversold (< -5%) and sells overbought (> +10%).
func evaluateMeanReversion(bot BotConfig, data MarketData) Decision {
	switch {
	case data.Change24h < -5:
		return trade(ActionBuy, data, bot.MaxPositionSize*0.25,
			fmt.Sprintf("Mean reversion: Oversold at %.2f%%", data.Change24h))
	case data.Change24h > 10:
		return trade(ActionSell, data, bot.MaxPositionSize*0.15,
			fmt.Sprintf("Mean reversion: Overbought at %.2f%%", data.Change24h))
	default:
		return hold("Mean reversion: Price within normal range")
	}
}

func hold(reasoning string) Decision {
	return Decision{Action: ActionHold, Reasoning: reasoning}
}

// trade converts an AUD notional into asset units at the snapshot price.
// A non-positive price would make the division meaningless, so it is treated
// the same as missing market data.
func trade(action Action, data MarketData, notional float64, reasoning string) Decision {
	if data.PriceAUD <= 0 {
		return hold("Invalid price data")
	}
	return Decision{
		Action:    action,
		Symbol:    data.Symbol,
		Amount:    notional / data.PriceAUD,
		Price:     data.PriceAUD,
		Notional:  notional,
		Reasoning: reasoning,
	}
}
