package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBot_TargetSymbols(t *testing.T) {
	testCases := []struct {
		name     string
		symbols  string
		expected []string
	}{
		{"Empty", "", nil},
		{"Single", "BTC", []string{"BTC"}},
		{"Multiple", "BTC,ETH,SOL", []string{"BTC", "ETH", "SOL"}},
		{"WithSpaces", "BTC, ETH , SOL", []string{"BTC", "ETH", "SOL"}},
		{"TrailingComma", "BTC,", []string{"BTC"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bot := Bot{Symbols: tc.symbols}
			assert.Equal(t, tc.expected, bot.TargetSymbols())
		})
	}
}
