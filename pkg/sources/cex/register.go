package cex

import (
	"github.com/zecwatch/ratequorum/pkg/sources"
)

func init() {
	// Register all CEX venues
	sources.Register("binance", NewBinanceVenue)
	sources.Register("coinbase", NewCoinbaseVenue)
	sources.Register("gateio", NewGateioVenue)
	sources.Register("gemini", NewGeminiVenue)
	sources.Register("kucoin", NewKucoinVenue)
	sources.Register("mexc", NewMexcVenue)
}
