package cex

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/zecwatch/ratequorum/pkg/sources"
)

const geminiBaseURL = "https://api.gemini.com"

// GeminiVenue fetches tickers from the Gemini REST API.
type GeminiVenue struct {
	*sources.BaseVenue

	apiURL string
}

// GeminiTicker represents the /v2/ticker/{symbol} response.
type GeminiTicker struct {
	Symbol  string            `json:"symbol"`
	Open    decimal.Decimal   `json:"open"`
	High    decimal.Decimal   `json:"high"`
	Low     decimal.Decimal   `json:"low"`
	Close   decimal.Decimal   `json:"close"`
	Changes []decimal.Decimal `json:"changes"`
	Bid     decimal.Decimal   `json:"bid"`
	Ask     decimal.Decimal   `json:"ask"`
}

// NewGeminiVenue creates a new Gemini venue adapter.
func NewGeminiVenue(cfg sources.FactoryConfig) (sources.Venue, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("gemini: %w", ErrNoTransport)
	}

	apiURL := geminiBaseURL
	if cfg.APIURL != "" {
		apiURL = cfg.APIURL
	}

	pairs := map[sources.Pair]string{
		sources.PairZECUSD: "zecusd",
	}

	return &GeminiVenue{
		BaseVenue: sources.NewBaseVenue("gemini", pairs, cfg),
		apiURL:    apiURL,
	}, nil
}

// Quote fetches the current ticker and extracts best bid and ask.
func (v *GeminiVenue) Quote(ctx context.Context, pair sources.Pair) (sources.Quote, error) {
	symbol, ok := v.SymbolFor(pair)
	if !ok {
		return sources.Quote{}, fmt.Errorf("gemini: %w: %s", sources.ErrPairNotRouted, pair)
	}

	url := v.apiURL + "/v2/ticker/" + symbol

	var ticker GeminiTicker
	if err := v.Client().GetJSON(ctx, url, &ticker); err != nil {
		return sources.Quote{}, fmt.Errorf("gemini: %w", err)
	}

	quote := sources.Quote{Bid: ticker.Bid, Ask: ticker.Ask}
	v.Logger().Debug("Fetched ticker",
		"venue", v.Name(),
		"symbol", symbol,
		"bid", quote.Bid.String(),
		"ask", quote.Ask.String())

	return quote, nil
}
