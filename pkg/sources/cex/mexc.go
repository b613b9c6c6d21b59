package cex

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/zecwatch/ratequorum/pkg/sources"
)

const mexcBaseURL = "https://api.mexc.com"

// MexcVenue fetches tickers from the MEXC REST API.
type MexcVenue struct {
	*sources.BaseVenue

	apiURL string
}

// MexcTicker represents the /api/v3/ticker/24hr response. The shape tracks
// Binance's but omits the weighted average and trade id fields.
type MexcTicker struct {
	Symbol             string          `json:"symbol"`
	PriceChange        decimal.Decimal `json:"priceChange"`
	PriceChangePercent decimal.Decimal `json:"priceChangePercent"`
	PrevClosePrice     decimal.Decimal `json:"prevClosePrice"`
	LastPrice          decimal.Decimal `json:"lastPrice"`
	BidPrice           decimal.Decimal `json:"bidPrice"`
	BidQty             decimal.Decimal `json:"bidQty"`
	AskPrice           decimal.Decimal `json:"askPrice"`
	AskQty             decimal.Decimal `json:"askQty"`
	OpenPrice          decimal.Decimal `json:"openPrice"`
	HighPrice          decimal.Decimal `json:"highPrice"`
	LowPrice           decimal.Decimal `json:"lowPrice"`
	Volume             decimal.Decimal `json:"volume"`
	QuoteVolume        decimal.Decimal `json:"quoteVolume"`
	OpenTime           int64           `json:"openTime"`
	CloseTime          int64           `json:"closeTime"`
}

// NewMexcVenue creates a new MEXC venue adapter.
func NewMexcVenue(cfg sources.FactoryConfig) (sources.Venue, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("mexc: %w", ErrNoTransport)
	}

	apiURL := mexcBaseURL
	if cfg.APIURL != "" {
		apiURL = cfg.APIURL
	}

	pairs := map[sources.Pair]string{
		sources.PairZECUSD: "ZECUSDT",
	}

	return &MexcVenue{
		BaseVenue: sources.NewBaseVenue("mexc", pairs, cfg),
		apiURL:    apiURL,
	}, nil
}

// Quote fetches the current 24hr ticker and extracts best bid and ask.
func (v *MexcVenue) Quote(ctx context.Context, pair sources.Pair) (sources.Quote, error) {
	symbol, ok := v.SymbolFor(pair)
	if !ok {
		return sources.Quote{}, fmt.Errorf("mexc: %w: %s", sources.ErrPairNotRouted, pair)
	}

	url := v.apiURL + "/api/v3/ticker/24hr?symbol=" + symbol

	var ticker MexcTicker
	if err := v.Client().GetJSON(ctx, url, &ticker); err != nil {
		return sources.Quote{}, fmt.Errorf("mexc: %w", err)
	}

	quote := sources.Quote{Bid: ticker.BidPrice, Ask: ticker.AskPrice}
	v.Logger().Debug("Fetched ticker",
		"venue", v.Name(),
		"symbol", symbol,
		"bid", quote.Bid.String(),
		"ask", quote.Ask.String())

	return quote, nil
}
