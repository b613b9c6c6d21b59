package cex

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/zecwatch/ratequorum/pkg/sources"
)

const binanceBaseURL = "https://api.binance.com"

// BinanceVenue fetches tickers from the Binance REST API.
type BinanceVenue struct {
	*sources.BaseVenue

	apiURL string
}

// BinanceTicker represents the /api/v3/ticker/24hr response. Binance encodes
// prices and volumes as JSON strings.
type BinanceTicker struct {
	Symbol             string          `json:"symbol"`
	PriceChange        decimal.Decimal `json:"priceChange"`
	PriceChangePercent decimal.Decimal `json:"priceChangePercent"`
	WeightedAvgPrice   decimal.Decimal `json:"weightedAvgPrice"`
	PrevClosePrice     decimal.Decimal `json:"prevClosePrice"`
	LastPrice          decimal.Decimal `json:"lastPrice"`
	LastQty            decimal.Decimal `json:"lastQty"`
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
	FirstID            int64           `json:"firstId"`
	LastID             int64           `json:"lastId"`
	Count              int64           `json:"count"`
}

// NewBinanceVenue creates a new Binance venue adapter.
func NewBinanceVenue(cfg sources.FactoryConfig) (sources.Venue, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("binance: %w", ErrNoTransport)
	}

	apiURL := binanceBaseURL
	if cfg.APIURL != "" {
		apiURL = cfg.APIURL
	}

	pairs := map[sources.Pair]string{
		sources.PairZECUSD: "ZECUSDT",
	}

	return &BinanceVenue{
		BaseVenue: sources.NewBaseVenue("binance", pairs, cfg),
		apiURL:    apiURL,
	}, nil
}

// Quote fetches the current 24hr ticker and extracts best bid and ask.
func (v *BinanceVenue) Quote(ctx context.Context, pair sources.Pair) (sources.Quote, error) {
	symbol, ok := v.SymbolFor(pair)
	if !ok {
		return sources.Quote{}, fmt.Errorf("binance: %w: %s", sources.ErrPairNotRouted, pair)
	}

	url := v.apiURL + "/api/v3/ticker/24hr?symbol=" + symbol

	var ticker BinanceTicker
	if err := v.Client().GetJSON(ctx, url, &ticker); err != nil {
		return sources.Quote{}, fmt.Errorf("binance: %w", err)
	}

	quote := sources.Quote{Bid: ticker.BidPrice, Ask: ticker.AskPrice}
	v.Logger().Debug("Fetched ticker",
		"venue", v.Name(),
		"symbol", symbol,
		"bid", quote.Bid.String(),
		"ask", quote.Ask.String())

	return quote, nil
}
