package cex

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/zecwatch/ratequorum/pkg/sources"
)

const coinbaseBaseURL = "https://api.exchange.coinbase.com"

// CoinbaseVenue fetches tickers from the Coinbase Exchange REST API.
type CoinbaseVenue struct {
	*sources.BaseVenue

	apiURL string
}

// CoinbaseTicker represents the /products/{id}/ticker response.
type CoinbaseTicker struct {
	Ask               decimal.Decimal  `json:"ask"`
	Bid               decimal.Decimal  `json:"bid"`
	Volume            decimal.Decimal  `json:"volume"`
	TradeID           int64            `json:"trade_id"`
	Price             decimal.Decimal  `json:"price"`
	Size              decimal.Decimal  `json:"size"`
	Time              string           `json:"time"`
	RFQVolume         *decimal.Decimal `json:"rfq_volume,omitempty"`
	ConversionsVolume *decimal.Decimal `json:"conversions_volume,omitempty"`
}

// NewCoinbaseVenue creates a new Coinbase venue adapter.
func NewCoinbaseVenue(cfg sources.FactoryConfig) (sources.Venue, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("coinbase: %w", ErrNoTransport)
	}

	apiURL := coinbaseBaseURL
	if cfg.APIURL != "" {
		apiURL = cfg.APIURL
	}

	pairs := map[sources.Pair]string{
		sources.PairZECUSD: "ZEC-USD",
	}

	return &CoinbaseVenue{
		BaseVenue: sources.NewBaseVenue("coinbase", pairs, cfg),
		apiURL:    apiURL,
	}, nil
}

// Quote fetches the current product ticker and extracts best bid and ask.
func (v *CoinbaseVenue) Quote(ctx context.Context, pair sources.Pair) (sources.Quote, error) {
	symbol, ok := v.SymbolFor(pair)
	if !ok {
		return sources.Quote{}, fmt.Errorf("coinbase: %w: %s", sources.ErrPairNotRouted, pair)
	}

	url := v.apiURL + "/products/" + symbol + "/ticker"

	var ticker CoinbaseTicker
	if err := v.Client().GetJSON(ctx, url, &ticker); err != nil {
		return sources.Quote{}, fmt.Errorf("coinbase: %w", err)
	}

	quote := sources.Quote{Bid: ticker.Bid, Ask: ticker.Ask}
	v.Logger().Debug("Fetched ticker",
		"venue", v.Name(),
		"symbol", symbol,
		"bid", quote.Bid.String(),
		"ask", quote.Ask.String())

	return quote, nil
}
