package cex

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/zecwatch/ratequorum/pkg/sources"
	"github.com/zecwatch/ratequorum/pkg/transport"
)

const gateioBaseURL = "https://api.gateio.ws"

// GateioVenue fetches tickers from the Gate.io REST API.
type GateioVenue struct {
	*sources.BaseVenue

	apiURL string
}

// GateioTicker represents one element of the /api/v4/spot/tickers response.
// The endpoint returns a list even when filtered to a single currency pair.
type GateioTicker struct {
	CurrencyPair     string          `json:"currency_pair"`
	Last             decimal.Decimal `json:"last"`
	LowestAsk        decimal.Decimal `json:"lowest_ask"`
	HighestBid       decimal.Decimal `json:"highest_bid"`
	ChangePercentage decimal.Decimal `json:"change_percentage"`
	BaseVolume       decimal.Decimal `json:"base_volume"`
	QuoteVolume      decimal.Decimal `json:"quote_volume"`
	High24h          decimal.Decimal `json:"high_24h"`
	Low24h           decimal.Decimal `json:"low_24h"`
}

// NewGateioVenue creates a new Gate.io venue adapter.
func NewGateioVenue(cfg sources.FactoryConfig) (sources.Venue, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("gateio: %w", ErrNoTransport)
	}

	apiURL := gateioBaseURL
	if cfg.APIURL != "" {
		apiURL = cfg.APIURL
	}

	pairs := map[sources.Pair]string{
		sources.PairZECUSD: "ZEC_USDT",
	}

	return &GateioVenue{
		BaseVenue: sources.NewBaseVenue("gateio", pairs, cfg),
		apiURL:    apiURL,
	}, nil
}

// Quote fetches the current spot ticker and extracts best bid and ask.
// An empty ticker list means the pair is not being served; that is reported
// as an HTTP 410 status error, the same as a failed request.
func (v *GateioVenue) Quote(ctx context.Context, pair sources.Pair) (sources.Quote, error) {
	symbol, ok := v.SymbolFor(pair)
	if !ok {
		return sources.Quote{}, fmt.Errorf("gateio: %w: %s", sources.ErrPairNotRouted, pair)
	}

	url := v.apiURL + "/api/v4/spot/tickers?currency_pair=" + symbol

	var tickers []GateioTicker
	if err := v.Client().GetJSON(ctx, url, &tickers); err != nil {
		return sources.Quote{}, fmt.Errorf("gateio: %w", err)
	}

	if len(tickers) == 0 {
		return sources.Quote{}, fmt.Errorf("gateio %s: %w", symbol, &transport.StatusError{Code: http.StatusGone})
	}

	ticker := tickers[0]
	quote := sources.Quote{Bid: ticker.HighestBid, Ask: ticker.LowestAsk}
	v.Logger().Debug("Fetched ticker",
		"venue", v.Name(),
		"symbol", symbol,
		"bid", quote.Bid.String(),
		"ask", quote.Ask.String())

	return quote, nil
}
