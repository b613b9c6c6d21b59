package cex

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/zecwatch/ratequorum/pkg/sources"
)

const (
	kucoinBaseURL     = "https://api.kucoin.com"
	kucoinSuccessCode = "200000"
)

// KucoinVenue fetches tickers from the KuCoin REST API.
type KucoinVenue struct {
	*sources.BaseVenue

	apiURL string
}

// KucoinStats represents the market stats payload for a single symbol.
type KucoinStats struct {
	Time             int64           `json:"time"`
	Symbol           string          `json:"symbol"`
	Buy              decimal.Decimal `json:"buy"`  // Best bid price
	Sell             decimal.Decimal `json:"sell"` // Best ask price
	ChangeRate       decimal.Decimal `json:"changeRate"`
	ChangePrice      decimal.Decimal `json:"changePrice"`
	High             decimal.Decimal `json:"high"`
	Low              decimal.Decimal `json:"low"`
	Vol              decimal.Decimal `json:"vol"`
	VolValue         decimal.Decimal `json:"volValue"`
	Last             decimal.Decimal `json:"last"`
	AveragePrice     decimal.Decimal `json:"averagePrice"`
	TakerFeeRate     decimal.Decimal `json:"takerFeeRate"`
	MakerFeeRate     decimal.Decimal `json:"makerFeeRate"`
	TakerCoefficient decimal.Decimal `json:"takerCoefficient"`
	MakerCoefficient decimal.Decimal `json:"makerCoefficient"`
}

// KucoinResponse represents the API envelope wrapping every KuCoin payload.
type KucoinResponse struct {
	Code string      `json:"code"` // "200000" for success
	Data KucoinStats `json:"data"`
}

// NewKucoinVenue creates a new KuCoin venue adapter.
func NewKucoinVenue(cfg sources.FactoryConfig) (sources.Venue, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("kucoin: %w", ErrNoTransport)
	}

	apiURL := kucoinBaseURL
	if cfg.APIURL != "" {
		apiURL = cfg.APIURL
	}

	pairs := map[sources.Pair]string{
		sources.PairZECUSD: "ZEC-USDT",
	}

	return &KucoinVenue{
		BaseVenue: sources.NewBaseVenue("kucoin", pairs, cfg),
		apiURL:    apiURL,
	}, nil
}

// Quote fetches the current market stats and extracts best bid and ask.
func (v *KucoinVenue) Quote(ctx context.Context, pair sources.Pair) (sources.Quote, error) {
	symbol, ok := v.SymbolFor(pair)
	if !ok {
		return sources.Quote{}, fmt.Errorf("kucoin: %w: %s", sources.ErrPairNotRouted, pair)
	}

	url := v.apiURL + "/api/v1/market/stats?symbol=" + symbol

	var response KucoinResponse
	if err := v.Client().GetJSON(ctx, url, &response); err != nil {
		return sources.Quote{}, fmt.Errorf("kucoin: %w", err)
	}

	if response.Code != kucoinSuccessCode {
		return sources.Quote{}, fmt.Errorf("kucoin: %w: code %s", sources.ErrAPIError, response.Code)
	}

	quote := sources.Quote{Bid: response.Data.Buy, Ask: response.Data.Sell}
	v.Logger().Debug("Fetched ticker",
		"venue", v.Name(),
		"symbol", symbol,
		"bid", quote.Bid.String(),
		"ask", quote.Ask.String())

	return quote, nil
}
