package cex

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/zecwatch/ratequorum/pkg/sources"
)

const kucoinStatsBody = `{
	"code": "200000",
	"data": {
		"time": 1714086400000,
		"symbol": "ZEC-USDT",
		"buy": "48.85",
		"sell": "49.15",
		"changeRate": "-0.02",
		"changePrice": "-1.0",
		"high": "51.0",
		"low": "47.9",
		"vol": "9123.0",
		"volValue": "447000.0",
		"last": "49.0",
		"averagePrice": "49.4",
		"takerFeeRate": "0.001",
		"makerFeeRate": "0.001",
		"takerCoefficient": "1",
		"makerCoefficient": "1"
	}
}`

func TestKucoinVenue_Quote(t *testing.T) {
	venue, server, err := newTestVenue(NewKucoinVenue, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("symbol"); got != "ZEC-USDT" {
			t.Errorf("Expected symbol ZEC-USDT, got %s", got)
		}
		_, _ = w.Write([]byte(kucoinStatsBody))
	})
	if err != nil {
		t.Fatalf("NewKucoinVenue failed: %v", err)
	}
	defer server.Close()

	quote, err := venue.Quote(context.Background(), sources.PairZECUSD)
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}

	if quote.Bid.String() != "48.85" {
		t.Errorf("Expected bid 48.85, got %s", quote.Bid.String())
	}
	if quote.Ask.String() != "49.15" {
		t.Errorf("Expected ask 49.15, got %s", quote.Ask.String())
	}
}

func TestKucoinVenue_APIError(t *testing.T) {
	venue, server, err := newTestVenue(NewKucoinVenue, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code": "400100", "data": {}}`))
	})
	if err != nil {
		t.Fatalf("NewKucoinVenue failed: %v", err)
	}
	defer server.Close()

	_, err = venue.Quote(context.Background(), sources.PairZECUSD)
	if !errors.Is(err, sources.ErrAPIError) {
		t.Errorf("Expected ErrAPIError, got %v", err)
	}
}
