package cex

import (
	"context"
	"net/http"
	"testing"

	"github.com/zecwatch/ratequorum/pkg/sources"
)

const geminiTickerBody = `{
	"symbol": "ZECUSD",
	"open": "50.10",
	"high": "51.00",
	"low": "47.95",
	"close": "49.05",
	"changes": ["49.05", "49.30", "49.80"],
	"bid": "48.95",
	"ask": "49.05"
}`

func TestGeminiVenue_Quote(t *testing.T) {
	venue, server, err := newTestVenue(NewGeminiVenue, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/ticker/zecusd" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(geminiTickerBody))
	})
	if err != nil {
		t.Fatalf("NewGeminiVenue failed: %v", err)
	}
	defer server.Close()

	quote, err := venue.Quote(context.Background(), sources.PairZECUSD)
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}

	if quote.Bid.String() != "48.95" {
		t.Errorf("Expected bid 48.95, got %s", quote.Bid.String())
	}
	if quote.Ask.String() != "49.05" {
		t.Errorf("Expected ask 49.05, got %s", quote.Ask.String())
	}
	if quote.Mid().String() != "49" {
		t.Errorf("Expected mid 49, got %s", quote.Mid().String())
	}
}

func TestRegisteredVenues(t *testing.T) {
	expected := []string{"binance", "coinbase", "gateio", "gemini", "kucoin", "mexc"}
	registered := make(map[string]bool)
	for _, name := range sources.List() {
		registered[name] = true
	}
	for _, name := range expected {
		if !registered[name] {
			t.Errorf("Expected %s to be registered", name)
		}
	}
}
