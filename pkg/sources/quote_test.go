package sources

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQuote_Mid(t *testing.T) {
	tests := []struct {
		name string
		bid  string
		ask  string
		mid  string
	}{
		{name: "symmetric", bid: "48.90", ask: "49.10", mid: "49"},
		{name: "equal", bid: "49", ask: "49", mid: "49"},
		{name: "wide spread", bid: "10", ask: "50", mid: "30"},
		{name: "small values", bid: "0.0001", ask: "0.0003", mid: "0.0002"},
		// Bid above ask is not validated; the midpoint is still well defined.
		{name: "crossed book", bid: "50", ask: "48", mid: "49"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Quote{
				Bid: decimal.RequireFromString(tt.bid),
				Ask: decimal.RequireFromString(tt.ask),
			}
			assert.True(t, q.Mid().Equal(decimal.RequireFromString(tt.mid)),
				"mid of (%s, %s) = %s, want %s", tt.bid, tt.ask, q.Mid().String(), tt.mid)
		})
	}
}
