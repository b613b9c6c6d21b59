package sources

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/zecwatch/ratequorum/pkg/logging"
)

// Quote is a venue's current best bid and best ask for a trading pair,
// normalized from the venue-specific wire format. A Quote is immutable after
// construction and never outlives the request that produced it.
type Quote struct {
	Bid decimal.Decimal
	Ask decimal.Decimal
}

var two = decimal.NewFromInt(2)

// Mid returns the mid-point between current best bid and current best ask,
// to avoid manipulation by targeted trade fulfilment.
func (q Quote) Mid() decimal.Decimal {
	return q.Bid.Add(q.Ask).Div(two)
}

// Getter is the transport contract consumed by venue adapters: one HTTP GET,
// decoded into out. Implementations must be safe for concurrent use.
type Getter interface {
	GetJSON(ctx context.Context, url string, out interface{}) error
}

// Venue is one external exchange price source. Implementations are
// stateless: each Quote call performs exactly one outbound request and
// never retries.
type Venue interface {
	// Name returns the unique name of this venue.
	Name() string

	// SymbolFor returns the venue-specific trading-pair symbol for pair.
	SymbolFor(pair Pair) (string, bool)

	// Quote fetches the venue's current ticker for pair and normalizes it.
	Quote(ctx context.Context, pair Pair) (Quote, error)
}

// FactoryConfig carries the collaborators a venue adapter needs.
type FactoryConfig struct {
	Client Getter
	Logger *logging.Logger
	// APIURL overrides the venue's default ticker endpoint when non-empty.
	APIURL string
}

// Factory is a function that creates a new Venue instance.
type Factory func(cfg FactoryConfig) (Venue, error)
