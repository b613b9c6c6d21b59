package sources

import (
	"github.com/zecwatch/ratequorum/pkg/logging"
)

// BaseVenue provides the common plumbing shared by all venue adapters: the
// venue name, the static pair routing table and the transport collaborator.
// Adapters embed it and implement Quote themselves.
type BaseVenue struct {
	name   string
	pairs  map[Pair]string
	client Getter
	logger *logging.Logger
}

// NewBaseVenue creates a base venue.
// pairs maps each supported Pair to the venue-specific symbol, e.g.
// PairZECUSD -> "ZECUSDT" on binance but "ZEC-USD" on coinbase.
func NewBaseVenue(name string, pairs map[Pair]string, cfg FactoryConfig) *BaseVenue {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNoopLogger()
	}

	return &BaseVenue{
		name:   name,
		pairs:  pairs,
		client: cfg.Client,
		logger: logger,
	}
}

// Name returns the venue name.
func (b *BaseVenue) Name() string {
	return b.name
}

// SymbolFor returns the venue-specific symbol for pair.
func (b *BaseVenue) SymbolFor(pair Pair) (string, bool) {
	symbol, ok := b.pairs[pair]
	return symbol, ok
}

// Client returns the transport collaborator.
func (b *BaseVenue) Client() Getter {
	return b.client
}

// Logger returns the logger.
func (b *BaseVenue) Logger() *logging.Logger {
	return b.logger
}
