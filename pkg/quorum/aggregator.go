package quorum

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/zecwatch/ratequorum/pkg/logging"
	"github.com/zecwatch/ratequorum/pkg/metrics"
	"github.com/zecwatch/ratequorum/pkg/sources"
)

// Aggregator queries all configured venues concurrently and reduces their
// quotes to one median rate. It holds no per-request state; a single
// Aggregator is safe for concurrent use.
type Aggregator struct {
	// others are all venues except the held-out one, in configured order.
	others []sources.Venue
	// heldOut is evaluated after the others are partitioned. Its success or
	// failure decides whether a random price is evicted to keep the sample
	// count odd, which shields it from eviction itself.
	heldOut sources.Venue
	pick    func(n int) int
	logger  *logging.Logger
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithPick overrides the random index selection used for price eviction.
// pick receives the current candidate count n and must return an index in
// [0, n). Intended for tests.
func WithPick(pick func(n int) int) Option {
	return func(a *Aggregator) {
		a.pick = pick
	}
}

// New creates an aggregator over the given venues. heldOut names the venue
// evaluated after all others; it must be one of venues.
func New(venues []sources.Venue, heldOut string, logger *logging.Logger, opts ...Option) (*Aggregator, error) {
	if len(venues) == 0 {
		return nil, fmt.Errorf("%w", ErrNoVenues)
	}
	if logger == nil {
		logger = logging.NewNoopLogger()
	}

	a := &Aggregator{
		others: make([]sources.Venue, 0, len(venues)-1),
		pick:   rand.Intn,
		logger: logger,
	}

	for _, v := range venues {
		if v.Name() == heldOut {
			a.heldOut = v
			continue
		}
		a.others = append(a.others, v)
	}
	if a.heldOut == nil {
		return nil, fmt.Errorf("%w: %s", ErrHeldOutNotConfigured, heldOut)
	}

	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// samplePoint is one successful venue mid-price.
type samplePoint struct {
	venue string
	price decimal.Decimal
}

// outcome is the result of one venue query.
type outcome struct {
	venue string
	quote sources.Quote
	err   error
}

// GetRate computes the currency/ZEC exchange rate from all configured
// venues.
//
// Returns:
//   - (rate, nil) if at least one venue query succeeds,
//   - (nil, nil) if the currency is unsupported; no venue is queried,
//   - (nil, err) if every venue query fails; err wraps the first recorded
//     venue failure and all failures are logged.
func (a *Aggregator) GetRate(ctx context.Context, currency string) (*decimal.Decimal, error) {
	pair, ok := sources.ResolvePair(currency)
	if !ok {
		a.logger.Debug("Unsupported currency", "currency", currency)
		metrics.RecordRateRequest("unsupported")
		return nil, nil
	}

	start := time.Now()
	defer func() {
		metrics.RecordAggregation(time.Since(start))
	}()

	outcomes := a.fanOut(ctx, pair)

	// Partition the non-held-out outcomes into mid-prices and errors.
	held := outcomes[len(outcomes)-1]
	prices := make([]samplePoint, 0, len(outcomes))
	errs := make([]error, 0, len(outcomes))
	for _, o := range outcomes[:len(outcomes)-1] {
		if o.err != nil {
			a.logger.Warn("Venue query failed", "venue", o.venue, "error", o.err.Error())
			errs = append(errs, o.err)
			continue
		}
		prices = append(prices, samplePoint{venue: o.venue, price: o.quote.Mid()})
	}

	// "Never go to sea with two chronometers; take one or three."
	// Randomly drop one price if necessary to have an odd number of prices.
	if held.err == nil {
		if len(prices)%2 != 0 {
			prices = a.evictRandom(prices)
		}
		prices = append(prices, samplePoint{venue: held.venue, price: held.quote.Mid()})
	} else {
		a.logger.Warn("Venue query failed", "venue", held.venue, "error", held.err.Error())
		errs = append(errs, held.err)
		if len(prices)%2 == 0 {
			prices = a.evictRandom(prices)
		}
	}

	// If all of the requests failed, return the first recorded error.
	if len(prices) == 0 {
		a.logger.Error("All venue queries failed", "currency", currency, "failures", len(errs))
		metrics.RecordRateRequest("failed")
		return nil, fmt.Errorf("%w: %w", ErrAllVenuesFailed, errs[0])
	}

	// We have an odd number of prices; take the exact middle element.
	sort.Slice(prices, func(i, j int) bool {
		return prices[i].price.LessThan(prices[j].price)
	})
	median := prices[len(prices)/2]

	a.logger.Debug("Aggregated rate",
		"currency", currency,
		"samples", len(prices),
		"venue", median.venue,
		"rate", median.price.String())
	metrics.RecordRateRequest("ok")

	rate := median.price
	return &rate, nil
}

// fanOut queries every venue concurrently and waits for all of them.
// This is a join, not a race: a slow venue is never cancelled when the
// others finish, because its opinion still counts toward the quorum. The
// held-out venue occupies the last slot.
func (a *Aggregator) fanOut(ctx context.Context, pair sources.Pair) []outcome {
	venues := make([]sources.Venue, 0, len(a.others)+1)
	venues = append(venues, a.others...)
	venues = append(venues, a.heldOut)

	outcomes := make([]outcome, len(venues))
	var g errgroup.Group
	for i, v := range venues {
		i, v := i, v
		g.Go(func() error {
			begin := time.Now()
			quote, err := v.Quote(ctx, pair)
			status := "ok"
			if err != nil {
				status = "error"
			}
			metrics.RecordVenueQuery(v.Name(), status, time.Since(begin))
			outcomes[i] = outcome{venue: v.Name(), quote: quote, err: err}
			return nil
		})
	}
	// Errors are collected per slot, never returned from the group.
	_ = g.Wait()

	return outcomes
}

// evictRandom removes one element uniformly at random. A uniform pick keeps
// any single venue from being systematically favored and leaves no fixed
// position for an attacker to target. No-op on an empty slice.
func (a *Aggregator) evictRandom(prices []samplePoint) []samplePoint {
	if len(prices) == 0 {
		return prices
	}

	i := a.pick(len(prices))
	evicted := prices[i]
	a.logger.Debug("Evicted price to keep sample count odd",
		"venue", evicted.venue,
		"price", evicted.price.String())
	metrics.RecordEviction(evicted.venue)

	return append(prices[:i], prices[i+1:]...)
}
