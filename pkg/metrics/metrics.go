// Package metrics provides Prometheus metrics for the rate quorum engine.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// VenueQueriesTotal is a counter of venue ticker queries by outcome.
	VenueQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "venue_queries_total",
			Help: "Total number of ticker queries sent to venues",
		},
		[]string{"venue", "status"},
	)

	// VenueQueryDuration is a histogram of venue query round-trip times.
	VenueQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "venue_query_duration_seconds",
			Help:    "Round-trip time of venue ticker queries",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"venue"},
	)

	// RateRequestsTotal is a counter of rate requests by outcome.
	RateRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_requests_total",
			Help: "Total number of rate requests (ok, unsupported, failed)",
		},
		[]string{"outcome"},
	)

	// AggregationDuration is a histogram of end-to-end aggregation duration.
	AggregationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aggregation_duration_seconds",
			Help:    "Duration of a full fan-out and median aggregation",
			Buckets: prometheus.DefBuckets,
		},
	)

	// PriceEvictionsTotal is a counter of prices randomly evicted to keep the
	// sample count odd.
	PriceEvictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "price_evictions_total",
			Help: "Total number of prices evicted by the odd-count policy",
		},
		[]string{"venue"},
	)
)

// Init registers all metrics with the default Prometheus registry.
func Init() {
	prometheus.MustRegister(
		VenueQueriesTotal,
		VenueQueryDuration,
		RateRequestsTotal,
		AggregationDuration,
		PriceEvictionsTotal,
	)
}

// ServeHTTP serves Prometheus metrics on the specified address.
func ServeHTTP(addr, path string) error {
	mux := http.NewServeMux()
	mux.Handle(path, promhttp.Handler())
	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return server.ListenAndServe()
}

// RecordVenueQuery records one venue query and its outcome.
func RecordVenueQuery(venue, status string, duration time.Duration) {
	VenueQueriesTotal.WithLabelValues(venue, status).Inc()
	VenueQueryDuration.WithLabelValues(venue).Observe(duration.Seconds())
}

// RecordRateRequest records the outcome of a rate request.
func RecordRateRequest(outcome string) {
	RateRequestsTotal.WithLabelValues(outcome).Inc()
}

// RecordAggregation records a full aggregation pass.
func RecordAggregation(duration time.Duration) {
	AggregationDuration.Observe(duration.Seconds())
}

// RecordEviction records an eviction of a venue's price.
func RecordEviction(venue string) {
	PriceEvictionsTotal.WithLabelValues(venue).Inc()
}
