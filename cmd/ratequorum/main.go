package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zecwatch/ratequorum/pkg/config"
	"github.com/zecwatch/ratequorum/pkg/logging"
	"github.com/zecwatch/ratequorum/pkg/metrics"
	"github.com/zecwatch/ratequorum/pkg/quorum"
	"github.com/zecwatch/ratequorum/pkg/sources"
	"github.com/zecwatch/ratequorum/pkg/transport"
	"github.com/zecwatch/ratequorum/pkg/version"

	// Import venues to register them
	_ "github.com/zecwatch/ratequorum/pkg/sources/cex"
)

var (
	configFile = flag.String("config", "", "Path to configuration file (optional)")
	currency   = flag.String("currency", "USD", "Currency code to quote ZEC against")
	showVer    = flag.Bool("version", false, "Show version and exit")
)

func main() {
	flag.Parse()

	if *showVer {
		fmt.Printf("ratequorum version %s\n", version.Version)
		os.Exit(0)
	}

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Starting ratequorum", "version", version.Version, "currency", *currency)

	if cfg.Metrics.Enabled {
		metrics.Init()
		go func() {
			logger.Info("Serving metrics", "addr", cfg.Metrics.Addr, "path", cfg.Metrics.Path)
			if err := metrics.ServeHTTP(cfg.Metrics.Addr, cfg.Metrics.Path); err != nil {
				logger.Error("Metrics server stopped", "error", err.Error())
			}
		}()
	}

	client := transport.New(transport.Config{
		Timeout:   cfg.Transport.Timeout.ToDuration(),
		UserAgent: cfg.Transport.UserAgent,
	})

	venues := make([]sources.Venue, 0, len(cfg.Venues))
	for _, name := range cfg.EnabledVenues() {
		vc, _ := cfg.VenueByName(name)
		venue, err := sources.Create(name, sources.FactoryConfig{
			Client: client,
			Logger: logger,
			APIURL: vc.APIURL,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create venue %s: %v\n", name, err)
			os.Exit(1)
		}
		venues = append(venues, venue)
	}

	agg, err := quorum.New(venues, cfg.Quorum.HeldOut, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create aggregator: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rate, err := agg.GetRate(ctx, *currency)
	switch {
	case err != nil:
		logger.Error("Failed to determine rate", "currency", *currency, "error", err.Error())
		os.Exit(1)
	case rate == nil:
		fmt.Printf("currency %s is not supported\n", *currency)
	default:
		fmt.Printf("1 ZEC = %s %s\n", rate.String(), *currency)
	}
}
