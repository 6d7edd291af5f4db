// Command sycophant fetches the feed and prints the post most worth
// engaging with, plus its score breakdown.
//
// Usage:
//
//	sycophant                  # requires LINKEDIN_* env vars or browser cookies
//	sycophant -audit           # print every candidate's evaluation
//	sycophant -engaged seen.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/sycophant"
	"github.com/codeGROOVE-dev/sycophant/engaged"
	"github.com/codeGROOVE-dev/sycophant/httpcache"
	"github.com/codeGROOVE-dev/sycophant/linkedin"
	"github.com/codeGROOVE-dev/sycophant/signals"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	noBrowser := flag.Bool("no-browser", false, "disable reading cookies from browser stores (enabled by default)")
	noCache := flag.Bool("no-cache", false, "disable HTTP caching")
	cacheTTL := flag.Duration("cache-ttl", 10*time.Minute, "cache time-to-live for feed pages")
	auditMode := flag.Bool("audit", false, "print every candidate's evaluation instead of just the winner")
	signalsPath := flag.String("signals", "", "YAML file overriding the built-in signal tables")
	engagedPath := flag.String("engaged", "", "JSON file with already-engaged locators and authors")
	thresholdsArg := flag.String("thresholds", "", "descending acceptance tiers, e.g. 80,70,60")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	var cache *httpcache.Cache
	if !*noCache {
		var err error
		cache, err = httpcache.New(*cacheTTL)
		if err != nil {
			logger.Warn("failed to initialize cache, continuing without cache", "error", err)
			cache = nil
		}
	}

	opts := []sycophant.Option{sycophant.WithLogger(logger)}

	if *signalsPath != "" {
		tables, err := signals.Load(*signalsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Debug("signal tables loaded", "path", *signalsPath, "version", tables.Version)
		opts = append(opts, sycophant.WithTables(tables))
	}

	if *engagedPath != "" {
		sets, err := engaged.Load(*engagedPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Debug("engaged sets loaded", "locators", len(sets.Locators), "authors", len(sets.Authors))
		opts = append(opts, sycophant.WithEngaged(sets))
	}

	if *thresholdsArg != "" {
		thresholds, err := parseThresholds(*thresholdsArg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, sycophant.WithThresholds(thresholds))
	}

	var clientOpts []linkedin.Option
	clientOpts = append(clientOpts, linkedin.WithLogger(logger))
	if !*noBrowser {
		clientOpts = append(clientOpts, linkedin.WithBrowserCookies())
	}
	if cache != nil {
		clientOpts = append(clientOpts, linkedin.WithHTTPCache(cache))
	}

	ctx := context.Background()

	client, err := linkedin.New(ctx, clientOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Prime the cache so the snapshot below is served from it.
	if cache != nil {
		if err := client.WarmFeed(ctx); err != nil {
			logger.Warn("feed warm-up failed", "error", err)
		}
	}

	snap, err := client.FeedSnapshot(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *auditMode {
		evals := sycophant.Audit(ctx, snap, opts...)
		if err := outputJSON(evals); err != nil {
			fmt.Fprintf(os.Stderr, "Output error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	result := sycophant.Pick(ctx, snap, opts...)
	if result == nil {
		fmt.Fprintln(os.Stderr, "No candidate met any threshold; try again later.")
		os.Exit(2)
	}
	if err := outputJSON(result); err != nil {
		fmt.Fprintf(os.Stderr, "Output error: %v\n", err)
		os.Exit(1)
	}
}

func parseThresholds(arg string) ([]int, error) {
	parts := strings.Split(arg, ",")
	thresholds := make([]int, 0, len(parts))
	prev := 101
	for _, part := range parts {
		t, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid threshold %q: %w", part, err)
		}
		if t < 0 || t > 100 || t >= prev {
			return nil, fmt.Errorf("thresholds must be distinct, descending, and within 0-100: %q", arg)
		}
		thresholds = append(thresholds, t)
		prev = t
	}
	return thresholds, nil
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
