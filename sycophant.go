// Package sycophant picks the single most comment-worthy post from a
// rendered social-feed page.
//
// Basic usage:
//
//	client, _ := linkedin.New(ctx, linkedin.WithBrowserCookies())
//	snap, _ := client.FeedSnapshot(ctx)
//	result := sycophant.Pick(ctx, snap)
//	if result != nil {
//	    fmt.Println(result.Post.AuthorName, result.Breakdown.Total)
//	}
//
// The pipeline is a strict downstream flow: extraction cascade →
// deduplication → exclusion filter → composite scoring → tiered
// selection. Everything after extraction is pure; the engaged-history
// sets are read-only inputs per run.
package sycophant

import (
	"context"
	"log/slog"

	"github.com/codeGROOVE-dev/sycophant/engaged"
	"github.com/codeGROOVE-dev/sycophant/extract"
	"github.com/codeGROOVE-dev/sycophant/post"
	"github.com/codeGROOVE-dev/sycophant/score"
	"github.com/codeGROOVE-dev/sycophant/signals"
)

// Result pairs the selected post with its score breakdown for logging
// and for the downstream comment-generation step.
type Result struct {
	Post      post.Post
	Breakdown post.Breakdown
}

// Option configures a pipeline run.
type Option func(*config)

type config struct {
	logger     *slog.Logger
	tables     *signals.Tables
	weights    score.Weights
	thresholds []int
	engaged    *engaged.Sets
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithTables sets the signal tables, replacing the defaults.
func WithTables(tables *signals.Tables) Option {
	return func(c *config) { c.tables = tables }
}

// WithWeights sets the composite score weights.
func WithWeights(w score.Weights) Option {
	return func(c *config) { c.weights = w }
}

// WithThresholds sets the descending acceptance tier list.
func WithThresholds(thresholds []int) Option {
	return func(c *config) { c.thresholds = thresholds }
}

// WithEngaged supplies the engagement history so already-covered posts
// and authors are skipped.
func WithEngaged(sets *engaged.Sets) Option {
	return func(c *config) { c.engaged = sets }
}

// Pick runs the full pipeline over a snapshot and returns the best
// candidate, or nil when nothing qualifies. A nil result means "try
// again later", never a failure: extraction errors degrade to zero
// candidates by design.
func Pick(ctx context.Context, snap extract.Snapshot, opts ...Option) *Result {
	cfg := newConfig(opts)

	posts := Candidates(ctx, snap, opts...)
	p, b := score.Select(posts, cfg.selectOptions())
	if p == nil {
		return nil
	}
	return &Result{Post: *p, Breakdown: *b}
}

// Candidates runs extraction and deduplication only, returning every
// surviving candidate in discovery order with batch positions filled
// in. Useful for tuning and diagnostics.
func Candidates(ctx context.Context, snap extract.Snapshot, opts ...Option) []post.Post {
	cfg := newConfig(opts)

	cascade := extract.NewCascade(cfg.tables, cfg.logger)
	posts := extract.Dedup(cascade.Extract(ctx, snap))
	for i := range posts {
		posts[i].Recency.Position = i
		posts[i].Recency.Total = len(posts)
	}
	cfg.logger.InfoContext(ctx, "candidates extracted", "count", len(posts))
	return posts
}

// Audit runs the full pipeline but returns the evaluation of every
// candidate instead of just the winner, including excluded and
// locator-less posts. This is the tuning surface: nothing here is
// persisted.
func Audit(ctx context.Context, snap extract.Snapshot, opts ...Option) []score.Evaluation {
	cfg := newConfig(opts)
	posts := Candidates(ctx, snap, opts...)
	return score.Evaluate(posts, cfg.selectOptions())
}

func newConfig(opts []Option) *config {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.tables == nil {
		cfg.tables = signals.Default()
	}
	return cfg
}

func (c *config) selectOptions() score.Options {
	opts := score.Options{
		Thresholds: c.thresholds,
		Weights:    c.weights,
		Tables:     c.tables,
		Logger:     c.logger,
	}
	if c.engaged != nil {
		opts.Engaged = c.engaged.Locators
		opts.RecentAuthors = c.engaged.Authors
	}
	return opts
}
