package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/codeGROOVE-dev/sycophant/post"
	"github.com/codeGROOVE-dev/sycophant/signals"
)

// MinBodyLen is the shortest body any strategy will keep. Shorter
// blocks are chrome fragments, not posts.
const MinBodyLen = 80

// Strategy extracts zero or more candidate posts from a page snapshot.
// Implementations must be independently usable against a synthetic
// snapshot fixture.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, snap Snapshot) ([]post.Post, error)
}

// Cascade tries strategies in priority order and stops at the first one
// that yields at least one post. Strategy errors and panics downgrade
// to "zero results"; a missing signal beats a crashed pipeline.
type Cascade struct {
	strategies []Strategy
	logger     *slog.Logger
}

// NewCascade builds the default cascade: anchor walk, then attribute
// walk, then the locator-less full-text fallback. Ordering favors
// strategies that yield an actionable locator.
func NewCascade(tables *signals.Tables, logger *slog.Logger) *Cascade {
	if tables == nil {
		tables = signals.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cascade{
		strategies: []Strategy{
			&AnchorWalk{tables: tables},
			&AttrWalk{tables: tables},
			&FullText{tables: tables},
		},
		logger: logger,
	}
}

// NewCascadeWith builds a cascade over an explicit strategy list, in
// the given priority order.
func NewCascadeWith(logger *slog.Logger, strategies ...Strategy) *Cascade {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cascade{strategies: strategies, logger: logger}
}

// Extract runs the cascade. It always returns a (possibly empty) slice,
// never an error.
func (c *Cascade) Extract(ctx context.Context, snap Snapshot) []post.Post {
	for _, s := range c.strategies {
		posts, err := runStrategy(ctx, s, snap)
		if err != nil {
			c.logger.WarnContext(ctx, "extraction strategy failed", "strategy", s.Name(), "error", err)
			continue
		}
		if len(posts) == 0 {
			c.logger.DebugContext(ctx, "extraction strategy empty", "strategy", s.Name())
			continue
		}
		c.logger.InfoContext(ctx, "extraction strategy succeeded", "strategy", s.Name(), "posts", len(posts))
		return posts
	}
	c.logger.InfoContext(ctx, "all extraction strategies empty")
	return nil
}

// runStrategy isolates one strategy invocation, converting panics into
// errors so a single brittle selector cannot take down the cascade.
func runStrategy(ctx context.Context, s Strategy, snap Snapshot) (posts []post.Post, err error) {
	defer func() {
		if r := recover(); r != nil {
			posts = nil
			err = fmt.Errorf("strategy %s panicked: %v", s.Name(), r)
		}
	}()
	return s.Extract(ctx, snap)
}

// buildPost parses a raw block and assembles a post, returning false
// when the body is too short to keep.
func buildPost(lines []string, locator string, tables *signals.Tables) (post.Post, bool) {
	parsed := ParseBlock(lines, tables)
	if len(parsed.Body) < MinBodyLen {
		return post.Post{}, false
	}

	text := strings.Join(lines, "\n")
	return post.Post{
		Locator:        locator,
		AuthorName:     parsed.AuthorName,
		AuthorHeadline: parsed.AuthorHeadline,
		Body:           parsed.Body,
		Connection:     parsed.Connection,
		Format:         detectFormat(text),
		Engagement:     scanEngagement(text),
		Recency:        post.RecencyProxy{AgeLabel: scanAgeLabel(text)},
	}, true
}

// splitLines breaks a text blob into trimmed, non-empty lines.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
