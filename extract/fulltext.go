package extract

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/codeGROOVE-dev/sycophant/post"
	"github.com/codeGROOVE-dev/sycophant/signals"
)

var chunkBoundary = regexp.MustCompile(`\n\s*\n`)

// Chunk windows for the full-document fallback: wide enough for a real
// post, narrow enough to reject navigation rails and merged columns.
const (
	minChunkLen   = 120
	maxChunkLen   = 6000
	minChunkWords = 15
	maxChunkWords = 1200
)

// FullText is the last-resort strategy: split the whole visible page
// into paragraph chunks and keep the ones that read like posts. Yields
// no locators, so its posts score for diagnostics but never win
// selection.
type FullText struct {
	tables *signals.Tables
}

// NewFullText builds the strategy with the given signal tables.
func NewFullText(tables *signals.Tables) *FullText {
	return &FullText{tables: tables}
}

// Name implements Strategy.
func (*FullText) Name() string { return "full-text" }

// Extract implements Strategy.
func (f *FullText) Extract(ctx context.Context, snap Snapshot) ([]post.Post, error) {
	text, err := snap.Text()
	if err != nil {
		return nil, fmt.Errorf("full-text fallback: %w", err)
	}

	var posts []post.Post
	for _, chunk := range chunkBoundary.Split(text, -1) {
		if ctx.Err() != nil {
			return posts, ctx.Err()
		}
		chunk = strings.TrimSpace(chunk)
		if !f.plausibleChunk(chunk) {
			continue
		}
		if p, ok := buildPost(splitLines(chunk), "", f.tables); ok {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (f *FullText) plausibleChunk(chunk string) bool {
	if len(chunk) < minChunkLen || len(chunk) > maxChunkLen {
		return false
	}
	words := len(strings.Fields(chunk))
	if words < minChunkWords || words > maxChunkWords {
		return false
	}
	lower := strings.ToLower(chunk)
	for _, prefix := range f.tables.NavPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}
	return true
}
