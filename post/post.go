// Package post defines the candidate record types shared by the
// extraction, filtering, and scoring pipeline.
package post

import "errors"

// UnknownAuthor is the sentinel author name used when no name can be
// recovered from a text block.
const UnknownAuthor = "Unknown"

// Common errors returned by pipeline packages.
var (
	ErrAuthRequired = errors.New("authentication required")
	ErrNoCookies    = errors.New("no cookies available")
)

// Format classifies the media type of a feed post.
type Format string

// Known post formats.
const (
	FormatText     Format = "text"
	FormatImage    Format = "image"
	FormatVideo    Format = "video"
	FormatCarousel Format = "carousel"
	FormatPoll     Format = "poll"
)

// Engagement holds reaction and comment counts recovered from a
// secondary text scan, not from structural fields.
type Engagement struct {
	Reactions int
	Comments  int
}

// RecencyProxy approximates post age. Position and Total describe where
// the post appeared in the extracted batch (earlier = more recent);
// AgeLabel is the raw relative-time text when one was found (e.g. "3d").
type RecencyProxy struct {
	Position int
	Total    int
	AgeLabel string
}

// Post is one candidate item extracted from a feed page.
//
//nolint:govet // fieldalignment: intentional layout for readability
type Post struct {
	// Locator is a stable permalink for the underlying item. Empty means
	// the post cannot be acted on downstream and is kept for diagnostics
	// only; selection never returns a locator-less post.
	Locator string

	AuthorName     string
	AuthorHeadline string
	Body           string
	Connection     bool // author appears to be a first-degree connection
	Format         Format
	Engagement     Engagement

	CommentSamples []string
	AuthorReplied  bool

	Recency RecencyProxy
}

// KeyPrefixLen is the number of body characters used as the fallback
// dedup identity when a post has no locator.
const KeyPrefixLen = 60

// Key returns the dedup identity: the locator when present, otherwise
// the first KeyPrefixLen characters of the body.
func (p *Post) Key() string {
	if p.Locator != "" {
		return p.Locator
	}
	return BodyPrefix(p.Body, KeyPrefixLen)
}

// BodyPrefix returns the first n characters of s, counting runes so a
// multibyte body never splits mid-character.
func BodyPrefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Breakdown holds the six sub-scores and their weighted composite for
// one post. Sub-scores are clamped to [0,100]; Total is the rounded,
// clamped weighted sum. Breakdowns are transient: computed per
// selection run and never persisted.
type Breakdown struct {
	Content    float64
	Engagement float64
	Seniority  float64
	Niche      float64
	Recency    float64
	Visibility float64

	Total    int
	Accepted bool
}
