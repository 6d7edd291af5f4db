package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/codeGROOVE-dev/sycophant/post"
	"github.com/codeGROOVE-dev/sycophant/signals"
)

// Permalink URL shapes and destinations that never lead to feed posts.
// Isolated here because the page changes these more often than anything
// else.
var (
	permalinkShapes = []string{"/feed/update/", "/posts/", "urn:li:activity"}

	nonContentPaths = []string{
		"/company/", "/school/", "/jobs/", "/learning/",
		"/messaging", "/notifications", "/search", "/groups/",
	}
)

// Card container text must fall in this window to be plausible; below
// it is a bare link, above it is the whole feed column.
const (
	minCardLen = 150
	maxCardLen = 30000
)

// commentSelector locates reply elements inside a card container.
const commentSelector = `[class*="comments-comment"], [data-id*="comment"]`

// maxCommentSamples bounds how many reply snippets are kept per post.
const maxCommentSamples = 5

// AnchorWalk finds permalink-shaped hyperlinks and walks up from each
// to the smallest containing element that looks like one post card.
// Highest-priority strategy: every post it yields has a locator.
type AnchorWalk struct {
	tables *signals.Tables
}

// NewAnchorWalk builds the strategy with the given signal tables.
func NewAnchorWalk(tables *signals.Tables) *AnchorWalk {
	return &AnchorWalk{tables: tables}
}

// Name implements Strategy.
func (*AnchorWalk) Name() string { return "anchor-walk" }

// Extract implements Strategy.
func (w *AnchorWalk) Extract(ctx context.Context, snap Snapshot) ([]post.Post, error) {
	doc, err := snap.Document()
	if err != nil {
		return nil, fmt.Errorf("anchor walk: %w", err)
	}

	var posts []post.Post
	seen := make(map[string]bool)

	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if ctx.Err() != nil {
			return false
		}
		href, _ := a.Attr("href")
		locator := CanonicalLocator(href)
		if locator == "" || seen[locator] {
			return true
		}
		seen[locator] = true

		card := containingCard(a)
		if card == nil {
			return true
		}

		p, ok := buildPost(selectionLines(card), locator, w.tables)
		if !ok {
			return true
		}
		p.CommentSamples, p.AuthorReplied = commentSamples(card, p.AuthorName)
		posts = append(posts, p)
		return true
	})

	return posts, ctx.Err()
}

// CanonicalLocator normalizes a permalink-shaped href to a stable
// absolute URL, or returns "" when the href is not a post permalink.
func CanonicalLocator(href string) string {
	if href == "" {
		return ""
	}
	lower := strings.ToLower(href)

	shaped := false
	for _, shape := range permalinkShapes {
		if strings.Contains(lower, shape) {
			shaped = true
			break
		}
	}
	if !shaped {
		return ""
	}
	for _, path := range nonContentPaths {
		if strings.Contains(lower, path) {
			return ""
		}
	}

	// Strip query and fragment; tracking params make the same post look
	// like many.
	if idx := strings.IndexAny(href, "?#"); idx >= 0 {
		href = href[:idx]
	}
	href = strings.TrimSuffix(href, "/")

	if strings.HasPrefix(href, "/") {
		href = "https://www.linkedin.com" + href
	}
	return href
}

// containingCard walks upward from an anchor until it finds an element
// whose visible text length falls in the plausible card window.
func containingCard(a *goquery.Selection) *goquery.Selection {
	for p := a.Parent(); p.Length() > 0; p = p.Parent() {
		n := len(strings.TrimSpace(selectionText(p)))
		if n >= minCardLen && n <= maxCardLen {
			return p
		}
		if n > maxCardLen {
			return nil
		}
	}
	return nil
}

// commentSamples collects up to maxCommentSamples reply snippets from a
// card and reports whether the author appears in any of them.
func commentSamples(card *goquery.Selection, author string) (samples []string, authorReplied bool) {
	card.Find(commentSelector).EachWithBreak(func(_ int, c *goquery.Selection) bool {
		text := strings.TrimSpace(strings.Join(selectionLines(c), " "))
		if text == "" {
			return true
		}
		if author != "" && author != post.UnknownAuthor && strings.Contains(text, author) {
			authorReplied = true
		}
		samples = append(samples, text)
		return len(samples) < maxCommentSamples
	})
	return samples, authorReplied
}
