package extract

import (
	"context"
	"fmt"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/codeGROOVE-dev/sycophant/post"
	"github.com/codeGROOVE-dev/sycophant/signals"
)

// Elements decorated with a content-identity attribute carry the post
// URN directly; no anchor needed.
const identitySelector = `[data-urn], [data-id]`

var activityURNPattern = regexp.MustCompile(`urn:li:activity:\d+`)

// AttrWalk locates elements carrying a stable content-identity
// attribute and derives a canonical locator from the identity token.
type AttrWalk struct {
	tables *signals.Tables
}

// NewAttrWalk builds the strategy with the given signal tables.
func NewAttrWalk(tables *signals.Tables) *AttrWalk {
	return &AttrWalk{tables: tables}
}

// Name implements Strategy.
func (*AttrWalk) Name() string { return "attribute-walk" }

// Extract implements Strategy.
func (w *AttrWalk) Extract(ctx context.Context, snap Snapshot) ([]post.Post, error) {
	doc, err := snap.Document()
	if err != nil {
		return nil, fmt.Errorf("attribute walk: %w", err)
	}

	var posts []post.Post
	seen := make(map[string]bool)

	doc.Find(identitySelector).EachWithBreak(func(_ int, el *goquery.Selection) bool {
		if ctx.Err() != nil {
			return false
		}
		token, ok := el.Attr("data-urn")
		if !ok {
			token, _ = el.Attr("data-id")
		}
		urn := activityURNPattern.FindString(token)
		if urn == "" {
			return true
		}
		locator := "https://www.linkedin.com/feed/update/" + urn
		if seen[locator] {
			return true
		}
		seen[locator] = true

		p, ok := buildPost(selectionLines(el), locator, w.tables)
		if !ok {
			return true
		}
		p.CommentSamples, p.AuthorReplied = commentSamples(el, p.AuthorName)
		posts = append(posts, p)
		return true
	})

	return posts, ctx.Err()
}
