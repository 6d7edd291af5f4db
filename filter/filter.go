// Package filter applies hard, score-independent exclusion rules to
// candidate posts before ranking.
package filter

import (
	"fmt"
	"strings"

	"github.com/codeGROOVE-dev/sycophant/post"
	"github.com/codeGROOVE-dev/sycophant/signals"
)

// Text windows per rule group. The author-signal groups (job-seeking,
// junior) share one window; hiring phrases are often buried past the
// opening lines, so the recruitment window is the widest.
const (
	authorWindow      = 400
	recruitmentWindow = 800
	griefWindow       = 600
)

// Result reports whether a post was excluded and why.
type Result struct {
	Excluded bool
	Reason   string
}

// ShouldExclude evaluates the rule groups in fixed priority order,
// short-circuiting at the first match:
//
//  1. job-seeking author signals (name + headline + body head)
//  2. student/junior author signals (same window)
//  3. recruitment/job-ad signals (body only, wider window)
//  4. grief/tragedy signals (body) — automated engagement with grief
//     content is never acceptable, whatever the score says
func ShouldExclude(p *post.Post, tables *signals.Tables) Result {
	authorText := strings.ToLower(p.AuthorName + " " + p.AuthorHeadline + " " + head(p.Body, authorWindow))
	body := strings.ToLower(p.Body)

	if phrase := firstMatch(authorText, tables.OpenToWork); phrase != "" {
		return Result{Excluded: true, Reason: fmt.Sprintf("author is job-seeking: %q", phrase)}
	}
	if phrase := firstMatch(authorText, tables.JuniorStudent); phrase != "" {
		return Result{Excluded: true, Reason: fmt.Sprintf("author is a student or junior: %q", phrase)}
	}
	if phrase := firstMatch(head(body, recruitmentWindow), tables.Recruitment); phrase != "" {
		return Result{Excluded: true, Reason: fmt.Sprintf("recruitment post: %q", phrase)}
	}
	if phrase := firstMatch(head(body, griefWindow), tables.Grief); phrase != "" {
		return Result{Excluded: true, Reason: fmt.Sprintf("grief or tragedy content: %q", phrase)}
	}
	return Result{}
}

// firstMatch returns the first phrase found in text, or "".
func firstMatch(text string, phrases []string) string {
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			return phrase
		}
	}
	return ""
}

// head returns the first n characters of s, rune-safe.
func head(s string, n int) string {
	return post.BodyPrefix(s, n)
}
