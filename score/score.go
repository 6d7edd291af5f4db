// Package score ranks candidate posts. Six independent sub-scores are
// combined through fixed weights into one 0-100 composite, and a tiered
// selector picks the single best post worth engaging with.
package score

import (
	"math"
	"strings"

	"github.com/codeGROOVE-dev/sycophant/post"
	"github.com/codeGROOVE-dev/sycophant/signals"
)

// Weights is the composite split. Values must sum to 1.0; the defaults
// are the tuned configuration, not a contract.
type Weights struct {
	Content    float64
	Engagement float64
	Visibility float64
	Seniority  float64
	Niche      float64
	Recency    float64
}

// DefaultWeights returns the reference weight configuration.
func DefaultWeights() Weights {
	return Weights{
		Content:    0.35,
		Engagement: 0.15,
		Visibility: 0.15,
		Seniority:  0.15,
		Niche:      0.10,
		Recency:    0.10,
	}
}

// Context carries the batch-position inputs the recency sub-score
// needs; everything else comes from the post itself.
type Context struct {
	Position int
	Total    int
}

// Score computes the full breakdown for one post against a threshold.
// Pure: no I/O, no mutation of the post.
func Score(p *post.Post, sctx Context, w Weights, tables *signals.Tables, threshold int) post.Breakdown {
	b := post.Breakdown{
		Content:    contentScore(p, tables),
		Engagement: engagementScore(p, tables),
		Seniority:  seniorityScore(p.AuthorHeadline, tables),
		Niche:      nicheScore(p, tables),
		Recency:    recencyScore(p.Recency.AgeLabel, sctx, tables),
		Visibility: visibilityScore(p.Engagement.Comments),
	}

	total := b.Content*w.Content +
		b.Engagement*w.Engagement +
		b.Visibility*w.Visibility +
		b.Seniority*w.Seniority +
		b.Niche*w.Niche +
		b.Recency*w.Recency

	b.Total = int(clamp(math.Round(total)))
	b.Accepted = b.Total >= threshold
	return b
}

// minContentLen is the body length below which content scores zero.
const minContentLen = 100

func contentScore(p *post.Post, tables *signals.Tables) float64 {
	body := p.Body
	if len(body) < minContentLen {
		return 0
	}
	lower := strings.ToLower(body)

	s := 25.0
	for _, tier := range []int{300, 600, 1000} {
		if len(body) > tier {
			s += 10
		}
	}

	s += 5 * float64(countMatches(lower, tables.PositiveTopics))
	s -= 10 * float64(countMatches(lower, tables.LowValue))
	if countMatches(lower, tables.StoryArc) >= 2 {
		s += 20
	}
	s -= 20 * float64(countMatches(lower, tables.AIWriting))
	if podReplies(p.CommentSamples, tables) >= 2 {
		s -= 30
	}

	// Contextual modifiers.
	r, c := p.Engagement.Reactions, p.Engagement.Comments
	if r >= 15 && r <= 150 && c <= 40 {
		s += 15 // early traction, not yet crowded
	}
	if p.Connection {
		s += 15
	}
	switch p.Format {
	case post.FormatText:
		s += 10
	case post.FormatImage, post.FormatVideo:
		s += 5
	case post.FormatPoll:
		s -= 10
	case post.FormatCarousel:
	}
	if n := len(p.CommentSamples); n > 0 {
		sum := 0
		for _, sample := range p.CommentSamples {
			sum += len(sample)
		}
		if sum/n < 50 {
			s += 20 // shallow thread, easy to stand out in
		}
	}
	if p.AuthorReplied {
		s += 20
	}

	return clamp(s)
}

func engagementScore(p *post.Post, tables *signals.Tables) float64 {
	r := p.Engagement.Reactions
	switch {
	case r < 5:
		return 10 // too new to judge
	case r > 10000:
		return 15 // viral, comment would drown
	case p.Engagement.Comments > 200:
		return 10 // too crowded already
	}

	s := math.Log10(float64(r)+1) * 20
	if r >= 20 && r <= 500 {
		s += 20 // sweet spot
	}
	if r >= 50 && freshLabel(p.Recency.AgeLabel, tables) {
		s += 20 // fast traction on a very fresh post
	}
	return clamp(s)
}

const (
	seniorityCap     = 80
	seniorityNeutral = 20
)

func seniorityScore(headline string, tables *signals.Tables) float64 {
	lower := strings.ToLower(headline)

	s := float64(seniorityNeutral)
	for _, entry := range tables.Seniority {
		if strings.Contains(lower, entry.Keyword) {
			s = math.Min(float64(entry.Points*4), seniorityCap)
			break
		}
	}
	for _, boost := range tables.ProxyBoosts {
		if strings.Contains(lower, boost.Keyword) {
			s += float64(boost.Points)
			break
		}
	}
	return clamp(s)
}

func nicheScore(p *post.Post, tables *signals.Tables) float64 {
	lower := strings.ToLower(p.AuthorHeadline + " " + p.Body)
	return clamp(15 * float64(countMatches(lower, tables.Niche)))
}

func recencyScore(ageLabel string, sctx Context, tables *signals.Tables) float64 {
	s := 50.0
	if sctx.Total > 0 {
		s = (1 - float64(sctx.Position)/float64(sctx.Total)) * 100
	}
	if freshLabel(ageLabel, tables) {
		s += 15
	}
	return clamp(s)
}

// visibilityScore favors lightly-discussed posts: a comment on a quiet
// thread is more likely to be seen.
func visibilityScore(comments int) float64 {
	switch {
	case comments <= 5:
		return 100
	case comments <= 15:
		return 80
	case comments <= 40:
		return 60
	case comments <= 100:
		return 40
	case comments <= 200:
		return 25
	default:
		return 10
	}
}

func countMatches(lower string, phrases []string) int {
	n := 0
	for _, phrase := range phrases {
		if strings.Contains(lower, phrase) {
			n++
		}
	}
	return n
}

func podReplies(samples []string, tables *signals.Tables) int {
	n := 0
	for _, s := range samples {
		if firstPhrase(strings.ToLower(s), tables.PodPhrases) != "" {
			n++
		}
	}
	return n
}

func firstPhrase(lower string, phrases []string) string {
	for _, phrase := range phrases {
		if strings.Contains(lower, phrase) {
			return phrase
		}
	}
	return ""
}

func freshLabel(label string, tables *signals.Tables) bool {
	if label == "" {
		return false
	}
	lower := strings.ToLower(label)
	for _, fresh := range tables.FreshAge {
		if strings.Contains(lower, fresh) {
			return true
		}
	}
	return false
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
