package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/codeGROOVE-dev/sycophant/post"
)

// Engagement counts, age labels, and formats are recovered from the
// card's visible text rather than structural fields, so they survive
// markup churn.
var (
	reactionsPattern = regexp.MustCompile(`(?i)(\d[\d,.]*\s?[km]?)\s*(?:reactions?|likes?)\b`)
	commentsPattern  = regexp.MustCompile(`(?i)(\d[\d,.]*\s?[km]?)\s*comments?\b`)
	agePattern       = regexp.MustCompile(`(?i)\b(\d+\s?(?:m|min|minute|h|hr|hour|d|day|w|wk|week|mo|month|yr|year)s?)\b\s?(?:ago|·|•|$)?`)
)

// scanEngagement pulls reaction and comment counts out of card text.
// Missing counts stay zero.
func scanEngagement(text string) post.Engagement {
	var e post.Engagement
	if m := reactionsPattern.FindStringSubmatch(text); len(m) > 1 {
		e.Reactions = parseCount(m[1])
	}
	if m := commentsPattern.FindStringSubmatch(text); len(m) > 1 {
		e.Comments = parseCount(m[1])
	}
	return e
}

// scanAgeLabel returns the first relative-time label found in the text,
// or "" when none is present.
func scanAgeLabel(text string) string {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "just now") {
		return "just now"
	}
	if m := agePattern.FindStringSubmatch(text); len(m) > 1 {
		return strings.ToLower(strings.TrimSpace(m[1]))
	}
	return ""
}

// parseCount converts "1,234", "2.5K", or "3M" to an integer.
func parseCount(s string) int {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, ",", "")

	mult := 1.0
	switch {
	case strings.HasSuffix(s, "k"):
		mult = 1_000
		s = strings.TrimSpace(strings.TrimSuffix(s, "k"))
	case strings.HasSuffix(s, "m"):
		mult = 1_000_000
		s = strings.TrimSpace(strings.TrimSuffix(s, "m"))
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(f * mult)
}

// Format marker phrases, checked in order of specificity.
var formatMarkers = []struct {
	format  post.Format
	markers []string
}{
	{post.FormatPoll, []string{"see results", "· poll", "vote ·", "votes ·"}},
	{post.FormatCarousel, []string{"carousel", "· document", "slides"}},
	{post.FormatVideo, []string{"play video", "video player", "views ·"}},
	{post.FormatImage, []string{"activate to view larger image", "· photo", "image preview"}},
}

// detectFormat classifies a card's media type from its text, defaulting
// to plain text.
func detectFormat(text string) post.Format {
	lower := strings.ToLower(text)
	for _, fm := range formatMarkers {
		for _, marker := range fm.markers {
			if strings.Contains(lower, marker) {
				return fm.format
			}
		}
	}
	return post.FormatText
}
