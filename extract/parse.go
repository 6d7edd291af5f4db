package extract

import (
	"strings"
	"unicode"

	"github.com/codeGROOVE-dev/sycophant/post"
	"github.com/codeGROOVE-dev/sycophant/signals"
)

// Parsed is the structure recovered from one raw block of lines.
type Parsed struct {
	AuthorName     string
	AuthorHeadline string
	Body           string
	Connection     bool
}

const (
	// maxHeaderLines bounds how deep into a block the parser looks for a
	// name and headline.
	maxHeaderLines = 15
	// maxHeaderLen is the longest line still considered for name/headline.
	maxHeaderLen = 80

	maxNameWords     = 8
	maxHeadlineWords = 14
)

// ParseBlock recovers author/body structure from an ordered list of
// text lines. It never fails: when no plausible name is found the
// author defaults to post.UnknownAuthor and every line becomes body.
func ParseBlock(lines []string, tables *signals.Tables) Parsed {
	trimmed := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			trimmed = append(trimmed, l)
		}
	}

	var p Parsed
	nameIdx := -1
	bodyStart := 0

	limit := min(len(trimmed), maxHeaderLines)
	for i := range limit {
		line := trimmed[i]
		if !headerCandidate(line, tables) {
			continue
		}
		words := len(strings.Fields(line))
		if nameIdx == -1 {
			if words >= 1 && words <= maxNameWords {
				nameIdx = i
				p.AuthorName = line
				bodyStart = i + 1
			}
			continue
		}
		// Name found; the next accepted line is the headline only when it
		// is short enough, otherwise the body starts here.
		if words <= maxHeadlineWords {
			p.AuthorHeadline = line
			bodyStart = i + 1
		} else {
			bodyStart = i
		}
		break
	}

	if nameIdx == -1 {
		p.AuthorName = post.UnknownAuthor
		bodyStart = 0
	}

	p.Body = strings.Join(trimmed[bodyStart:], " ")
	p.Connection = connectionMarked(trimmed, p.AuthorHeadline, tables)
	return p
}

// headerCandidate reports whether a line could be a name or headline:
// short, URL-free, not pure digits, and not interface chrome.
func headerCandidate(line string, tables *signals.Tables) bool {
	if line == "" || len(line) > maxHeaderLen {
		return false
	}
	lower := strings.ToLower(line)
	if strings.Contains(lower, "http") || strings.Contains(lower, "www.") {
		return false
	}
	if numericLine(line) {
		return false
	}
	for _, phrase := range tables.ChromeDenylist {
		if lower == phrase {
			return false
		}
		// Chrome labels often carry a count suffix ("like · 23").
		if strings.HasPrefix(lower, phrase) && len(lower) <= len(phrase)+8 {
			return false
		}
	}
	return true
}

// numericLine reports whether a line is digits plus separators only.
func numericLine(line string) bool {
	seen := false
	for _, r := range line {
		switch {
		case unicode.IsDigit(r):
			seen = true
		case r == ',' || r == '.' || r == ' ' || r == '+':
		default:
			return false
		}
	}
	return seen
}

// connectionMarked reports whether the headline or any of the first
// three lines carries a first-degree-connection marker.
func connectionMarked(lines []string, headline string, tables *signals.Tables) bool {
	scan := []string{strings.ToLower(headline)}
	for i := 0; i < len(lines) && i < 3; i++ {
		scan = append(scan, strings.ToLower(lines[i]))
	}
	for _, s := range scan {
		for _, marker := range tables.ConnectionMarkers {
			if strings.Contains(s, marker) {
				return true
			}
		}
	}
	return false
}
