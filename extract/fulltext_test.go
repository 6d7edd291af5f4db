package extract

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/codeGROOVE-dev/sycophant/signals"
)

// textSnapshot serves raw text without a DOM behind it.
type textSnapshot string

func (textSnapshot) Document() (*goquery.Document, error) {
	return nil, errors.New("no document")
}

func (s textSnapshot) Text() (string, error) { return string(s), nil }

func TestFullTextExtract(t *testing.T) {
	postChunk := "Jane Doe\nFounder at Acme\n" +
		"The hardest part of bootstrapping was not the money, it was telling customers no. " +
		"Saying no to the wrong revenue kept the product small enough to actually finish."
	navChunk := "Home\nMy Network\nJobs\nMessaging\nNotifications and other rail items " +
		"stacked together into one block of navigation text that is plenty long enough"
	shortChunk := "too short to be a post"
	oneWordChunk := strings.Repeat("x", 200)

	text := strings.Join([]string{navChunk, shortChunk, postChunk, oneWordChunk}, "\n\n")

	f := NewFullText(signals.Default())
	posts, err := f.Extract(context.Background(), textSnapshot(text))
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("Extract() returned %d posts, want 1: %+v", len(posts), posts)
	}

	p := posts[0]
	if p.Locator != "" {
		t.Errorf("Locator = %q, want empty: full-text posts are not actionable", p.Locator)
	}
	if p.AuthorName != "Jane Doe" || p.AuthorHeadline != "Founder at Acme" {
		t.Errorf("header = %q / %q", p.AuthorName, p.AuthorHeadline)
	}
	if !strings.HasPrefix(p.Body, "The hardest part of bootstrapping") {
		t.Errorf("Body = %q", p.Body)
	}
}

func TestFullTextBlankPage(t *testing.T) {
	f := NewFullText(signals.Default())
	posts, err := f.Extract(context.Background(), textSnapshot(""))
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("Extract() = %+v, want none", posts)
	}
}

func TestPlausibleChunk(t *testing.T) {
	f := NewFullText(signals.Default())
	tests := []struct {
		name  string
		chunk string
		want  bool
	}{
		{"post-like", strings.Repeat("plausible words in a row ", 10), true},
		{"too short", "tiny", false},
		{"one giant word", strings.Repeat("x", 500), false},
		{"nav prefix", "Jobs " + strings.Repeat("and more chrome text ", 10), false},
		{"too long", strings.Repeat("word ", 2000), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.plausibleChunk(tt.chunk); got != tt.want {
				t.Errorf("plausibleChunk() = %v, want %v", got, tt.want)
			}
		})
	}
}
