// Package extract pulls candidate posts out of a rendered feed page.
// It layers independent strategies in a fixed priority order and stops
// at the first one that yields results, so the pipeline keeps working
// as the page structure drifts.
package extract

import (
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
)

// Snapshot is an opaque handle to one rendered page state. The session
// collaborator that owns the browser or HTTP fetch produces snapshots;
// strategies only read them.
type Snapshot interface {
	// Document returns the parsed DOM of the page.
	Document() (*goquery.Document, error)
	// Text returns the visible text of the page with scripts stripped.
	Text() (string, error)
}

// HTMLSnapshot is a Snapshot backed by a static HTML string. The feed
// client wraps fetched pages in one, and tests use it for fixtures.
type HTMLSnapshot struct {
	html string

	once sync.Once
	doc  *goquery.Document
	err  error
}

// NewHTMLSnapshot wraps raw HTML in a Snapshot.
func NewHTMLSnapshot(html string) *HTMLSnapshot {
	return &HTMLSnapshot{html: html}
}

// Document parses the HTML once and caches the result.
func (s *HTMLSnapshot) Document() (*goquery.Document, error) {
	s.once.Do(func() {
		s.doc, s.err = goquery.NewDocumentFromReader(strings.NewReader(s.html))
	})
	return s.doc, s.err
}

// Text returns the visible text of the page with line and paragraph
// boundaries reconstructed from block-level tags.
func (s *HTMLSnapshot) Text() (string, error) {
	doc, err := s.Document()
	if err != nil {
		return "", err
	}
	return selectionText(doc.Selection), nil
}
