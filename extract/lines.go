package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Rendered pages rarely preserve line structure in their text nodes, so
// line boundaries are reconstructed from block-level tags instead.
var (
	lineBreakTags = map[string]bool{
		"div": true, "p": true, "li": true, "br": true, "tr": true,
		"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	}
	paragraphBreakTags = map[string]bool{
		"section": true, "article": true, "main": true, "header": true, "footer": true,
	}
	skipTags = map[string]bool{"script": true, "style": true, "noscript": true}
)

// selectionLines returns the visible text of a selection as trimmed,
// non-empty lines, one per block-level boundary.
func selectionLines(sel *goquery.Selection) []string {
	return splitLines(selectionText(sel))
}

// selectionText flattens a selection to text, inserting single newlines
// at line-level tags and blank lines at container tags so downstream
// paragraph chunking has boundaries to work with.
func selectionText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		writeNodeText(&b, n)
	}
	return b.String()
}

func writeNodeText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	if n.Type == html.ElementNode && skipTags[n.Data] {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNodeText(b, c)
	}
	if n.Type != html.ElementNode {
		return
	}
	switch {
	case paragraphBreakTags[n.Data]:
		b.WriteString("\n\n")
	case lineBreakTags[n.Data]:
		b.WriteString("\n")
	}
}
