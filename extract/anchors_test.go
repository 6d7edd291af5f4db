package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/codeGROOVE-dev/sycophant/signals"
)

const feedFixture = `<html><body>
<main>
  <div class="feed-card">
    <div>Jane Doe</div>
    <div>Founder at Acme · 1st</div>
    <a href="/feed/update/urn:li:activity:1111?utm_source=share">2h ago</a>
    <div>Shipping quietly for ten years taught me more than any launch day ever did.
         Here is the lesson I keep coming back to when hiring engineers for small teams.</div>
    <div>120 reactions · 12 comments</div>
    <div class="comments-comment-item">Bob Smith great post, thanks for sharing</div>
    <div class="comments-comment-item">Jane Doe thanks everyone, happy to answer questions</div>
  </div>
  <div class="feed-card">
    <div>Raj Patel</div>
    <div>CTO at Beta</div>
    <a href="https://www.linkedin.com/posts/raj_scaling-activity-2222/">5h ago</a>
    <a href="https://www.linkedin.com/posts/raj_scaling-activity-2222?trk=feed">also 5h ago</a>
    <div>We rewrote our ingest pipeline three times before it stopped paging us at night.
         Writing down what failed each time turned out to matter more than the final design.</div>
    <div>45 reactions · 3 comments</div>
  </div>
  <div>
    <a href="/company/acme/posts/999">Acme Corp page</a>
    <a href="/in/jane-doe">Jane's profile</a>
  </div>
</main>
</body></html>`

func TestAnchorWalkExtract(t *testing.T) {
	w := NewAnchorWalk(signals.Default())
	posts, err := w.Extract(context.Background(), NewHTMLSnapshot(feedFixture))
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("Extract() returned %d posts, want 2: %+v", len(posts), posts)
	}

	first := posts[0]
	if first.Locator != "https://www.linkedin.com/feed/update/urn:li:activity:1111" {
		t.Errorf("first locator = %q", first.Locator)
	}
	if first.AuthorName != "Jane Doe" || first.AuthorHeadline != "Founder at Acme · 1st" {
		t.Errorf("first header = %q / %q", first.AuthorName, first.AuthorHeadline)
	}
	if !first.Connection {
		t.Error("first.Connection = false, want true")
	}
	if first.Engagement.Reactions != 120 || first.Engagement.Comments != 12 {
		t.Errorf("first engagement = %+v", first.Engagement)
	}
	if len(first.CommentSamples) != 2 {
		t.Errorf("first comment samples = %q", first.CommentSamples)
	}
	if !first.AuthorReplied {
		t.Error("first.AuthorReplied = false, want true")
	}

	second := posts[1]
	if second.Locator != "https://www.linkedin.com/posts/raj_scaling-activity-2222" {
		t.Errorf("second locator = %q", second.Locator)
	}
	if second.AuthorName != "Raj Patel" {
		t.Errorf("second author = %q", second.AuthorName)
	}
	if second.AuthorReplied {
		t.Error("second.AuthorReplied = true, want false")
	}
}

func TestAnchorWalkEmptyPage(t *testing.T) {
	w := NewAnchorWalk(signals.Default())
	posts, err := w.Extract(context.Background(), NewHTMLSnapshot("<html><body><p>nothing here</p></body></html>"))
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("Extract() = %+v, want none", posts)
	}
}

func TestCanonicalLocator(t *testing.T) {
	tests := []struct {
		href string
		want string
	}{
		{"/feed/update/urn:li:activity:42?utm_source=share#main", "https://www.linkedin.com/feed/update/urn:li:activity:42"},
		{"https://www.linkedin.com/posts/jane_foo-activity-7/", "https://www.linkedin.com/posts/jane_foo-activity-7"},
		{"/company/acme/posts/999", ""},
		{"/in/jane-doe", ""},
		{"/jobs/view/123", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			if got := CanonicalLocator(tt.href); got != tt.want {
				t.Errorf("CanonicalLocator(%q) = %q, want %q", tt.href, got, tt.want)
			}
		})
	}
}

func TestContainingCardRejectsOversized(t *testing.T) {
	huge := "<html><body><div><a href=\"/feed/update/urn:li:activity:1\">x</a>" +
		strings.Repeat("padding words everywhere ", 2000) + "</div></body></html>"
	w := NewAnchorWalk(signals.Default())
	posts, err := w.Extract(context.Background(), NewHTMLSnapshot(huge))
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("oversized container produced %d posts, want 0", len(posts))
	}
}
