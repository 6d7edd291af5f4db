package extract

import (
	"context"
	"testing"

	"github.com/codeGROOVE-dev/sycophant/signals"
)

const attrFixture = `<html><body>
<div data-urn="urn:li:activity:7001">
  <div>Jane Doe</div>
  <div>Founder at Acme</div>
  <div>Every pricing mistake we made in year one came from copying a bigger company.
       Charging for the outcome instead of the seat fixed most of them overnight.</div>
</div>
<div data-id="urn:li:activity:7002">
  <div>Raj Patel</div>
  <div>CTO at Beta</div>
  <div>Pairing new hires with the on-call rotation in week two sounds cruel but it is
       the fastest way to teach them what the system actually does under load.</div>
</div>
<div data-urn="urn:li:activity:7001">
  <div>duplicate identity, same activity, must not appear twice in the results list
       even though the element text would otherwise qualify as a standalone post.</div>
</div>
<div data-id="ember-component-42">
  <div>no activity token here, so this element yields nothing at all for the walk
       regardless of how plausible the visible text inside it might look to a reader.</div>
</div>
</body></html>`

func TestAttrWalkExtract(t *testing.T) {
	w := NewAttrWalk(signals.Default())
	posts, err := w.Extract(context.Background(), NewHTMLSnapshot(attrFixture))
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("Extract() returned %d posts, want 2: %+v", len(posts), posts)
	}

	if want := "https://www.linkedin.com/feed/update/urn:li:activity:7001"; posts[0].Locator != want {
		t.Errorf("first locator = %q, want %q", posts[0].Locator, want)
	}
	if posts[0].AuthorName != "Jane Doe" {
		t.Errorf("first author = %q", posts[0].AuthorName)
	}
	if want := "https://www.linkedin.com/feed/update/urn:li:activity:7002"; posts[1].Locator != want {
		t.Errorf("second locator = %q, want %q", posts[1].Locator, want)
	}
	if posts[1].AuthorName != "Raj Patel" {
		t.Errorf("second author = %q", posts[1].AuthorName)
	}
}

func TestAttrWalkNoIdentity(t *testing.T) {
	w := NewAttrWalk(signals.Default())
	posts, err := w.Extract(context.Background(), NewHTMLSnapshot("<html><body><div>plain page</div></body></html>"))
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("Extract() = %+v, want none", posts)
	}
}
