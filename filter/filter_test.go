package filter

import (
	"strings"
	"testing"

	"github.com/codeGROOVE-dev/sycophant/post"
	"github.com/codeGROOVE-dev/sycophant/signals"
)

func TestShouldExclude(t *testing.T) {
	tables := signals.Default()

	tests := []struct {
		name   string
		post   post.Post
		want   bool
		reason string // substring the reason must contain; "" when not excluded
	}{
		{
			name: "clean post passes",
			post: post.Post{
				AuthorName:     "Jane Doe",
				AuthorHeadline: "Founder at Acme",
				Body:           "Ten years of shipping taught me to charge for outcomes.",
			},
		},
		{
			name: "open to work in headline",
			post: post.Post{
				AuthorName:     "Jane Doe",
				AuthorHeadline: "Engineer | #OpenToWork",
				Body:           "Reflecting on my journey so far.",
			},
			want:   true,
			reason: "job-seeking",
		},
		{
			name: "laid off in body head",
			post: post.Post{
				AuthorName: "Jane Doe",
				Body:       "I was laid off last week and wanted to share what I learned.",
			},
			want:   true,
			reason: "job-seeking",
		},
		{
			name: "student headline",
			post: post.Post{
				AuthorName:     "Sam Lee",
				AuthorHeadline: "Student at State University",
				Body:           "Excited about my first hackathon this weekend.",
			},
			want:   true,
			reason: "student or junior",
		},
		{
			name: "recruitment in body",
			post: post.Post{
				AuthorName:     "Raj Patel",
				AuthorHeadline: "CTO at Beta",
				Body:           "Big quarter for us. We're hiring across the platform team.",
			},
			want:   true,
			reason: "recruitment",
		},
		{
			name: "grief content",
			post: post.Post{
				AuthorName: "Raj Patel",
				Body:       "Heartbroken to share that our longtime mentor passed away this weekend.",
			},
			want:   true,
			reason: "grief",
		},
		{
			name: "job-seeking outranks recruitment when both match",
			post: post.Post{
				AuthorName:     "Jane Doe",
				AuthorHeadline: "Open to work",
				Body:           "Ironically my old team is hiring: apply now if you want my old desk.",
			},
			want:   true,
			reason: "job-seeking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldExclude(&tt.post, tables)
			if got.Excluded != tt.want {
				t.Fatalf("ShouldExclude() = %+v, want excluded=%v", got, tt.want)
			}
			if tt.reason != "" && !strings.Contains(got.Reason, tt.reason) {
				t.Errorf("Reason = %q, want substring %q", got.Reason, tt.reason)
			}
			if !tt.want && got.Reason != "" {
				t.Errorf("Reason = %q, want empty for a kept post", got.Reason)
			}
		})
	}
}

// Window boundaries: phrases past a group's character window must not
// trigger that group.
func TestShouldExcludeWindows(t *testing.T) {
	tables := signals.Default()
	pad := func(n int) string { return strings.Repeat("a ", n/2) }

	t.Run("job-seeking phrase past 400 chars ignored", func(t *testing.T) {
		p := post.Post{AuthorName: "Jane Doe", Body: pad(400) + "open to work"}
		if got := ShouldExclude(&p, tables); got.Excluded {
			t.Errorf("excluded: %+v", got)
		}
	})

	t.Run("recruitment phrase within 800 chars caught", func(t *testing.T) {
		p := post.Post{AuthorName: "Jane Doe", Body: pad(700) + "we're hiring"}
		got := ShouldExclude(&p, tables)
		if !got.Excluded || !strings.Contains(got.Reason, "recruitment") {
			t.Errorf("ShouldExclude() = %+v, want recruitment exclusion", got)
		}
	})

	t.Run("recruitment phrase past 800 chars ignored", func(t *testing.T) {
		p := post.Post{AuthorName: "Jane Doe", Body: pad(800) + "we're hiring"}
		if got := ShouldExclude(&p, tables); got.Excluded {
			t.Errorf("excluded: %+v", got)
		}
	})

	t.Run("grief phrase past 600 chars ignored", func(t *testing.T) {
		p := post.Post{AuthorName: "Jane Doe", Body: pad(600) + "passed away"}
		if got := ShouldExclude(&p, tables); got.Excluded {
			t.Errorf("excluded: %+v", got)
		}
	})
}
