package extract

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/codeGROOVE-dev/sycophant/post"
)

func TestScanEngagement(t *testing.T) {
	tests := []struct {
		name string
		text string
		want post.Engagement
	}{
		{
			name: "plain counts",
			text: "Jane Doe\nGreat story here\n42 reactions · 7 comments",
			want: post.Engagement{Reactions: 42, Comments: 7},
		},
		{
			name: "comma separated",
			text: "1,234 reactions and 1,001 comments",
			want: post.Engagement{Reactions: 1234, Comments: 1001},
		},
		{
			name: "k suffix",
			text: "2.5K likes · 340 comments",
			want: post.Engagement{Reactions: 2500, Comments: 340},
		},
		{
			name: "m suffix",
			text: "3M reactions",
			want: post.Engagement{Reactions: 3_000_000},
		},
		{
			name: "singular forms",
			text: "1 like · 1 comment",
			want: post.Engagement{Reactions: 1, Comments: 1},
		},
		{
			name: "no counts",
			text: "just a body with numbers like 42 in it",
			want: post.Engagement{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanEngagement(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("scanEngagement() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScanAgeLabel(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Posted just now by Jane", "just now"},
		{"5 min ago · Edited", "5 min"},
		{"3h ·", "3h"},
		{"2 days ago", "2 days"},
		{"1 week ago", "1 week"},
		{"no age label here", ""},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := scanAgeLabel(tt.text); got != tt.want {
				t.Errorf("scanAgeLabel(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"42", 42},
		{"1,234", 1234},
		{"2.5K", 2500},
		{"2.5 k", 2500},
		{"3M", 3_000_000},
		{"garbage", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := parseCount(tt.in); got != tt.want {
			t.Errorf("parseCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		text string
		want post.Format
	}{
		{"plain thoughts about engineering", post.FormatText},
		{"Activate to view larger image", post.FormatImage},
		{"Play video · 12,044 views", post.FormatVideo},
		{"swipe through the carousel below", post.FormatCarousel},
		{"See results · 1,203 votes · 2d left", post.FormatPoll},
		// Poll markers outrank video markers when both appear.
		{"See results · 500 views ·", post.FormatPoll},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := detectFormat(tt.text); got != tt.want {
				t.Errorf("detectFormat(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
