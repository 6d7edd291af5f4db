package extract

import "github.com/codeGROOVE-dev/sycophant/post"

// Dedup collapses duplicate posts, preserving first-seen order. A post
// is a duplicate when its 60-character body prefix was already seen, or
// when it carries a locator that was already seen. Idempotent.
func Dedup(posts []post.Post) []post.Post {
	seenLocators := make(map[string]bool, len(posts))
	seenPrefixes := make(map[string]bool, len(posts))

	out := make([]post.Post, 0, len(posts))
	for _, p := range posts {
		prefix := post.BodyPrefix(p.Body, post.KeyPrefixLen)
		if seenPrefixes[prefix] {
			continue
		}
		if p.Locator != "" && seenLocators[p.Locator] {
			continue
		}
		seenPrefixes[prefix] = true
		if p.Locator != "" {
			seenLocators[p.Locator] = true
		}
		out = append(out, p)
	}
	return out
}
