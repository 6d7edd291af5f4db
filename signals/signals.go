// Package signals holds the keyword and phrase tables that drive the
// exclusion filter and the composite scorer. Tables are named, versioned
// data passed into the algorithms rather than literals baked into them,
// so they can be tuned and tested independently.
package signals

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeniorityEntry pairs a headline keyword with its raw point value.
// Entries are matched in order; the first hit wins.
type SeniorityEntry struct {
	Keyword string `yaml:"keyword"`
	Points  int    `yaml:"points"`
}

// Tables is the full signal set. All matching is case-insensitive
// substring matching against lowercased text.
//
//nolint:govet // fieldalignment: grouped by concern, not by size
type Tables struct {
	Version string `yaml:"version"`

	// Parser: interface-chrome lines that can never be a name or
	// headline, and navigation prefixes that disqualify a full-text
	// chunk outright.
	ChromeDenylist []string `yaml:"chrome_denylist"`
	NavPrefixes    []string `yaml:"nav_prefixes"`

	// Parser: substrings marking the author as a first-degree connection.
	ConnectionMarkers []string `yaml:"connection_markers"`

	// Exclusion filter rule groups, in priority order.
	OpenToWork    []string `yaml:"open_to_work"`
	JuniorStudent []string `yaml:"junior_student"`
	Recruitment   []string `yaml:"recruitment"`
	Grief         []string `yaml:"grief"`

	// Content scoring.
	PositiveTopics []string `yaml:"positive_topics"`
	LowValue       []string `yaml:"low_value"`
	StoryArc       []string `yaml:"story_arc"`
	AIWriting      []string `yaml:"ai_writing"`
	PodPhrases     []string `yaml:"pod_phrases"`

	// Seniority scoring.
	Seniority   []SeniorityEntry `yaml:"seniority"`
	ProxyBoosts []SeniorityEntry `yaml:"proxy_boosts"`

	// Niche scoring: domain-relevance keywords, independent of the
	// content topic list.
	Niche []string `yaml:"niche"`

	// Age labels counted as "just posted".
	FreshAge []string `yaml:"fresh_age"`
}

// Default returns the built-in signal tables.
func Default() *Tables {
	return &Tables{
		Version: "2026-08",

		ChromeDenylist: []string{
			"like", "comment", "repost", "share", "send", "follow",
			"following", "connect", "sponsored", "promoted", "see more",
			"…more", "...more", "see translation", "celebrate",
			"reactions", "view profile", "report this post", "copy link",
			"save", "hide or report",
		},
		NavPrefixes: []string{
			"home", "my network", "jobs", "messaging", "notifications",
			"search", "start a post", "sort by", "feed updates",
		},

		ConnectionMarkers: []string{"· 1st", "• 1st", "(1st)", "1st degree"},

		OpenToWork: []string{
			"open to work", "#opentowork", "opentowork",
			"seeking new opportunities", "seeking opportunities",
			"looking for my next", "open to new roles",
			"actively looking", "laid off", "job search", "job hunting",
			"available for hire", "seeking a role", "between roles",
		},
		JuniorStudent: []string{
			"student at", "intern at", "internship", "undergraduate",
			"fresher", "recent graduate", "graduating", "aspiring",
			"junior developer", "entry level", "entry-level", "bootcamp",
			"final year", "campus ambassador",
		},
		Recruitment: []string{
			"we're hiring", "we are hiring", "i'm hiring", "i am hiring",
			"join our team", "apply now", "job opening", "job opportunity",
			"open position", "open role", "send your resume",
			"send your cv", "dm me your resume", "#hiring", "vacancy",
			"recruiting for", "refer someone",
		},
		Grief: []string{
			"passed away", "rest in peace", "condolences",
			"deepest sympathy", "sad news", "tragic", "mourning",
			"heartbroken to share", "in loving memory", "funeral",
			"devastated", "lost my father", "lost my mother",
			"lost a dear",
		},

		PositiveTopics: []string{
			"lesson", "learned", "mistake", "failed", "journey", "built",
			"shipped", "launched", "growth", "customers", "revenue",
			"culture", "founder", "bootstrapped", "scaling",
		},
		LowValue: []string{
			"agree?", "thoughts?", "who's with me", "like if",
			"comment below", "tag someone", "follow for more",
			"follow me for", "repost this", "let that sink in",
			"read that again", "link in comments", "link in bio",
		},
		StoryArc: []string{
			"years ago", "last year", "last month", "yesterday",
			"when i started", "at first", "eventually", "then one day",
			"finally", "looking back", "turning point", "fast forward",
		},
		AIWriting: []string{
			"delve", "in today's fast-paced", "game-changer",
			"game changer", "unlock the power", "in the ever-evolving",
			"leverage the power", "revolutionize", "seamlessly",
			"dive deep into", "it's not just about", "here's the kicker",
		},
		PodPhrases: []string{
			"great post", "thanks for sharing", "well said", "so true",
			"love this", "totally agree", "great insight", "great share",
			"spot on", "couldn't agree more",
		},

		Seniority: []SeniorityEntry{
			{Keyword: "founder", Points: 25},
			{Keyword: "co-founder", Points: 25},
			{Keyword: "ceo", Points: 24},
			{Keyword: "cto", Points: 24},
			{Keyword: "chief", Points: 22},
			{Keyword: "vp ", Points: 18},
			{Keyword: "vice president", Points: 18},
			{Keyword: "president", Points: 18},
			{Keyword: "director", Points: 14},
			{Keyword: "head of", Points: 14},
			{Keyword: "principal", Points: 10},
			{Keyword: "staff", Points: 8},
			{Keyword: "manager", Points: 7},
			{Keyword: "senior", Points: 5},
			{Keyword: "lead", Points: 5},
		},
		ProxyBoosts: []SeniorityEntry{
			{Keyword: "investor", Points: 15},
			{Keyword: "angel", Points: 15},
			{Keyword: "creator", Points: 10},
			{Keyword: "author", Points: 10},
			{Keyword: "advisor", Points: 10},
			{Keyword: "speaker", Points: 10},
		},

		Niche: []string{
			"golang", "kubernetes", "devops", "open source",
			"developer tools", "platform engineering", "cloud native",
			"sre", "infrastructure", "ci/cd", "code review",
			"observability",
		},

		FreshAge: []string{"just now", "now", "min", "1h", "1 hour", "1hr"},
	}
}

// Load reads a YAML overrides file and applies it on top of the
// defaults. Only fields present in the file replace their defaults;
// omitted fields keep the built-in values.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read signal tables: %w", err)
	}

	var overrides Tables
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse signal tables %s: %w", path, err)
	}

	t := Default()
	t.merge(&overrides)
	return t, nil
}

func (t *Tables) merge(o *Tables) {
	if o.Version != "" {
		t.Version = o.Version
	}
	for dst, src := range map[*[]string][]string{
		&t.ChromeDenylist:    o.ChromeDenylist,
		&t.NavPrefixes:       o.NavPrefixes,
		&t.ConnectionMarkers: o.ConnectionMarkers,
		&t.OpenToWork:        o.OpenToWork,
		&t.JuniorStudent:     o.JuniorStudent,
		&t.Recruitment:       o.Recruitment,
		&t.Grief:             o.Grief,
		&t.PositiveTopics:    o.PositiveTopics,
		&t.LowValue:          o.LowValue,
		&t.StoryArc:          o.StoryArc,
		&t.AIWriting:         o.AIWriting,
		&t.PodPhrases:        o.PodPhrases,
		&t.Niche:             o.Niche,
		&t.FreshAge:          o.FreshAge,
	} {
		if len(src) > 0 {
			*dst = src
		}
	}
	if len(o.Seniority) > 0 {
		t.Seniority = o.Seniority
	}
	if len(o.ProxyBoosts) > 0 {
		t.ProxyBoosts = o.ProxyBoosts
	}
}
