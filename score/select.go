package score

import (
	"log/slog"

	"github.com/codeGROOVE-dev/sycophant/filter"
	"github.com/codeGROOVE-dev/sycophant/post"
	"github.com/codeGROOVE-dev/sycophant/signals"
)

// DefaultThresholds is the descending acceptance tier list.
var DefaultThresholds = []int{80, 70, 60}

// Options configures a selection run. The engaged and recent-author
// sets are owned by the caller and read-only here.
//
//nolint:govet // fieldalignment: intentional layout for readability
type Options struct {
	Thresholds    []int // descending acceptance tiers
	Weights       Weights
	Tables        *signals.Tables
	Engaged       map[string]bool // locators already acted on
	RecentAuthors map[string]bool // authors engaged too recently
	Logger        *slog.Logger
}

func (o *Options) fill() {
	if len(o.Thresholds) == 0 {
		o.Thresholds = DefaultThresholds
	}
	if o.Weights == (Weights{}) {
		o.Weights = DefaultWeights()
	}
	if o.Tables == nil {
		o.Tables = signals.Default()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// Evaluation is the scored-and-filtered view of one candidate, kept for
// diagnostics. Locator-less and excluded posts appear here even though
// they can never win selection.
type Evaluation struct {
	Post      post.Post
	Breakdown post.Breakdown
	Excluded  bool
	Reason    string
	Eligible  bool
}

// Select picks the single best post, or nil when nothing qualifies.
//
// Only posts with a locator that are not in the engaged or
// recent-author sets compete. The active threshold is the first tier
// any surviving post reaches; among those, the strictly highest total
// wins, ties broken by discovery order. Finding the best achievable
// tier first avoids settling for a mediocre match when an excellent one
// exists, while still degrading when nothing excellent is around.
func Select(posts []post.Post, opts Options) (*post.Post, *post.Breakdown) {
	evals := Evaluate(posts, opts)
	opts.fill()

	floor := opts.Thresholds[len(opts.Thresholds)-1]
	for _, tier := range opts.Thresholds {
		if tier < floor {
			floor = tier
		}
	}

	best := -1
	for i, ev := range evals {
		if !ev.Eligible || ev.Breakdown.Total < floor {
			continue
		}
		if best == -1 || ev.Breakdown.Total > evals[best].Breakdown.Total {
			best = i
		}
	}
	if best == -1 {
		opts.Logger.Info("no candidate met any threshold", "candidates", len(posts))
		return nil, nil
	}

	// Active threshold: the highest tier the best survivor reaches.
	active := floor
	for _, tier := range opts.Thresholds {
		if evals[best].Breakdown.Total >= tier {
			active = tier
			break
		}
	}

	winner := evals[best].Post
	breakdown := evals[best].Breakdown
	breakdown.Accepted = true

	opts.Logger.Info("candidate selected",
		"locator", winner.Locator,
		"author", winner.AuthorName,
		"total", breakdown.Total,
		"threshold", active)
	return &winner, &breakdown
}

// Evaluate filters and scores every candidate, in list order, without
// choosing. Diagnostic logs stay deterministic because evaluation is
// strictly sequential.
func Evaluate(posts []post.Post, opts Options) []Evaluation {
	opts.fill()

	evals := make([]Evaluation, 0, len(posts))
	for i, p := range posts {
		ev := Evaluation{Post: p}

		res := filter.ShouldExclude(&p, opts.Tables)
		ev.Excluded = res.Excluded
		ev.Reason = res.Reason

		if !ev.Excluded {
			sctx := Context{Position: i, Total: len(posts)}
			ev.Breakdown = Score(&p, sctx, opts.Weights, opts.Tables, minThreshold(opts.Thresholds))
			ev.Eligible = p.Locator != "" &&
				!opts.Engaged[p.Locator] &&
				!opts.RecentAuthors[p.AuthorName]
		}

		switch {
		case ev.Excluded:
			opts.Logger.Debug("candidate excluded", "author", p.AuthorName, "reason", ev.Reason)
		case !ev.Eligible:
			opts.Logger.Debug("candidate ineligible", "author", p.AuthorName, "locator", p.Locator, "total", ev.Breakdown.Total)
		default:
			opts.Logger.Debug("candidate scored", "author", p.AuthorName, "total", ev.Breakdown.Total)
		}
		evals = append(evals, ev)
	}
	return evals
}

func minThreshold(thresholds []int) int {
	if len(thresholds) == 0 {
		return 0
	}
	floor := thresholds[0]
	for _, t := range thresholds[1:] {
		if t < floor {
			floor = t
		}
	}
	return floor
}
