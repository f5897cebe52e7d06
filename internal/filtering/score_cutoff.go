package filtering

import (
	"sort"

	"go.uber.org/zap"

	"github.com/cliffordnwanna/job-hunter/internal/jobs"
)

type scoreCutoffFilter struct {
	minScore float64
	relax    Relaxation
}

// NewScoreCutoff creates a step that keeps listings at or above the
// preferred score. When a cutoff keeps fewer than MinResults listings the
// step relaxes it progressively, and as a last resort keeps the TopN best
// scores, so any non-trivial candidate set survives the cutoff.
func NewScoreCutoff(minScore float64, relax Relaxation) Filter {
	return &scoreCutoffFilter{minScore: minScore, relax: relax.withDefaults()}
}

func (f *scoreCutoffFilter) Name() string { return "score cutoff" }

func (f *scoreCutoffFilter) Apply(deps Deps, list *jobs.Listings) (*jobs.Listings, Step) {
	initial := list.Len()
	if f.minScore <= 0 {
		return list, Step{Initial: initial, Left: initial}
	}

	relaxed := f.minScore - f.relax.ScoreStep
	if relaxed < f.relax.ScoreStepFloor {
		relaxed = f.relax.ScoreStepFloor
	}

	for _, cutoff := range []float64{f.minScore, relaxed, f.relax.ScoreFloor} {
		if cutoff > f.minScore {
			continue
		}
		kept := atOrAbove(list, cutoff)
		if len(kept) >= f.relax.MinResults {
			if cutoff != f.minScore {
				deps.Logger.Info("relaxed score cutoff",
					zap.Float64("preferred", f.minScore),
					zap.Float64("used", cutoff),
				)
			}
			return &jobs.Listings{Items: kept},
				Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}
		}
	}

	kept := topScores(list, f.relax.TopN)
	deps.Logger.Info("score cutoff kept too few, falling back to best scores",
		zap.Float64("preferred", f.minScore),
		zap.Int("kept", len(kept)),
	)
	return &jobs.Listings{Items: kept},
		Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}
}

func atOrAbove(list *jobs.Listings, cutoff float64) []*jobs.Listing {
	kept := make([]*jobs.Listing, 0, list.Len())
	for _, l := range list.Items {
		if l.MatchScore >= cutoff {
			kept = append(kept, l)
		}
	}
	return kept
}

// topScores returns the n best-scoring listings in their original order.
func topScores(list *jobs.Listings, n int) []*jobs.Listing {
	if list.Len() <= n {
		return list.Items
	}

	ranked := make([]*jobs.Listing, list.Len())
	copy(ranked, list.Items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	keep := make(map[*jobs.Listing]struct{}, n)
	for _, l := range ranked[:n] {
		keep[l] = struct{}{}
	}

	kept := make([]*jobs.Listing, 0, n)
	for _, l := range list.Items {
		if _, ok := keep[l]; ok {
			kept = append(kept, l)
		}
	}
	return kept
}
