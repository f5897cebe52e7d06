package filtering

import (
	"time"

	"go.uber.org/zap"

	"github.com/cliffordnwanna/job-hunter/internal/jobs"
)

type recencyFilter struct {
	maxAgeDays int
	relax      Relaxation
}

// NewRecency creates a step that keeps listings posted within the preferred
// window. When the preferred window keeps too few listings it widens to the
// fallback window instead of starving the result. A zero maxAgeDays disables
// the step.
func NewRecency(maxAgeDays int, relax Relaxation) Filter {
	return &recencyFilter{maxAgeDays: maxAgeDays, relax: relax.withDefaults()}
}

func (f *recencyFilter) Name() string { return "recency" }

func (f *recencyFilter) Apply(deps Deps, list *jobs.Listings) (*jobs.Listings, Step) {
	initial := list.Len()
	if f.maxAgeDays <= 0 {
		return list, Step{Initial: initial, Left: initial}
	}

	kept := f.within(deps.Now, list, f.maxAgeDays)
	if len(kept) < f.relax.RecencyMinResults && f.relax.RecencyFallbackDays > f.maxAgeDays {
		deps.Logger.Info("widening posting-age window",
			zap.Int("preferred_days", f.maxAgeDays),
			zap.Int("fallback_days", f.relax.RecencyFallbackDays),
			zap.Int("kept_strict", len(kept)),
		)
		kept = f.within(deps.Now, list, f.relax.RecencyFallbackDays)
	}

	return &jobs.Listings{Items: kept},
		Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}
}

func (f *recencyFilter) within(now time.Time, list *jobs.Listings, days int) []*jobs.Listing {
	cutoff := now.AddDate(0, 0, -days)
	kept := make([]*jobs.Listing, 0, list.Len())
	for _, l := range list.Items {
		if !l.PostedTime(now).Before(cutoff) {
			kept = append(kept, l)
		}
	}
	return kept
}
