// Package filtering refines scored listings through an ordered chain of
// steps. Each step reports how many listings it inspected and dropped, and
// the removal steps relax their own criteria rather than empty the list.
package filtering

import (
	"time"

	"go.uber.org/zap"

	"github.com/cliffordnwanna/job-hunter/internal/jobs"
)

// Filter represents a single refinement step applied to listings.
type Filter interface {
	Name() string
	Apply(deps Deps, list *jobs.Listings) (*jobs.Listings, Step)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger *zap.Logger
	Now    time.Time
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Preferences captures what the applicant wants kept or boosted.
type Preferences struct {
	// SearchKeywords boost listings that mention them; they never remove.
	SearchKeywords []string
	// ExcludeTitleKeywords drop listings whose title contains any of them
	// as a whole word.
	ExcludeTitleKeywords []string
	// MinScore is the preferred score cutoff, relaxed when too strict.
	MinScore float64
	// MaxAgeDays is the preferred posting-age window, relaxed when too
	// strict. Zero disables the recency step.
	MaxAgeDays int
	// RemoteScope is one of "any", "worldwide" or "usa".
	RemoteScope string
}

// Relaxation tunes how far the removal steps loosen their criteria before
// giving up. The zero value is replaced by DefaultRelaxation.
type Relaxation struct {
	// RecencyFallbackDays is the widened posting-age window used when the
	// preferred one keeps fewer than RecencyMinResults listings.
	RecencyFallbackDays int
	// RecencyMinResults is the recency step's acceptable result size.
	RecencyMinResults int
	// MinResults is the smallest acceptable result of the score cutoff.
	MinResults int
	// ScoreStep is subtracted from the preferred cutoff on the first
	// relaxation, bounded below by ScoreStepFloor.
	ScoreStep      float64
	ScoreStepFloor float64
	// ScoreFloor is the last cutoff tried before falling back to TopN.
	ScoreFloor float64
	// TopN is the best-scores fallback when no cutoff keeps MinResults.
	TopN int
}

func DefaultRelaxation() Relaxation {
	return Relaxation{
		RecencyFallbackDays: 45,
		RecencyMinResults:   20,
		MinResults:          5,
		ScoreStep:           20,
		ScoreStepFloor:      20,
		ScoreFloor:          10,
		TopN:                20,
	}
}

func (r Relaxation) withDefaults() Relaxation {
	def := DefaultRelaxation()
	if r.RecencyFallbackDays <= 0 {
		r.RecencyFallbackDays = def.RecencyFallbackDays
	}
	if r.RecencyMinResults <= 0 {
		r.RecencyMinResults = def.RecencyMinResults
	}
	if r.MinResults <= 0 {
		r.MinResults = def.MinResults
	}
	if r.ScoreStep <= 0 {
		r.ScoreStep = def.ScoreStep
	}
	if r.ScoreStepFloor <= 0 {
		r.ScoreStepFloor = def.ScoreStepFloor
	}
	if r.ScoreFloor <= 0 {
		r.ScoreFloor = def.ScoreFloor
	}
	if r.TopN <= 0 {
		r.TopN = def.TopN
	}
	return r
}

// Steps builds the standard refinement chain for the given preferences.
func Steps(prefs Preferences, relax Relaxation) []Filter {
	relax = relax.withDefaults()
	return []Filter{
		NewKeywordBoost(prefs.SearchKeywords),
		NewTitleExclude(prefs.ExcludeTitleKeywords),
		NewRecency(prefs.MaxAgeDays, relax),
		NewScoreCutoff(prefs.MinScore, relax),
		NewLocationScope(prefs.RemoteScope, relax),
		NewRank(),
	}
}

// Run executes the supplied filters sequentially and returns the refined
// listings. Filters never fail; an overly strict step relaxes itself.
func Run(deps Deps, steps []Filter, list *jobs.Listings) *jobs.Listings {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now.IsZero() {
		deps.Now = time.Now()
	}

	for _, step := range steps {
		next, info := step.Apply(deps, list)
		deps.Logger.Info("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)
		list = next
	}
	return list
}
