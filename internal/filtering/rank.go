package filtering

import "github.com/cliffordnwanna/job-hunter/internal/jobs"

type rankFilter struct{}

// NewRank creates the terminal step: clamp every score back into bounds and
// sort best-first. The sort is stable, so equally scored listings keep their
// source-priority order.
func NewRank() Filter {
	return rankFilter{}
}

func (rankFilter) Name() string { return "rank" }

func (rankFilter) Apply(_ Deps, list *jobs.Listings) (*jobs.Listings, Step) {
	list.ClampScores()
	list.SortByScore()
	n := list.Len()
	return list, Step{Initial: n, Left: n}
}
