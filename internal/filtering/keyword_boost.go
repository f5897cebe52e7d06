package filtering

import (
	"strings"

	"github.com/cliffordnwanna/job-hunter/internal/jobs"
	"github.com/cliffordnwanna/job-hunter/internal/match"
)

const (
	titleKeywordBoost = 15
	descKeywordBoost  = 10
)

type keywordBoostFilter struct {
	keywords []string
}

// NewKeywordBoost creates a step that raises the score of listings
// mentioning any search keyword. Title mentions outweigh description-only
// ones and nothing is ever removed.
func NewKeywordBoost(keywords []string) Filter {
	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(strings.ToLower(kw))
		if kw != "" {
			cleaned = append(cleaned, kw)
		}
	}
	return &keywordBoostFilter{keywords: cleaned}
}

func (f *keywordBoostFilter) Name() string { return "keyword boost" }

func (f *keywordBoostFilter) Apply(_ Deps, list *jobs.Listings) (*jobs.Listings, Step) {
	initial := list.Len()
	if len(f.keywords) == 0 {
		return list, Step{Initial: initial, Left: initial}
	}

	for _, l := range list.Items {
		switch {
		case match.ContainsAny(l.Title, f.keywords):
			l.AdjustScore(titleKeywordBoost)
		case match.ContainsAny(l.Description, f.keywords):
			l.AdjustScore(descKeywordBoost)
		}
	}
	return list, Step{Initial: initial, Left: initial}
}
