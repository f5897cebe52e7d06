package filtering

import (
	"strings"

	"go.uber.org/zap"

	"github.com/cliffordnwanna/job-hunter/internal/jobs"
	"github.com/cliffordnwanna/job-hunter/internal/match"
)

type titleExcludeFilter struct {
	keywords []string
}

// NewTitleExclude creates a step that drops listings whose title contains
// any excluded keyword as a whole word, so excluding "scala" leaves an
// "Escalation Manager" posting alone.
func NewTitleExclude(keywords []string) Filter {
	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(strings.ToLower(kw))
		if kw != "" {
			cleaned = append(cleaned, kw)
		}
	}
	return &titleExcludeFilter{keywords: cleaned}
}

func (f *titleExcludeFilter) Name() string { return "title exclusion" }

func (f *titleExcludeFilter) Apply(deps Deps, list *jobs.Listings) (*jobs.Listings, Step) {
	initial := list.Len()
	if len(f.keywords) == 0 {
		return list, Step{Initial: initial, Left: initial}
	}

	dropped := list.Exclude(func(l *jobs.Listing) bool {
		return match.ContainsAny(l.Title, f.keywords)
	})
	if len(dropped) > 0 {
		deps.Logger.Info("excluded listings by title",
			zap.Strings("keywords", f.keywords),
			zap.Strings("titles", dropped),
		)
	}

	return list, Step{Initial: initial, Dropped: len(dropped), Left: list.Len()}
}
