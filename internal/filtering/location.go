package filtering

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/cliffordnwanna/job-hunter/internal/jobs"
)

// RemoteScope values accepted by the location step.
const (
	ScopeAny       = "any"
	ScopeWorldwide = "worldwide"
	ScopeUSA       = "usa"
)

const (
	worldwideBoost   = 30
	usRestrictedDrop = -40
)

// worldwideTerms mark a location as open to applicants anywhere, including
// continental regions.
var worldwideTerms = []string{
	"anywhere", "worldwide", "global", "international",
	"emea", "apac", "latam", "europe", "africa", "asia",
}

var (
	usCountryRe = regexp.MustCompile(`(?i)\b(usa|u\.s\.a?\.?|us[ -]only|us[ -]based|united states|america)\b`)
	usStateRe   = regexp.MustCompile(`\b(A[LKZR]|C[AOT]|DE|FL|GA|HI|I[DLNA]|K[SY]|LA|M[EDAINSOT]|N[EVHJMYCD]|O[HKR]|PA|RI|S[CD]|T[NX]|UT|V[TA]|W[AVIY])\b`)
)

func mentionsUS(location string) bool {
	return usCountryRe.MatchString(location) || usStateRe.MatchString(location)
}

type locationScope int

const (
	scopeUnknown locationScope = iota
	scopeOpen
	scopeUSRestricted
)

// classifyLocation checks worldwide terms before the US patterns, so a
// location like "Remote - USA or Worldwide" counts as open rather than
// US-restricted.
func classifyLocation(location string) locationScope {
	lower := strings.ToLower(strings.TrimSpace(location))
	for _, term := range worldwideTerms {
		if strings.Contains(lower, term) {
			return scopeOpen
		}
	}
	if lower == "remote" || lower == "" {
		return scopeOpen
	}
	if mentionsUS(location) {
		return scopeUSRestricted
	}
	return scopeUnknown
}

type locationFilter struct {
	scope string
	relax Relaxation
}

// NewLocationScope creates a step enforcing the applicant's remote scope.
//
// Scope "worldwide" adjusts scores without removing anything: globally open
// listings rise, US-restricted ones sink. Scope "usa" keeps only listings
// whose location mentions a US term, but fails open when fewer than
// MinResults do. Scope "any" is a no-op.
func NewLocationScope(scope string, relax Relaxation) Filter {
	return &locationFilter{
		scope: strings.ToLower(strings.TrimSpace(scope)),
		relax: relax.withDefaults(),
	}
}

func (f *locationFilter) Name() string { return "location scope" }

func (f *locationFilter) Apply(deps Deps, list *jobs.Listings) (*jobs.Listings, Step) {
	initial := list.Len()
	switch f.scope {
	case ScopeWorldwide:
		for _, l := range list.Items {
			switch classifyLocation(l.Location) {
			case scopeOpen:
				l.AdjustScore(worldwideBoost)
			case scopeUSRestricted:
				l.AdjustScore(usRestrictedDrop)
			}
		}
		return list, Step{Initial: initial, Left: initial}

	case ScopeUSA:
		kept := make([]*jobs.Listing, 0, initial)
		for _, l := range list.Items {
			if mentionsUS(l.Location) {
				kept = append(kept, l)
			}
		}
		if len(kept) < f.relax.MinResults {
			deps.Logger.Info("too few listings mention a US location, keeping all",
				zap.Int("kept", len(kept)),
				zap.Int("minimum", f.relax.MinResults),
			)
			return list, Step{Initial: initial, Left: initial}
		}
		return &jobs.Listings{Items: kept},
			Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}

	default:
		return list, Step{Initial: initial, Left: initial}
	}
}
