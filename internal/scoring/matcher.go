// Package scoring ranks job listings against an applicant profile. The score
// blends lexical similarity, skill coverage, career-adjacency and seniority
// fit into a single 0-100 number with a human-readable breakdown.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/cliffordnwanna/job-hunter/internal/jobs"
	"github.com/cliffordnwanna/job-hunter/internal/match"
	"github.com/cliffordnwanna/job-hunter/internal/profile"
)

const (
	textWeight  = 0.35
	skillWeight = 0.40

	adjacencyBonus  = 15
	titleTermBonus  = 8
	skillScoreScale = 150

	// profileTextLen and jobDescLen bound the text fed to the lexical
	// comparison. Resumes and descriptions front-load the relevant part.
	profileTextLen = 3000
	jobDescLen     = 1500

	underqualifiedPenalty = 0.7
	entryBoost            = 1.2
	midCareerBoost        = 1.1
)

// Matcher scores listings against one applicant profile. Build it once per
// profile and reuse it across the whole batch.
type Matcher struct {
	skills      []string
	years       int
	profileText string
	logger      *zap.Logger
}

func NewMatcher(p profile.Profile, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	raw := p.RawText
	if len(raw) > profileTextLen {
		raw = raw[:profileTextLen]
	}

	skills := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		skills = append(skills, strings.ToLower(s))
	}

	return &Matcher{
		skills:      skills,
		years:       p.YearsExperience,
		profileText: strings.ToLower(strings.Join(skills, " ") + " " + raw),
		logger:      logger,
	}
}

// Score fills in the listing's match score, breakdown and matched-skill
// count. It never fails: listings with missing fields simply score low.
func (m *Matcher) Score(l *jobs.Listing) {
	title := strings.ToLower(l.Title)
	desc := strings.ToLower(l.Description)
	if len(desc) > jobDescLen {
		desc = desc[:jobDescLen]
	}
	// the title is repeated so its terms weigh more in the lexical pass
	jobText := title + " " + title + " " + desc

	lexical := Similarity(m.profileText, jobText) * 100
	skillScore, matched := m.skillCoverage(jobText)
	fit := m.adjacencyBonus(jobText) + m.titleBonus(title)

	base := lexical*textWeight + skillScore*skillWeight + float64(fit)
	final := base * m.experienceMultiplier(title)

	l.SetScore(math.Round(final*100) / 100)
	l.SkillsMatched = matched
	l.ScoreBreakdown = fmt.Sprintf("Text:%.0f%% | Skills:%.0f%% | Fit:+%d",
		lexical, skillScore, fit)
}

// ScoreAll scores every listing in place. The progress callback, when not
// nil, is invoked after each listing.
func (m *Matcher) ScoreAll(list *jobs.Listings, progress func(done, total int)) {
	total := list.Len()
	for i, l := range list.Items {
		m.Score(l)
		if progress != nil {
			progress(i+1, total)
		}
	}
	m.logger.Info("scored listings",
		zap.Int("count", total),
		zap.Int("profile_skills", len(m.skills)),
	)
}

// skillCoverage counts how many profile skills, widened by synonyms, appear
// in the job text. The ratio is scaled so matching two thirds of the
// profile's skills already reaches full marks.
func (m *Matcher) skillCoverage(jobText string) (score float64, matched int) {
	if len(m.skills) == 0 {
		return 0, 0
	}

	seen := make(map[string]struct{})
	for _, skill := range m.skills {
		terms := append([]string{skill}, skillSynonyms[skill]...)
		for _, term := range terms {
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			if match.Contains(jobText, term) {
				matched++
			}
		}
	}

	score = float64(matched) / float64(len(m.skills)) * skillScoreScale
	if score > jobs.MaxScore {
		score = jobs.MaxScore
	}
	return score, matched
}

// adjacencyBonus rewards listings for roles lateral to what the profile
// already shows evidence of.
func (m *Matcher) adjacencyBonus(jobText string) int {
	var bonus int
	for seed, roles := range adjacentRoles {
		if !match.Contains(m.profileText, seed) {
			continue
		}
		if match.ContainsAny(jobText, roles) {
			bonus += adjacencyBonus
		}
	}
	return bonus
}

// titleBonus rewards role terms shared by the profile and the job title.
func (m *Matcher) titleBonus(title string) int {
	var bonus int
	for _, kw := range titleKeywords {
		if match.Contains(m.profileText, kw) && match.Contains(title, kw) {
			bonus += titleTermBonus
		}
	}
	return bonus
}

// experienceMultiplier adjusts for seniority fit between the title and the
// profile's years of experience.
func (m *Matcher) experienceMultiplier(title string) float64 {
	isSenior := match.ContainsAny(title, seniorKeywords)
	isEntry := match.ContainsAny(title, entryKeywords)

	switch {
	case isSenior && m.years < 3:
		return underqualifiedPenalty
	case isEntry && m.years >= 1 && m.years <= 3:
		return entryBoost
	case !isSenior && m.years >= 1 && m.years <= 4:
		return midCareerBoost
	default:
		return 1.0
	}
}
