package materials

import (
	"strings"

	"github.com/cliffordnwanna/job-hunter/internal/jobs"
	"github.com/cliffordnwanna/job-hunter/internal/match"
	"github.com/cliffordnwanna/job-hunter/internal/profile"
)

const (
	maxMatchedSkills = 8
	maxRequirements  = 5

	// requirement sentences shorter than this are fragments, longer ones
	// are usually two requirements glued together
	minRequirementLen = 20
	maxRequirementLen = 150
)

// requirementCues flag a sentence as a likely requirement.
var requirementCues = []string{
	"experience", "required", "require", "must", "proficien",
	"knowledge", "familiar", "responsib", "skill", "degree", "ability",
}

// MatchSkills returns the profile skills the listing actually mentions,
// capped to keep generated documents focused.
func MatchSkills(p profile.Profile, l *jobs.Listing) []string {
	text := l.Title + " " + l.Description

	matched := make([]string, 0, maxMatchedSkills)
	for _, skill := range p.Skills {
		if match.Contains(text, skill) {
			matched = append(matched, skill)
			if len(matched) == maxMatchedSkills {
				break
			}
		}
	}
	return matched
}

// ExtractRequirements pulls requirement-looking sentences out of a job
// description. Heuristic by design: it feeds draft documents, nothing more.
func ExtractRequirements(description string) []string {
	var requirements []string
	for _, sentence := range splitSentences(description) {
		if len(sentence) <= minRequirementLen || len(sentence) >= maxRequirementLen {
			continue
		}
		lower := strings.ToLower(sentence)
		for _, cue := range requirementCues {
			if strings.Contains(lower, cue) {
				requirements = append(requirements, sentence)
				break
			}
		}
		if len(requirements) == maxRequirements {
			break
		}
	}
	return requirements
}

func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n' || r == ';' || r == '•'
	})

	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.Trim(p, "-* \t"))
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}
