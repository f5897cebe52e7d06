package jobs

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

const (
	// MinScore and MaxScore bound a listing match score at every stage
	// that touches it.
	MinScore float64 = 0
	MaxScore float64 = 100
)

// Listing is a job offer normalized to a common schema, whatever source it
// came from. MatchScore, ScoreBreakdown and SkillsMatched are working fields:
// the scorer populates them and the filter stages may adjust the score
// further.
type Listing struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Salary      string   `json:"salary"`
	PostedDate  string   `json:"posted_date"`
	Source      string   `json:"source"`
	Tags        []string `json:"tags,omitempty"`

	MatchScore     float64 `json:"match_score"`
	ScoreBreakdown string  `json:"score_breakdown,omitempty"`
	SkillsMatched  int     `json:"skills_matched,omitempty"`
}

// Listings is an ordered collection of listings.
type Listings struct {
	Items []*Listing `json:"items"`
}

// DedupKey is the fallback identity for listings without a URL.
func (l *Listing) DedupKey() string {
	return strings.ToLower(l.Title) + "_" + strings.ToLower(l.Company)
}

// SetScore assigns the match score, clamped to the valid range.
func (l *Listing) SetScore(score float64) {
	if score < MinScore {
		score = MinScore
	}
	if score > MaxScore {
		score = MaxScore
	}
	l.MatchScore = score
}

// AdjustScore shifts the match score by delta and clamps the result.
func (l *Listing) AdjustScore(delta float64) {
	l.SetScore(l.MatchScore + delta)
}

// PostedTime parses the posted date. Sources disagree on formats; anything
// unparseable (including the "N/A" and "Recent" sentinels) counts as posted
// now, so a listing is never dropped for a missing date.
func (l *Listing) PostedTime(now time.Time) time.Time {
	raw := strings.TrimSpace(l.PostedDate)
	if raw == "" || raw == "N/A" || raw == "Recent" {
		return now
	}

	if strings.Contains(raw, "T") {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
			if t, err := time.Parse(layout, raw); err == nil {
				return t
			}
		}
	}
	if len(raw) >= 10 {
		if t, err := time.Parse("2006-01-02", raw[:10]); err == nil {
			return t
		}
	}
	return now
}

func (v *Listings) Len() int {
	return len(v.Items)
}

// FindByURL returns the first listing with the given URL, or nil.
func (v *Listings) FindByURL(url string) *Listing {
	for _, l := range v.Items {
		if l.URL == url {
			return l
		}
	}
	return nil
}

// SortByScore orders listings by match score, highest first. The sort is
// stable: listings with equal scores keep their relative order.
func (v *Listings) SortByScore() {
	sort.SliceStable(v.Items, func(i, j int) bool {
		return v.Items[i].MatchScore > v.Items[j].MatchScore
	})
}

// SortByRecency orders listings newest first.
func (v *Listings) SortByRecency(now time.Time) {
	sort.SliceStable(v.Items, func(i, j int) bool {
		return v.Items[i].PostedTime(now).After(v.Items[j].PostedTime(now))
	})
}

// ClampScores forces every score back into the valid range.
func (v *Listings) ClampScores() {
	for _, l := range v.Items {
		l.SetScore(l.MatchScore)
	}
}

// Sources returns the distinct source names present in the collection.
func (v *Listings) Sources() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, l := range v.Items {
		if _, ok := seen[l.Source]; ok {
			continue
		}
		seen[l.Source] = struct{}{}
		names = append(names, l.Source)
	}
	return names
}

// ReportBySource groups brief listing summaries by their source.
func (v *Listings) ReportBySource() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, l := range v.Items {
		report[l.Source] = append(report[l.Source], map[string]string{
			"title":    l.Title,
			"company":  l.Company,
			"location": l.Location,
			"url":      l.URL,
			"salary":   l.Salary,
			"score":    fmt.Sprintf("%.2f", l.MatchScore),
		})
	}
	return report
}

// DumpToTmpFile writes the listings as indented JSON to a temp file and
// returns its name.
func (v *Listings) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "jobs_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// Exclude removes listings matched by the predicate, preserving order, and
// returns the titles of what was removed.
func (v *Listings) Exclude(match func(*Listing) bool) []string {
	kept := make([]*Listing, 0, len(v.Items))
	var removed []string
	for _, l := range v.Items {
		if match(l) {
			removed = append(removed, l.Title)
			continue
		}
		kept = append(kept, l)
	}
	v.Items = kept
	return removed
}

// RemoveByIndex removes a listing by index. Does not preserve order.
func (v *Listings) RemoveByIndex(idx int) {
	v.Items[idx] = v.Items[len(v.Items)-1]
	v.Items = v.Items[:len(v.Items)-1]
}
