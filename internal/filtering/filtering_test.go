package filtering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cliffordnwanna/job-hunter/internal/jobs"
)

var testNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func testDeps() Deps {
	return Deps{Logger: zap.NewNop(), Now: testNow}
}

func listingsOf(items ...*jobs.Listing) *jobs.Listings {
	return &jobs.Listings{Items: items}
}

func TestKeywordBoostPrefersTitleMentions(t *testing.T) {
	inTitle := &jobs.Listing{Title: "Data Analyst", MatchScore: 50}
	inDesc := &jobs.Listing{Title: "Reporting Role", Description: "daily data work", MatchScore: 50}
	neither := &jobs.Listing{Title: "Gardener", MatchScore: 50}

	f := NewKeywordBoost([]string{"Data"})
	_, step := f.Apply(testDeps(), listingsOf(inTitle, inDesc, neither))

	assert.Equal(t, Step{Initial: 3, Left: 3}, step)
	assert.Equal(t, 65.0, inTitle.MatchScore)
	assert.Equal(t, 60.0, inDesc.MatchScore)
	assert.Equal(t, 50.0, neither.MatchScore)
}

func TestKeywordBoostClampsAtMaximum(t *testing.T) {
	l := &jobs.Listing{Title: "Data Analyst", MatchScore: 95}
	NewKeywordBoost([]string{"data"}).Apply(testDeps(), listingsOf(l))
	assert.Equal(t, jobs.MaxScore, l.MatchScore)
}

func TestTitleExcludeMatchesWholeWordsOnly(t *testing.T) {
	scala := &jobs.Listing{Title: "Scala Developer"}
	escalation := &jobs.Listing{Title: "Escalation Manager"}

	f := NewTitleExclude([]string{"scala"})
	out, step := f.Apply(testDeps(), listingsOf(scala, escalation))

	require.Equal(t, 1, out.Len())
	assert.Equal(t, "Escalation Manager", out.Items[0].Title)
	assert.Equal(t, Step{Initial: 2, Dropped: 1, Left: 1}, step)
}

func TestRecencyWidensWindowWhenTooStrict(t *testing.T) {
	fresh := &jobs.Listing{Title: "Fresh", PostedDate: testNow.AddDate(0, 0, -3).Format("2006-01-02")}
	monthOld := &jobs.Listing{Title: "Month", PostedDate: testNow.AddDate(0, 0, -40).Format("2006-01-02")}
	ancient := &jobs.Listing{Title: "Ancient", PostedDate: "2024-01-01"}

	f := NewRecency(7, DefaultRelaxation())
	out, _ := f.Apply(testDeps(), listingsOf(fresh, monthOld, ancient))

	// 7 days keeps one listing, under the acceptable minimum, so the
	// window widens to 45 days and picks up the month-old posting too.
	require.Equal(t, 2, out.Len())
	assert.Equal(t, "Fresh", out.Items[0].Title)
	assert.Equal(t, "Month", out.Items[1].Title)
}

func TestRecencyTreatsSentinelDatesAsFresh(t *testing.T) {
	l := &jobs.Listing{Title: "Sentinel", PostedDate: "Recent"}
	out, _ := NewRecency(7, DefaultRelaxation()).Apply(testDeps(), listingsOf(l))
	assert.Equal(t, 1, out.Len())
}

func TestScoreCutoffKeepsPreferredWhenEnough(t *testing.T) {
	relax := Relaxation{MinResults: 2}
	items := listingsOf(
		&jobs.Listing{Title: "A", MatchScore: 80},
		&jobs.Listing{Title: "B", MatchScore: 75},
		&jobs.Listing{Title: "C", MatchScore: 40},
	)

	out, step := NewScoreCutoff(70, relax).Apply(testDeps(), items)
	require.Equal(t, 2, out.Len())
	assert.Equal(t, 1, step.Dropped)
}

func TestScoreCutoffRelaxesProgressively(t *testing.T) {
	relax := Relaxation{MinResults: 2, ScoreStep: 20, ScoreStepFloor: 20, ScoreFloor: 10}
	items := listingsOf(
		&jobs.Listing{Title: "A", MatchScore: 72},
		&jobs.Listing{Title: "B", MatchScore: 55},
		&jobs.Listing{Title: "C", MatchScore: 8},
	)

	// cutoff 70 keeps one, relaxed cutoff 50 keeps two
	out, _ := NewScoreCutoff(70, relax).Apply(testDeps(), items)
	require.Equal(t, 2, out.Len())
	assert.Equal(t, "B", out.Items[1].Title)
}

func TestScoreCutoffFallsBackToBestScores(t *testing.T) {
	relax := Relaxation{MinResults: 3, TopN: 3}
	items := listingsOf(
		&jobs.Listing{Title: "A", MatchScore: 5},
		&jobs.Listing{Title: "B", MatchScore: 9},
		&jobs.Listing{Title: "C", MatchScore: 2},
		&jobs.Listing{Title: "D", MatchScore: 7},
	)

	out, _ := NewScoreCutoff(70, relax).Apply(testDeps(), items)
	require.Equal(t, 3, out.Len())
	// original order survives the fallback, only the weakest is gone
	assert.Equal(t, "A", out.Items[0].Title)
	assert.Equal(t, "B", out.Items[1].Title)
	assert.Equal(t, "D", out.Items[2].Title)
}

func TestScoreCutoffNeverEmptiesNonTrivialInput(t *testing.T) {
	items := listingsOf(
		&jobs.Listing{Title: "A", MatchScore: 1},
		&jobs.Listing{Title: "B", MatchScore: 2},
		&jobs.Listing{Title: "C", MatchScore: 3},
		&jobs.Listing{Title: "D", MatchScore: 4},
		&jobs.Listing{Title: "E", MatchScore: 5},
	)

	out, _ := NewScoreCutoff(99, DefaultRelaxation()).Apply(testDeps(), items)
	assert.GreaterOrEqual(t, out.Len(), 5)
}

func TestLocationWorldwideSeparatesOpenFromRestricted(t *testing.T) {
	open := &jobs.Listing{Title: "Open", Location: "Anywhere", MatchScore: 50}
	restricted := &jobs.Listing{Title: "Restricted", Location: "Austin, TX", MatchScore: 50}

	f := NewLocationScope(ScopeWorldwide, DefaultRelaxation())
	out, step := f.Apply(testDeps(), listingsOf(open, restricted))

	assert.Equal(t, 2, out.Len())
	assert.Zero(t, step.Dropped)
	assert.GreaterOrEqual(t, open.MatchScore-restricted.MatchScore, 70.0)
}

func TestLocationWorldwideBoostsWorldwideUSMentions(t *testing.T) {
	both := &jobs.Listing{Title: "Both", Location: "Remote - USA or Worldwide", MatchScore: 50}

	NewLocationScope(ScopeWorldwide, DefaultRelaxation()).Apply(testDeps(), listingsOf(both))

	assert.Equal(t, 80.0, both.MatchScore)
}

func TestLocationUSAKeepsOnlyUSMentions(t *testing.T) {
	relax := Relaxation{MinResults: 1}
	usa := &jobs.Listing{Title: "USA", Location: "United States"}
	europe := &jobs.Listing{Title: "EU", Location: "Europe only"}
	remote := &jobs.Listing{Title: "Remote", Location: "Remote"}

	out, step := NewLocationScope(ScopeUSA, relax).Apply(testDeps(), listingsOf(usa, europe, remote))
	require.Equal(t, 1, out.Len())
	assert.Equal(t, "USA", out.Items[0].Title)
	assert.Equal(t, Step{Initial: 3, Dropped: 2, Left: 1}, step)
}

func TestLocationUSADropsNonUSWhenEnoughMatches(t *testing.T) {
	locations := []string{"USA", "New York, NY", "US only", "Austin, TX", "United States"}
	items := make([]*jobs.Listing, 0, len(locations)+1)
	for _, loc := range locations {
		items = append(items, &jobs.Listing{Title: loc, Location: loc})
	}
	items = append(items, &jobs.Listing{Title: "DE", Location: "Berlin, Germany"})

	out, _ := NewLocationScope(ScopeUSA, DefaultRelaxation()).Apply(testDeps(), listingsOf(items...))
	require.Equal(t, len(locations), out.Len())
	for _, l := range out.Items {
		assert.NotEqual(t, "DE", l.Title)
	}
}

func TestLocationUSAFailsOpenWhenTooStrict(t *testing.T) {
	europe := &jobs.Listing{Title: "EU", Location: "EMEA"}
	asia := &jobs.Listing{Title: "Asia", Location: "Asia"}

	out, _ := NewLocationScope(ScopeUSA, DefaultRelaxation()).Apply(testDeps(), listingsOf(europe, asia))
	assert.Equal(t, 2, out.Len())
}

func TestClassifyLocation(t *testing.T) {
	cases := []struct {
		location string
		want     locationScope
	}{
		{"Anywhere in the world", scopeOpen},
		{"Remote", scopeOpen},
		{"", scopeOpen},
		{"Global", scopeOpen},
		{"USA only", scopeUSRestricted},
		{"New York, NY", scopeUSRestricted},
		{"United States", scopeUSRestricted},
		{"Remote - USA or Worldwide", scopeOpen},
		{"Europe only", scopeOpen},
		{"LATAM", scopeOpen},
		{"Berlin", scopeUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classifyLocation(tc.location), tc.location)
	}
}

func TestRunAppliesFullChain(t *testing.T) {
	items := listingsOf(
		&jobs.Listing{Title: "Data Analyst", Location: "Anywhere", MatchScore: 60, PostedDate: testNow.AddDate(0, 0, -2).Format("2006-01-02")},
		&jobs.Listing{Title: "Scala Developer", Location: "Remote", MatchScore: 90, PostedDate: testNow.AddDate(0, 0, -2).Format("2006-01-02")},
		&jobs.Listing{Title: "Support Agent", Location: "Boston, MA", MatchScore: 55, PostedDate: testNow.AddDate(0, 0, -2).Format("2006-01-02")},
	)

	prefs := Preferences{
		SearchKeywords:       []string{"data"},
		ExcludeTitleKeywords: []string{"scala"},
		MinScore:             50,
		MaxAgeDays:           14,
		RemoteScope:          ScopeWorldwide,
	}
	out := Run(testDeps(), Steps(prefs, Relaxation{}), items)

	require.Equal(t, 2, out.Len())
	// boosted and worldwide-friendly analyst outranks the US-bound agent
	assert.Equal(t, "Data Analyst", out.Items[0].Title)
	assert.Equal(t, "Support Agent", out.Items[1].Title)
	assert.Greater(t, out.Items[0].MatchScore, out.Items[1].MatchScore)
	for _, l := range out.Items {
		assert.LessOrEqual(t, l.MatchScore, jobs.MaxScore)
		assert.GreaterOrEqual(t, l.MatchScore, jobs.MinScore)
	}
}
