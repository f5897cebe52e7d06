package jobs

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetScoreClamps(t *testing.T) {
	l := &Listing{}

	l.SetScore(120)
	assert.Equal(t, 100.0, l.MatchScore)

	l.SetScore(-5)
	assert.Equal(t, 0.0, l.MatchScore)

	l.SetScore(42.5)
	l.AdjustScore(30)
	assert.Equal(t, 72.5, l.MatchScore)

	l.AdjustScore(100)
	assert.Equal(t, 100.0, l.MatchScore)
}

func TestPostedTime(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		raw  string
		want time.Time
	}{
		{"2026-01-20", time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)},
		{"2026-01-20T08:30:00Z", time.Date(2026, 1, 20, 8, 30, 0, 0, time.UTC)},
		{"2026-01-20T08:30:00", time.Date(2026, 1, 20, 8, 30, 0, 0, time.UTC)},
		{"N/A", now},
		{"Recent", now},
		{"", now},
		{"yesterday-ish", now},
	}

	for _, tc := range cases {
		l := &Listing{PostedDate: tc.raw}
		assert.Equalf(t, tc.want, l.PostedTime(now), "raw %q", tc.raw)
	}
}

func TestSortByScoreIsStable(t *testing.T) {
	v := &Listings{Items: []*Listing{
		{Title: "a", MatchScore: 50},
		{Title: "b", MatchScore: 80},
		{Title: "c", MatchScore: 50},
		{Title: "d", MatchScore: 90},
	}}

	v.SortByScore()

	titles := make([]string, 0, v.Len())
	for _, l := range v.Items {
		titles = append(titles, l.Title)
	}
	assert.Equal(t, []string{"d", "b", "a", "c"}, titles)
}

func TestSortByRecency(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	v := &Listings{Items: []*Listing{
		{Title: "old", PostedDate: "2026-08-01"},
		{Title: "fresh", PostedDate: "Recent"},
		{Title: "mid", PostedDate: "2026-08-20"},
	}}

	v.SortByRecency(now)

	assert.Equal(t, "fresh", v.Items[0].Title)
	assert.Equal(t, "mid", v.Items[1].Title)
	assert.Equal(t, "old", v.Items[2].Title)
}

func TestExclude(t *testing.T) {
	v := &Listings{Items: []*Listing{
		{Title: "Keep Me", Company: "Acme"},
		{Title: "Drop Me", Company: "Globex"},
		{Title: "Keep Too", Company: "Initech"},
	}}

	removed := v.Exclude(func(l *Listing) bool { return l.Company == "Globex" })

	assert.Equal(t, []string{"Drop Me"}, removed)
	require.Equal(t, 2, v.Len())
	assert.Equal(t, "Keep Me", v.Items[0].Title)
	assert.Equal(t, "Keep Too", v.Items[1].Title)
}

func TestWriteCSV(t *testing.T) {
	v := &Listings{Items: []*Listing{
		{
			Title: "Data Analyst", Company: "Acme", Location: "Remote",
			Description: "crunch numbers", URL: "https://example.com/1",
			Salary: "Not specified", PostedDate: "2026-01-02", Source: "RemoteOK",
			MatchScore: 77.5, ScoreBreakdown: "Text:40% | Skills:80% | Fit:+15",
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, v.WriteCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Title,Company,Location,Description,URL,Salary,Posted,Source,Match Score,Match Explanation", lines[0])
	assert.Contains(t, lines[1], "Data Analyst")
	assert.Contains(t, lines[1], "77.50")
}

func TestFindByURLAndRemove(t *testing.T) {
	v := &Listings{Items: []*Listing{
		{Title: "A", URL: "https://x/1"},
		{Title: "B", URL: "https://x/2"},
	}}

	require.NotNil(t, v.FindByURL("https://x/2"))
	assert.Nil(t, v.FindByURL("https://x/3"))

	v.RemoveByIndex(0)
	assert.Equal(t, 1, v.Len())
	assert.Equal(t, "B", v.Items[0].Title)
}

func TestReportBySource(t *testing.T) {
	v := &Listings{Items: []*Listing{
		{Title: "A", Source: "RemoteOK"},
		{Title: "B", Source: "Remotive"},
		{Title: "C", Source: "RemoteOK"},
	}}

	report := v.ReportBySource()
	assert.Len(t, report["RemoteOK"], 2)
	assert.Len(t, report["Remotive"], 1)
	assert.Equal(t, []string{"RemoteOK", "Remotive"}, v.Sources())
}
