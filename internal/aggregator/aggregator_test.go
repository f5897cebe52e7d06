package aggregator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cliffordnwanna/job-hunter/internal/jobs"
	"github.com/cliffordnwanna/job-hunter/internal/sources"
)

type stubSource struct {
	name     string
	listings []*jobs.Listing
	err      error
	delay    time.Duration
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context, _ int) ([]*jobs.Listing, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.listings, nil
}

func listing(title, company, url, source string) *jobs.Listing {
	return &jobs.Listing{Title: title, Company: company, URL: url, Source: source}
}

func TestAggregateIsolatesFailedSources(t *testing.T) {
	srcs := []sources.Source{
		&stubSource{name: "first", listings: []*jobs.Listing{listing("Data Analyst", "Acme", "https://a/1", "first")}},
		&stubSource{name: "broken", err: errors.New("connection refused")},
		&stubSource{name: "third", listings: []*jobs.Listing{listing("Data Engineer", "Globex", "https://c/1", "third")}},
	}

	agg := New(srcs, zap.NewNop(), Config{})
	result, counts := agg.Aggregate(context.Background(), nil, nil)

	assert.Equal(t, 2, result.Len())
	assert.Equal(t, 0, counts["broken"])
	assert.Equal(t, 1, counts["first"])
}

func TestAggregateMergeOrderIsDeterministic(t *testing.T) {
	// the slow high-priority source must still come first in the merge
	srcs := []sources.Source{
		&stubSource{name: "slow", delay: 50 * time.Millisecond, listings: []*jobs.Listing{listing("A", "One", "https://s/1", "slow")}},
		&stubSource{name: "fast", listings: []*jobs.Listing{listing("B", "Two", "https://f/1", "fast")}},
	}

	agg := New(srcs, zap.NewNop(), Config{Concurrency: 2})
	result, _ := agg.Aggregate(context.Background(), nil, nil)

	require.Equal(t, 2, result.Len())
	assert.Equal(t, "slow", result.Items[0].Source)
	assert.Equal(t, "fast", result.Items[1].Source)
}

func TestAggregateDedupFirstSeenWins(t *testing.T) {
	srcs := []sources.Source{
		&stubSource{name: "primary", listings: []*jobs.Listing{listing("Data Analyst", "Acme", "https://jobs/1", "primary")}},
		&stubSource{name: "secondary", listings: []*jobs.Listing{
			listing("Data Analyst", "Acme", "https://jobs/1", "secondary"),
			listing("Data Analyst", "Acme", "https://other/url", "secondary"),
		}},
	}

	agg := New(srcs, zap.NewNop(), Config{})
	result, _ := agg.Aggregate(context.Background(), nil, nil)

	require.Equal(t, 1, result.Len())
	assert.Equal(t, "primary", result.Items[0].Source)
}

func TestAggregateTimesOutSlowSource(t *testing.T) {
	srcs := []sources.Source{
		&stubSource{name: "stuck", delay: time.Second, listings: []*jobs.Listing{listing("X", "Y", "https://x/1", "stuck")}},
		&stubSource{name: "quick", listings: []*jobs.Listing{listing("Quick", "Co", "https://q/1", "quick")}},
	}

	agg := New(srcs, zap.NewNop(), Config{Timeout: 20 * time.Millisecond, Concurrency: 2})
	result, counts := agg.Aggregate(context.Background(), nil, nil)

	assert.Equal(t, 1, result.Len())
	assert.Equal(t, 0, counts["stuck"])
}

func TestAggregateKeywordPrefilter(t *testing.T) {
	srcs := []sources.Source{
		&stubSource{name: "board", listings: []*jobs.Listing{
			listing("Senior Data Scientist", "Acme", "https://b/1", "board"),
			listing("Junior Barista", "Cafe", "https://b/2", "board"),
			{Title: "Platform Role", Company: "Globex", URL: "https://b/3", Source: "board", Description: "We need an analytics mind."},
		}},
	}

	agg := New(srcs, zap.NewNop(), Config{})
	result, _ := agg.Aggregate(context.Background(), []string{"data analyst"}, nil)

	require.Equal(t, 2, result.Len())
	assert.Equal(t, "Senior Data Scientist", result.Items[0].Title)
	assert.Equal(t, "Platform Role", result.Items[1].Title)
}

func TestAggregateProgressCallback(t *testing.T) {
	srcs := []sources.Source{
		&stubSource{name: "a", listings: nil},
		&stubSource{name: "b", listings: nil},
	}

	var fractions []float64
	agg := New(srcs, zap.NewNop(), Config{Concurrency: 1})
	agg.Aggregate(context.Background(), nil, func(f float64, _ string) {
		fractions = append(fractions, f)
	})

	require.NotEmpty(t, fractions)
	for _, f := range fractions {
		assert.GreaterOrEqual(t, f, 0.0)
		assert.LessOrEqual(t, f, 1.0)
	}
	assert.Equal(t, 1.0, fractions[len(fractions)-1])
}

func TestDeduplicateByTitleCompanyWithoutURL(t *testing.T) {
	in := []*jobs.Listing{
		listing("Writer", "Acme", "", "a"),
		listing("writer", "ACME", "", "b"),
		listing("Writer", "Globex", "", "c"),
	}

	out := Deduplicate(in)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Source)
	assert.Equal(t, "c", out[1].Source)
}

func TestDeduplicateByURL(t *testing.T) {
	in := []*jobs.Listing{
		listing("Role A", "Acme", "https://jobs/1", "a"),
		listing("Different Title", "Other Co", "https://jobs/1", "b"),
	}

	out := Deduplicate(in)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].Source)
}

func TestExpandKeywords(t *testing.T) {
	expanded := ExpandKeywords([]string{"Data Analyst"})
	assert.Contains(t, expanded, "data analyst")
	assert.Contains(t, expanded, "analytics")
	assert.Contains(t, expanded, "scientist")

	assert.Empty(t, ExpandKeywords(nil))
	assert.Empty(t, ExpandKeywords([]string{"  "}))
}
