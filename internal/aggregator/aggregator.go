// Package aggregator queries every job source, isolates per-source failures,
// applies the keyword relevance pre-filter and deduplicates the merged
// result.
package aggregator

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cliffordnwanna/job-hunter/internal/jobs"
	"github.com/cliffordnwanna/job-hunter/internal/logger"
	"github.com/cliffordnwanna/job-hunter/internal/sources"
)

const (
	defaultConcurrency    = 4
	defaultPerSourceLimit = 100

	// descPrefilterLen caps how much of a description the keyword
	// pre-filter inspects.
	descPrefilterLen = 500
)

// Progress reports aggregation progress as a fraction in [0,1] plus a short
// message. Purely observational: a nil callback is always tolerated.
type Progress func(fraction float64, message string)

// Config tunes the aggregation run.
type Config struct {
	// Timeout bounds each individual source fetch.
	Timeout time.Duration
	// Concurrency bounds how many sources are queried at once.
	Concurrency int
	// PerSourceLimit caps listings taken from a single source.
	PerSourceLimit int
}

type Aggregator struct {
	srcs   []sources.Source
	logger *zap.Logger
	cfg    Config
}

func New(srcs []sources.Source, logger *zap.Logger, cfg Config) *Aggregator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = sources.DefaultTimeout
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	if cfg.PerSourceLimit <= 0 {
		cfg.PerSourceLimit = defaultPerSourceLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{srcs: srcs, logger: logger, cfg: cfg}
}

// Aggregate fetches all sources concurrently and returns the merged,
// pre-filtered, deduplicated listings along with per-source counts.
//
// It never fails: a source that errors or times out contributes zero
// listings and everything else survives. The merge order is the fixed source
// priority order, independent of fetch latency, so dedup first-seen
// semantics stay deterministic.
func (a *Aggregator) Aggregate(ctx context.Context, keywords []string, progress Progress) (*jobs.Listings, map[string]int) {
	results := make([][]*jobs.Listing, len(a.srcs))
	counts := make(map[string]int, len(a.srcs))

	var completed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Concurrency)

	for i, src := range a.srcs {
		g.Go(func() error {
			sctx, cancel := context.WithTimeout(gctx, a.cfg.Timeout)
			defer cancel()

			listings, err := src.Fetch(sctx, a.cfg.PerSourceLimit)
			if err != nil {
				ferr := &sources.FetchError{Source: src.Name(), Err: err}
				a.logger.Warn("source fetch failed, skipping",
					zap.String(logger.FieldSource, src.Name()),
					zap.Error(ferr),
				)
				listings = nil
			}
			results[i] = listings

			done := completed.Add(1)
			report(progress, 0.7*float64(done)/float64(len(a.srcs)),
				"searched "+src.Name())
			return nil
		})
	}
	g.Wait()

	var merged []*jobs.Listing
	for i, src := range a.srcs {
		counts[src.Name()] = len(results[i])
		merged = append(merged, results[i]...)
	}

	a.logger.Info("fetched all sources",
		zap.Int("total", len(merged)),
		zap.Any("per_source", counts),
	)

	report(progress, 0.8, "filtering by keyword relevance")
	filtered := prefilter(merged, keywords)

	report(progress, 0.9, "removing duplicates")
	unique := Deduplicate(filtered)

	a.logger.Info("aggregation complete",
		zap.Int("initial", len(merged)),
		zap.Int("after_keywords", len(filtered)),
		zap.Int("unique", len(unique)),
	)
	report(progress, 1.0, "aggregation complete")

	return &jobs.Listings{Items: unique}, counts
}

// prefilter keeps listings mentioning any expanded keyword in the title or
// the head of the description. Deliberately a raw substring check: this is a
// coarse recall filter, relevance judgment belongs to the scorer.
func prefilter(listings []*jobs.Listing, keywords []string) []*jobs.Listing {
	expanded := ExpandKeywords(keywords)
	if len(expanded) == 0 {
		return listings
	}

	kept := make([]*jobs.Listing, 0, len(listings))
	for _, l := range listings {
		title := strings.ToLower(l.Title)
		desc := l.Description
		if len(desc) > descPrefilterLen {
			desc = desc[:descPrefilterLen]
		}
		combined := title + " " + strings.ToLower(desc)

		for _, kw := range expanded {
			if strings.Contains(combined, kw) {
				kept = append(kept, l)
				break
			}
		}
	}
	return kept
}

// Deduplicate removes duplicate listings in one pass. Identity is the URL
// when present, with the lowercased (title, company) pair as fallback; the
// first occurrence wins.
func Deduplicate(listings []*jobs.Listing) []*jobs.Listing {
	seenURLs := make(map[string]struct{})
	seenKeys := make(map[string]struct{})

	unique := make([]*jobs.Listing, 0, len(listings))
	for _, l := range listings {
		if l.URL != "" {
			if _, ok := seenURLs[l.URL]; ok {
				continue
			}
		}
		key := l.DedupKey()
		if _, ok := seenKeys[key]; ok {
			continue
		}

		if l.URL != "" {
			seenURLs[l.URL] = struct{}{}
		}
		seenKeys[key] = struct{}{}
		unique = append(unique, l)
	}
	return unique
}

func report(progress Progress, fraction float64, message string) {
	if progress != nil {
		progress(fraction, message)
	}
}
