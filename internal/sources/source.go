// Package sources implements fetchers for the supported remote-job boards.
//
// Every provider normalizes its own response schema into jobs.Listing. The
// aggregator owns failure isolation; a Source just reports what went wrong.
package sources

import (
	"context"
	"fmt"

	"github.com/cliffordnwanna/job-hunter/internal/jobs"
)

// Source is a single job-listing provider with its own response schema and
// failure modes.
type Source interface {
	Name() string
	Fetch(ctx context.Context, limit int) ([]*jobs.Listing, error)
}

// FetchError wraps a failure of one source so the aggregator can isolate it.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// All returns every supported source in fixed priority order. The order is
// the dedup tie-break: when two sources carry the same job, the earlier
// source wins.
func All(client *Client) []Source {
	return []Source{
		NewRemoteOK(client),
		NewRemotive(client),
		NewJobicy(client),
		NewArbeitnow(client),
		NewHimalayas(client),
		NewWeWorkRemotely(client),
	}
}
