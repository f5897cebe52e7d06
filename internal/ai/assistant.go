package ai

import (
	"context"

	"github.com/cliffordnwanna/job-hunter/internal/jobs"
	"github.com/cliffordnwanna/job-hunter/internal/profile"
)

// Draft is an AI-polished cover letter. Raw keeps the unprocessed model
// response for debugging.
type Draft struct {
	CoverLetter string
	Raw         string
}

// Writer rewrites a template-generated cover letter into something specific
// to the applicant and the listing.
type Writer interface {
	Compose(ctx context.Context, p profile.Profile, l *jobs.Listing, draft string) (*Draft, error)
}
