package sources

import (
	"context"

	"github.com/cliffordnwanna/job-hunter/internal/jobs"
)

const remotiveAPIURL = "https://remotive.com/api/remote-jobs"

// Remotive fetches from remotive.com, curated remote jobs in tech.
type Remotive struct {
	client *Client
	APIURL string
}

func NewRemotive(client *Client) *Remotive {
	return &Remotive{client: client, APIURL: remotiveAPIURL}
}

func (s *Remotive) Name() string { return "Remotive" }

type remotiveRecord struct {
	Title           string `json:"title"`
	CompanyName     string `json:"company_name"`
	Location        string `json:"candidate_required_location"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	URL             string `json:"url"`
	Salary          string `json:"salary"`
	PublicationDate string `json:"publication_date"`
}

func (s *Remotive) Fetch(ctx context.Context, limit int) ([]*jobs.Listing, error) {
	var resp struct {
		Jobs []map[string]any `json:"jobs"`
	}
	if err := s.client.getJSON(ctx, s.APIURL, nil, &resp); err != nil {
		return nil, err
	}

	var records []remotiveRecord
	if err := decodeRecords(resp.Jobs, &records); err != nil {
		return nil, err
	}

	listings := make([]*jobs.Listing, 0, limit)
	for _, rec := range records {
		if len(listings) >= limit {
			break
		}
		listings = append(listings, &jobs.Listing{
			Title:       rec.Title,
			Company:     rec.CompanyName,
			Location:    orDefault(rec.Location, "Remote"),
			Description: rec.Description,
			Tags:        []string{rec.Category},
			URL:         rec.URL,
			Salary:      orDefault(rec.Salary, "Not specified"),
			PostedDate:  orDefault(rec.PublicationDate, "N/A"),
			Source:      s.Name(),
		})
	}

	return listings, nil
}
