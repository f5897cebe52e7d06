package sources

import (
	"context"
	"fmt"

	"github.com/cliffordnwanna/job-hunter/internal/jobs"
)

const remoteOKAPIURL = "https://remoteok.com/api"

// RemoteOK fetches from remoteok.com, one of the largest remote job boards.
// The API returns a JSON array whose first element is a legal notice, not a
// job.
type RemoteOK struct {
	client *Client
	APIURL string
}

func NewRemoteOK(client *Client) *RemoteOK {
	return &RemoteOK{client: client, APIURL: remoteOKAPIURL}
}

func (s *RemoteOK) Name() string { return "RemoteOK" }

type remoteOKRecord struct {
	ID          string   `json:"id"`
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	SalaryMin   string   `json:"salary_min"`
	Date        string   `json:"date"`
}

func (s *RemoteOK) Fetch(ctx context.Context, limit int) ([]*jobs.Listing, error) {
	var raw []map[string]any
	if err := s.client.getJSON(ctx, s.APIURL, nil, &raw); err != nil {
		return nil, err
	}

	listings := make([]*jobs.Listing, 0, limit)
	for i, item := range raw {
		if i == 0 {
			continue
		}
		if len(listings) >= limit {
			break
		}

		var rec remoteOKRecord
		if err := decodeRecords(item, &rec); err != nil || rec.Position == "" {
			continue
		}

		salary := rec.SalaryMin
		if salary == "" || salary == "0" {
			salary = "Not specified"
		}

		listings = append(listings, &jobs.Listing{
			Title:       rec.Position,
			Company:     rec.Company,
			Location:    "Remote",
			Description: rec.Description,
			Tags:        rec.Tags,
			URL:         fmt.Sprintf("https://remoteok.com/remote-jobs/%s", rec.ID),
			Salary:      salary,
			PostedDate:  orDefault(rec.Date, "N/A"),
			Source:      s.Name(),
		})
	}

	return listings, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
