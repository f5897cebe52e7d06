package sources

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/cliffordnwanna/job-hunter/internal/jobs"
)

const jobicyAPIURL = "https://jobicy.com/api/v2/remote-jobs"

// Jobicy fetches from jobicy.com, remote jobs worldwide.
type Jobicy struct {
	client *Client
	APIURL string
}

func NewJobicy(client *Client) *Jobicy {
	return &Jobicy{client: client, APIURL: jobicyAPIURL}
}

func (s *Jobicy) Name() string { return "Jobicy" }

type jobicyRecord struct {
	JobTitle       string `json:"jobTitle"`
	CompanyName    string `json:"companyName"`
	JobGeo         string `json:"jobGeo"`
	JobDescription string `json:"jobDescription"`
	JobIndustry    string `json:"jobIndustry"`
	URL            string `json:"url"`
	SalaryMin      string `json:"annualSalaryMin"`
	SalaryMax      string `json:"annualSalaryMax"`
	PubDate        string `json:"pubDate"`
}

func (s *Jobicy) Fetch(ctx context.Context, limit int) ([]*jobs.Listing, error) {
	q := url.Values{}
	q.Set("count", "50")

	var resp struct {
		Jobs []map[string]any `json:"jobs"`
	}
	if err := s.client.getJSON(ctx, s.APIURL, q, &resp); err != nil {
		return nil, err
	}

	var records []jobicyRecord
	if err := decodeRecords(resp.Jobs, &records); err != nil {
		return nil, err
	}

	listings := make([]*jobs.Listing, 0, limit)
	for _, rec := range records {
		if len(listings) >= limit {
			break
		}
		listings = append(listings, &jobs.Listing{
			Title:       rec.JobTitle,
			Company:     rec.CompanyName,
			Location:    orDefault(rec.JobGeo, "Remote"),
			Description: rec.JobDescription,
			Tags:        []string{rec.JobIndustry},
			URL:         rec.URL,
			Salary:      salaryRange(rec.SalaryMin, rec.SalaryMax),
			PostedDate:  orDefault(rec.PubDate, "N/A"),
			Source:      s.Name(),
		})
	}

	return listings, nil
}

func salaryRange(min, max string) string {
	s := strings.Trim(fmt.Sprintf("%s - %s", min, max), " -")
	if s == "" {
		return "Not specified"
	}
	return s
}
