package sources

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/cliffordnwanna/job-hunter/internal/jobs"
)

const himalayasAPIURL = "https://himalayas.app/jobs/api"

// Himalayas fetches from himalayas.app, remote-first company jobs.
type Himalayas struct {
	client *Client
	APIURL string
}

func NewHimalayas(client *Client) *Himalayas {
	return &Himalayas{client: client, APIURL: himalayasAPIURL}
}

func (s *Himalayas) Name() string { return "Himalayas" }

type himalayasRecord struct {
	Title          string   `json:"title"`
	CompanyName    string   `json:"companyName"`
	Description    string   `json:"description"`
	Categories     []string `json:"categories"`
	Slug           string   `json:"slug"`
	MinSalary      string   `json:"minSalary"`
	SalaryCurrency string   `json:"salaryCurrency"`
	PubDate        string   `json:"pubDate"`
}

func (s *Himalayas) Fetch(ctx context.Context, limit int) ([]*jobs.Listing, error) {
	q := url.Values{}
	q.Set("limit", "50")

	var resp struct {
		Jobs []map[string]any `json:"jobs"`
	}
	if err := s.client.getJSON(ctx, s.APIURL, q, &resp); err != nil {
		return nil, err
	}

	var records []himalayasRecord
	if err := decodeRecords(resp.Jobs, &records); err != nil {
		return nil, err
	}

	listings := make([]*jobs.Listing, 0, limit)
	for _, rec := range records {
		if len(listings) >= limit {
			break
		}

		salary := "Not specified"
		if rec.MinSalary != "" && rec.MinSalary != "0" {
			salary = strings.TrimSpace(fmt.Sprintf("%s %s", rec.SalaryCurrency, rec.MinSalary))
		}

		listings = append(listings, &jobs.Listing{
			Title:       rec.Title,
			Company:     rec.CompanyName,
			Location:    "Remote",
			Description: rec.Description,
			Tags:        rec.Categories,
			URL:         fmt.Sprintf("https://himalayas.app/jobs/%s", rec.Slug),
			Salary:      salary,
			PostedDate:  orDefault(rec.PubDate, "N/A"),
			Source:      s.Name(),
		})
	}

	return listings, nil
}
