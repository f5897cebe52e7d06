package sources

import (
	"context"
	"time"

	"github.com/cliffordnwanna/job-hunter/internal/jobs"
	"github.com/cliffordnwanna/job-hunter/internal/util"
)

const (
	arbeitnowAPIURL = "https://www.arbeitnow.com/api/job-board-api"

	// arbeitnowMaxPages caps pagination; deeper pages are stale postings.
	arbeitnowMaxPages = 3
	arbeitnowPageWait = 300 * time.Millisecond
)

// Arbeitnow fetches from arbeitnow.com, a mostly-EU job board. The feed mixes
// on-site and remote postings; only remote ones are kept.
type Arbeitnow struct {
	client *Client
	APIURL string
}

func NewArbeitnow(client *Client) *Arbeitnow {
	return &Arbeitnow{client: client, APIURL: arbeitnowAPIURL}
}

func (s *Arbeitnow) Name() string { return "Arbeitnow" }

type arbeitnowRecord struct {
	Title       string   `json:"title"`
	CompanyName string   `json:"company_name"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	URL         string   `json:"url"`
	Remote      bool     `json:"remote"`
	CreatedAt   int64    `json:"created_at"`
}

func (s *Arbeitnow) Fetch(ctx context.Context, limit int) ([]*jobs.Listing, error) {
	listings := make([]*jobs.Listing, 0, limit)
	next := s.APIURL

	for page := 0; page < arbeitnowMaxPages && next != "" && len(listings) < limit; page++ {
		if page > 0 {
			if err := util.Wait(ctx, arbeitnowPageWait); err != nil {
				return listings, err
			}
		}

		var resp struct {
			Data  []map[string]any `json:"data"`
			Links struct {
				Next string `json:"next"`
			} `json:"links"`
		}
		if err := s.client.getJSON(ctx, next, nil, &resp); err != nil {
			if page == 0 {
				return nil, err
			}
			// keep what the earlier pages returned
			return listings, nil
		}

		var records []arbeitnowRecord
		if err := decodeRecords(resp.Data, &records); err != nil {
			return nil, err
		}

		for _, rec := range records {
			if !rec.Remote {
				continue
			}
			if len(listings) >= limit {
				break
			}

			posted := "N/A"
			if rec.CreatedAt > 0 {
				posted = time.Unix(rec.CreatedAt, 0).UTC().Format("2006-01-02")
			}

			listings = append(listings, &jobs.Listing{
				Title:       rec.Title,
				Company:     rec.CompanyName,
				Location:    orDefault(rec.Location, "Remote"),
				Description: rec.Description,
				Tags:        rec.Tags,
				URL:         rec.URL,
				Salary:      "Not specified",
				PostedDate:  posted,
				Source:      s.Name(),
			})
		}

		next = resp.Links.Next
	}

	return listings, nil
}
