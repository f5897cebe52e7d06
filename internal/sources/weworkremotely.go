package sources

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/cliffordnwanna/job-hunter/internal/jobs"
)

const wwrBaseURL = "https://weworkremotely.com"

// WeWorkRemotely has no public JSON API, so its listing page is scraped.
// Descriptions are not available from the index page.
type WeWorkRemotely struct {
	client  *Client
	BaseURL string
}

func NewWeWorkRemotely(client *Client) *WeWorkRemotely {
	return &WeWorkRemotely{client: client, BaseURL: wwrBaseURL}
}

func (s *WeWorkRemotely) Name() string { return "WeWorkRemotely" }

func (s *WeWorkRemotely) Fetch(ctx context.Context, limit int) ([]*jobs.Listing, error) {
	doc, err := s.client.getHTML(ctx, s.BaseURL+"/remote-jobs")
	if err != nil {
		return nil, err
	}

	listings := make([]*jobs.Listing, 0, limit)
	doc.Find("li.feature").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, ok := sel.Find("a[href]").First().Attr("href")
		if !ok {
			return true
		}

		listings = append(listings, &jobs.Listing{
			Title:      strings.TrimSpace(sel.Find(".title").First().Text()),
			Company:    strings.TrimSpace(sel.Find(".company").First().Text()),
			Location:   "Remote",
			URL:        s.BaseURL + href,
			Salary:     "Not specified",
			PostedDate: "Recent",
			Source:     s.Name(),
		})
		return len(listings) < limit
	})

	return listings, nil
}
