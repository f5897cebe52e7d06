package jobs

import (
	"encoding/csv"
	"fmt"
	"io"
)

// csvHeader is the contract for the tabular export consumed by spreadsheets
// and downstream tooling.
var csvHeader = []string{
	"Title", "Company", "Location", "Description", "URL",
	"Salary", "Posted", "Source", "Match Score", "Match Explanation",
}

// WriteCSV renders the listings as CSV, one row per job, in their current
// order.
func (v *Listings) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, l := range v.Items {
		row := []string{
			l.Title,
			l.Company,
			l.Location,
			l.Description,
			l.URL,
			l.Salary,
			l.PostedDate,
			l.Source,
			fmt.Sprintf("%.2f", l.MatchScore),
			l.ScoreBreakdown,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
