// Package report renders comparison records to the flat tabular formats
// the batch commands emit: CSV, Excel, and a terminal summary.
package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jonesrussell/gofresh/internal/domain"
)

// maxCompetitorColumns fixes how many competitors get their own column
// group in the flat layout. Rows with fewer competitors leave the spare
// cells empty; extras beyond the limit are dropped from the export only.
const maxCompetitorColumns = 3

// dateLayout is the cell format for timestamps.
const dateLayout = time.RFC3339

// Header returns the flat column layout, one row per analyzed keyword.
func Header() []string {
	header := []string{"keyword", "target_url", "target_date", "target_confidence"}
	for i := 1; i <= maxCompetitorColumns; i++ {
		header = append(header,
			fmt.Sprintf("comp%d_title", i),
			fmt.Sprintf("comp%d_url", i),
			fmt.Sprintf("comp%d_date", i),
			fmt.Sprintf("comp%d_date_confidence", i),
			fmt.Sprintf("comp%d_tier", i),
		)
	}
	return append(header,
		"max_comp_date",
		"newest_editorial_date",
		"date_diff_days",
		"needs_update",
		"priority",
	)
}

// Row flattens one comparison record into cells matching Header.
func Row(record domain.ComparisonRecord) []string {
	row := []string{
		record.Keyword,
		record.TargetURL,
		record.Target.ISODate(),
		formatConfidence(record.Target),
	}

	for i := 0; i < maxCompetitorColumns; i++ {
		if i >= len(record.Competitors) {
			row = append(row, "", "", "", "", "")
			continue
		}
		comp := record.Competitors[i]
		row = append(row,
			comp.Title,
			comp.URL,
			comp.Resolution.ISODate(),
			formatConfidence(comp.Resolution),
			string(comp.Tier),
		)
	}

	return append(row,
		formatTime(record.NewestCompetitor),
		formatTime(record.NewestEditorial),
		formatDays(record.GapDays),
		strconv.FormatBool(record.NeedsUpdate),
		string(record.Priority),
	)
}

// formatConfidence renders a resolution's confidence, empty when the page
// had no discoverable date.
func formatConfidence(res domain.Resolution) string {
	if !res.Resolved() {
		return ""
	}
	return strconv.FormatFloat(res.Confidence, 'f', 2, 64)
}

func formatTime(ts *time.Time) string {
	if ts == nil {
		return ""
	}
	return ts.UTC().Format(dateLayout)
}

func formatDays(days *int) string {
	if days == nil {
		return ""
	}
	return strconv.Itoa(*days)
}
