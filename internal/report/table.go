package report

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jonesrussell/gofresh/internal/domain"
)

// Column width limits for the terminal summary.
const (
	keywordColumnWidth = 32
	urlColumnWidth     = 48
)

// RenderSummary writes a terminal table summarizing the batch verdicts.
func RenderSummary(w io.Writer, records []domain.ComparisonRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: keywordColumnWidth},
		{Number: 3, WidthMax: urlColumnWidth},
	})

	t.AppendHeader(table.Row{
		"#", "Keyword", "Target URL", "Target Date", "Newest Comp", "Gap (days)", "Needs Update", "Priority",
	})

	for i, record := range records {
		t.AppendRow(table.Row{
			i + 1,
			record.Keyword,
			record.TargetURL,
			orDash(record.Target.ISODate()),
			orDash(formatTime(record.NewestCompetitor)),
			orDash(formatDays(record.GapDays)),
			record.NeedsUpdate,
			string(record.Priority),
		})
	}

	t.Render()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
