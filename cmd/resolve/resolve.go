// Package resolve implements the single-page resolution command.
package resolve

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/gofresh/cmd/common"
	"github.com/jonesrussell/gofresh/internal/domain"
	"github.com/jonesrussell/gofresh/internal/resolver"
	"github.com/jonesrussell/gofresh/internal/signals"
)

// Cmd represents the resolve command.
var Cmd = &cobra.Command{
	Use:   "resolve <url>",
	Short: "Resolve one page's last-update date",
	Long: `Resolve fetches a single page, prints every date candidate the
extractors found, and the resolution they reduce to.

Example:
  gofresh resolve https://example.com/review
`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

// Command returns the resolve command for use in the root command.
func Command() *cobra.Command {
	return Cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	res, err := common.BuildResolver(deps)
	if err != nil {
		return err
	}

	rawURL := args[0]
	page, err := common.BuildFetcher(deps).Fetch(cmd.Context(), rawURL)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", rawURL, err)
	}

	candidates := res.Collect(page.Document, page.Host)
	if len(candidates) == 0 {
		candidates = signals.ExtractLastModified(page.Headers)
	}
	resolution := resolver.Reduce(candidates)

	renderCandidates(candidates)

	if !resolution.Resolved() {
		fmt.Println("\nNo discoverable date.")
		return nil
	}

	fmt.Printf("\nResolved: %s (confidence %.2f, from %s)\n",
		resolution.ISODate(), resolution.Confidence, resolution.Label)
	return nil
}

// renderCandidates prints the extracted evidence as a table.
func renderCandidates(candidates []domain.Candidate) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "Label", "Timestamp", "Confidence"})

	for i, c := range candidates {
		t.AppendRow(table.Row{
			i + 1,
			c.Label,
			c.Timestamp.UTC().Format(time.RFC3339),
			fmt.Sprintf("%.2f", c.Confidence),
		})
	}

	t.Render()
}
