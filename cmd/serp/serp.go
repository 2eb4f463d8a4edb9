// Package serp implements the ranked-results inspection command.
package serp

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/gofresh/cmd/common"
	"github.com/jonesrussell/gofresh/internal/serp"
)

// Cmd represents the serp command.
var Cmd = &cobra.Command{
	Use:   "serp <keyword>",
	Short: "Show the ranked competitors for a keyword",
	Long: `Serp queries the ranked-results provider for a keyword and prints
the competitor pages that survive domain exclusion, the same set the
check command compares against.

Example:
  gofresh serp "best wireless earbuds"
`,
	Args: cobra.ExactArgs(1),
	RunE: runSerp,
}

// Command returns the serp command for use in the root command.
func Command() *cobra.Command {
	return Cmd
}

func runSerp(cmd *cobra.Command, args []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	client, err := serp.New(&deps.Config.Serp, deps.Logger)
	if err != nil {
		return fmt.Errorf("create serp client: %w", err)
	}

	keyword := args[0]
	results, err := client.Search(cmd.Context(), keyword)
	if err != nil {
		return fmt.Errorf("search %q: %w", keyword, err)
	}

	if len(results) == 0 {
		fmt.Printf("No competitors found for %q after exclusions.\n", keyword)
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Position", "Title", "URL"})
	for _, result := range results {
		t.AppendRow(table.Row{result.Position, result.Title, result.URL})
	}
	t.Render()

	return nil
}
