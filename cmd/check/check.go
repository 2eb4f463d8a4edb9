// Package check implements the batch freshness check command.
package check

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/gofresh/cmd/common"
	"github.com/jonesrussell/gofresh/internal/domain"
	"github.com/jonesrussell/gofresh/internal/importer"
	"github.com/jonesrussell/gofresh/internal/report"
)

// Cmd represents the check command.
var Cmd = &cobra.Command{
	Use:   "check",
	Short: "Check a batch of pages against their competitors",
	Long: `Check reads keyword rows from a CSV or Excel file, resolves each
target page's last-update date, pulls the keyword's ranked competitors,
and writes a per-keyword staleness report.

Examples:
  # Check the rows in keywords.csv and write report.csv
  gofresh check -i keywords.csv -o report.csv

  # Excel output, 14-day threshold, 8 concurrent rows
  gofresh check -i keywords.xlsx -o report.xlsx --threshold 14 --concurrency 8
`,
	RunE: runCheck,
}

// Command returns the check command for use in the root command.
func Command() *cobra.Command {
	Cmd.Flags().StringP("input", "i", "", "input file with keyword,target_url rows (required)")
	Cmd.Flags().StringP("output", "o", "", "report file path (default from config)")
	Cmd.Flags().Int("threshold", 0, "staleness threshold in days (default from config)")
	Cmd.Flags().Int("concurrency", 0, "rows analyzed concurrently (default from config)")

	if err := Cmd.MarkFlagRequired("input"); err != nil {
		fmt.Fprintf(os.Stderr, "Error marking input flag as required: %v\n", err)
		os.Exit(1)
	}

	return Cmd
}

func runCheck(cmd *cobra.Command, _ []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	applyFlagOverrides(cmd, &deps)

	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = deps.Config.Report.OutputPath
	}

	result, err := importer.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input %s: %w", inputPath, err)
	}
	for _, importErr := range result.Errors {
		deps.Logger.Warn("input row skipped", "detail", importErr.Error())
	}
	if len(result.Rows) == 0 {
		return fmt.Errorf("no usable rows in %s", inputPath)
	}

	a, _, err := common.BuildAnalyzer(deps)
	if err != nil {
		return err
	}

	batch, err := a.Run(cmd.Context(), result.Rows)
	if err != nil {
		return fmt.Errorf("analysis run: %w", err)
	}

	if err := writeReport(outputPath, batch.Records, deps); err != nil {
		return err
	}

	report.RenderSummary(os.Stdout, batch.Records)
	fmt.Printf("\nReport written to %s (run %s)\n", outputPath, batch.RunID)
	return nil
}

// applyFlagOverrides folds explicit flags over the configured values.
func applyFlagOverrides(cmd *cobra.Command, deps *common.CommandDeps) {
	if threshold, _ := cmd.Flags().GetInt("threshold"); threshold > 0 {
		deps.Config.Compare.ThresholdDays = threshold
	}
	if concurrency, _ := cmd.Flags().GetInt("concurrency"); concurrency > 0 {
		deps.Config.Analyzer.Workers = concurrency
	}
}

// writeReport picks the report format from the output extension.
func writeReport(path string, records []domain.ComparisonRecord, deps common.CommandDeps) error {
	var err error
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		err = report.WriteExcelFile(path, records)
	} else {
		err = report.WriteCSVFile(path, records)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	deps.Logger.Info("report written", "path", path, "rows", len(records))
	return nil
}
