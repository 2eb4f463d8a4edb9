// Package watch implements the scheduled re-check command.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/gofresh/cmd/common"
	"github.com/jonesrussell/gofresh/internal/analyzer"
	"github.com/jonesrussell/gofresh/internal/importer"
	"github.com/jonesrussell/gofresh/internal/logger"
	"github.com/jonesrussell/gofresh/internal/report"
)

// stopTimeout bounds how long shutdown waits for an in-flight run.
const stopTimeout = 30 * time.Second

// Cmd represents the watch command.
var Cmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-check a batch on a schedule",
	Long: `Watch re-runs the batch check on a cron schedule, writing a fresh
report each run. It runs continuously until interrupted with Ctrl+C.

Example:
  gofresh watch --schedule "0 6 * * *" -i keywords.csv -o report.csv
`,
	RunE: runWatch,
}

// Command returns the watch command for use in the root command.
func Command() *cobra.Command {
	Cmd.Flags().String("schedule", "", "cron schedule (default from config)")
	Cmd.Flags().StringP("input", "i", "", "input file (default from config)")
	Cmd.Flags().StringP("output", "o", "", "report file path (default from config)")
	return Cmd
}

func runWatch(cmd *cobra.Command, _ []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	schedule, _ := cmd.Flags().GetString("schedule")
	if schedule == "" {
		schedule = deps.Config.Watch.Schedule
	}
	inputPath, _ := cmd.Flags().GetString("input")
	if inputPath == "" {
		inputPath = deps.Config.Watch.InputPath
	}
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = deps.Config.Report.OutputPath
	}

	a, m, err := common.BuildAnalyzer(deps)
	if err != nil {
		return err
	}

	runOnce := func() {
		m.Reset()
		if runErr := runBatch(cmd.Context(), a, inputPath, outputPath, deps.Logger); runErr != nil {
			deps.Logger.Error("scheduled run failed", "error", runErr.Error())
		}
	}

	scheduler := cron.New()
	if _, addErr := scheduler.AddFunc(schedule, runOnce); addErr != nil {
		return fmt.Errorf("invalid schedule %q: %w", schedule, addErr)
	}

	deps.Logger.Info("watch started", "schedule", schedule, "input", inputPath)
	scheduler.Start()

	<-cmd.Context().Done()
	deps.Logger.Info("shutdown signal received")

	// Stop accepting new runs, then wait out any run in flight.
	stopCtx := scheduler.Stop()
	select {
	case <-stopCtx.Done():
		deps.Logger.Info("watch stopped gracefully")
	case <-time.After(stopTimeout):
		deps.Logger.Warn("watch stop timed out")
	}

	return nil
}

// runBatch executes one scheduled check run.
func runBatch(ctx context.Context, a *analyzer.Analyzer, inputPath, outputPath string, log logger.Interface) error {
	result, err := importer.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input %s: %w", inputPath, err)
	}
	for _, importErr := range result.Errors {
		log.Warn("input row skipped", "detail", importErr.Error())
	}
	if len(result.Rows) == 0 {
		return fmt.Errorf("no usable rows in %s", inputPath)
	}

	batch, err := a.Run(ctx, result.Rows)
	if err != nil {
		return fmt.Errorf("analysis run: %w", err)
	}

	if strings.EqualFold(filepath.Ext(outputPath), ".xlsx") {
		err = report.WriteExcelFile(outputPath, batch.Records)
	} else {
		err = report.WriteCSVFile(outputPath, batch.Records)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	log.Info("scheduled run completed",
		"run_id", batch.RunID.String(),
		"rows", len(batch.Records),
		"report", outputPath,
	)
	return nil
}
