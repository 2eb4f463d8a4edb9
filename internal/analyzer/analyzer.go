// Package analyzer orchestrates a freshness check: resolve the target
// page's update date, pull the keyword's ranked competitors, resolve each
// of those, and compare. Rows in a batch are independent, so the batch is
// fanned out over a bounded worker pool.
package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonesrussell/gofresh/internal/classify"
	"github.com/jonesrussell/gofresh/internal/compare"
	"github.com/jonesrussell/gofresh/internal/domain"
	"github.com/jonesrussell/gofresh/internal/fetch"
	"github.com/jonesrussell/gofresh/internal/logger"
	"github.com/jonesrussell/gofresh/internal/metrics"
	"github.com/jonesrussell/gofresh/internal/resolver"
	"github.com/jonesrussell/gofresh/internal/serp"
	"github.com/jonesrussell/gofresh/internal/worker"
)

// PageFetcher retrieves one page.
type PageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*fetch.Page, error)
}

// SerpClient returns ranked competitors for a keyword.
type SerpClient interface {
	Search(ctx context.Context, keyword string) ([]serp.Result, error)
}

// Config controls batch execution.
type Config struct {
	// Workers is the number of rows analyzed concurrently.
	Workers int
	// ThresholdDays is the staleness threshold for the verdict.
	ThresholdDays int
}

// BatchResult is the outcome of one analysis run.
type BatchResult struct {
	// RunID identifies the run in logs and report filenames.
	RunID uuid.UUID
	// Records holds one comparison per input row, in input order.
	Records []domain.ComparisonRecord
	// Stats are the run counters at completion.
	Stats metrics.Snapshot
}

// Analyzer runs freshness checks.
type Analyzer struct {
	fetcher    PageFetcher
	serpClient SerpClient
	resolver   *resolver.Resolver
	classifier *classify.Classifier
	metrics    *metrics.Metrics
	log        logger.Interface
	config     Config
}

// New creates an analyzer.
func New(
	fetcher PageFetcher,
	serpClient SerpClient,
	res *resolver.Resolver,
	classifier *classify.Classifier,
	m *metrics.Metrics,
	log logger.Interface,
	cfg Config,
) *Analyzer {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Analyzer{
		fetcher:    fetcher,
		serpClient: serpClient,
		resolver:   res,
		classifier: classifier,
		metrics:    m,
		log:        log,
		config:     cfg,
	}
}

// Run analyzes a batch of rows. Every row produces a record even when its
// pages or its competitor lookup fail; per-row failures are absorbed into
// empty resolutions. Records keep input order.
func (a *Analyzer) Run(ctx context.Context, rows []domain.CheckRow) (*BatchResult, error) {
	runID := uuid.New()
	start := time.Now()

	a.log.Info("analysis run started",
		"run_id", runID.String(),
		"rows", len(rows),
		"workers", a.config.Workers,
	)

	poolCfg := worker.DefaultConfig()
	poolCfg.PoolSize = a.config.Workers

	pool, err := worker.NewPool(poolCfg, a.log)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	if err := pool.Start(); err != nil {
		return nil, fmt.Errorf("start worker pool: %w", err)
	}

	records := make([]domain.ComparisonRecord, len(rows))
	for i, row := range rows {
		i, row := i, row
		task := worker.Task{
			Name: row.Keyword,
			Run: func(taskCtx context.Context) error {
				records[i] = a.Check(taskCtx, row)
				a.metrics.RecordRow(!records[i].Target.Resolved())
				return nil
			},
		}
		if submitErr := pool.Submit(ctx, task); submitErr != nil {
			// Context ended mid-batch; the remaining rows keep their
			// zero-valued records.
			a.log.Warn("batch submission stopped", "row", i, "error", submitErr.Error())
			break
		}
	}
	pool.Wait()

	stopCtx, cancel := context.WithTimeout(context.Background(), poolCfg.DrainTimeout)
	defer cancel()
	if stopErr := pool.Stop(stopCtx); stopErr != nil {
		a.log.Warn("worker pool stop failed", "error", stopErr.Error())
	}

	stats := a.metrics.Snapshot()
	a.log.Info("analysis run completed",
		"run_id", runID.String(),
		"rows", stats.RowsProcessed,
		"rows_failed", stats.RowsFailed,
		"pages_fetched", stats.PagesFetched,
		"fetch_failures", stats.FetchFailures,
		"empty_resolutions", stats.EmptyResolutions,
		"serp_queries", stats.SerpQueries,
		"serp_failures", stats.SerpFailures,
		"duration", time.Since(start),
	)

	return &BatchResult{
		RunID:   runID,
		Records: records,
		Stats:   stats,
	}, nil
}

// Check analyzes one keyword row. A failed competitor lookup yields an
// empty competitor set rather than a failed row.
func (a *Analyzer) Check(ctx context.Context, row domain.CheckRow) domain.ComparisonRecord {
	target := a.resolveURL(ctx, row.TargetURL)
	competitors := a.resolveCompetitors(ctx, row.Keyword)

	record := compare.Compare(target, competitors, a.config.ThresholdDays)
	record.Keyword = row.Keyword
	record.TargetURL = row.TargetURL

	a.log.WithKeyword(row.Keyword).Debug("row checked",
		"target_date", record.Target.ISODate(),
		"competitors", len(record.Competitors),
		"needs_update", record.NeedsUpdate,
		"priority", string(record.Priority),
	)

	return record
}

// resolveURL fetches and resolves one page. A fetch failure maps to the
// no-evidence resolution.
func (a *Analyzer) resolveURL(ctx context.Context, rawURL string) domain.Resolution {
	page, err := a.fetcher.Fetch(ctx, rawURL)
	a.metrics.RecordFetch(err == nil)
	if err != nil {
		a.log.WithURL(rawURL).WithError(err).Warn("page fetch failed")
		return domain.Resolution{}
	}

	res := a.resolver.Resolve(page.Document, page.Host, page.Headers)
	a.metrics.RecordResolution(res.Resolved())
	return res
}

// resolveCompetitors pulls the keyword's ranked results and resolves each
// competitor page.
func (a *Analyzer) resolveCompetitors(ctx context.Context, keyword string) []domain.CompetitorEntry {
	results, err := a.serpClient.Search(ctx, keyword)
	a.metrics.RecordSerpQuery(err == nil)
	if err != nil {
		a.log.Warn("competitor lookup failed", "keyword", keyword, "error", err.Error())
		return nil
	}

	entries := make([]domain.CompetitorEntry, 0, len(results))
	for _, result := range results {
		entries = append(entries, domain.CompetitorEntry{
			Title:      result.Title,
			URL:        result.URL,
			Resolution: a.resolveURL(ctx, result.URL),
			Tier:       a.competitorTier(result.URL),
		})
	}
	return entries
}

// competitorTier classifies a competitor by its host. Unparseable URLs
// fall into the unknown tier.
func (a *Analyzer) competitorTier(rawURL string) domain.Tier {
	host, err := fetch.Domain(rawURL)
	if err != nil {
		return domain.TierUnknown
	}
	return a.classifier.Tier(host)
}
