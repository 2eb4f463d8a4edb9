// Package metrics collects run counters for batch analysis.
package metrics

import (
	"sync"
	"time"
)

// Metrics holds the counters for one analysis run. Rows are analyzed in
// parallel, so all methods are safe for concurrent use.
type Metrics struct {
	// RowsProcessed is the number of input rows analyzed.
	RowsProcessed int64
	// RowsFailed is the number of rows whose target page could not be resolved.
	RowsFailed int64
	// PagesFetched is the number of pages retrieved, targets and competitors.
	PagesFetched int64
	// FetchFailures is the number of page retrievals that gave up.
	FetchFailures int64
	// Resolutions is the number of pages that resolved to a date.
	Resolutions int64
	// EmptyResolutions is the number of pages with no discoverable date.
	EmptyResolutions int64
	// SerpQueries is the number of ranked-result lookups issued.
	SerpQueries int64
	// SerpFailures is the number of ranked-result lookups that failed.
	SerpFailures int64
	// StartTime is when the run began.
	StartTime time.Time
	// mu protects concurrent access to metrics.
	mu sync.Mutex
}

// Snapshot is a point-in-time copy of the counters, safe to read and log
// without further locking.
type Snapshot struct {
	RowsProcessed    int64
	RowsFailed       int64
	PagesFetched     int64
	FetchFailures    int64
	Resolutions      int64
	EmptyResolutions int64
	SerpQueries      int64
	SerpFailures     int64
	Elapsed          time.Duration
}

// NewMetrics creates a new metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// RecordRow counts one analyzed input row.
func (m *Metrics) RecordRow(failed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RowsProcessed++
	if failed {
		m.RowsFailed++
	}
}

// RecordFetch counts one page retrieval attempt.
func (m *Metrics) RecordFetch(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if success {
		m.PagesFetched++
	} else {
		m.FetchFailures++
	}
}

// RecordResolution counts one resolver outcome.
func (m *Metrics) RecordResolution(resolved bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if resolved {
		m.Resolutions++
	} else {
		m.EmptyResolutions++
	}
}

// RecordSerpQuery counts one ranked-result lookup.
func (m *Metrics) RecordSerpQuery(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SerpQueries++
	if !success {
		m.SerpFailures++
	}
}

// Snapshot returns a copy of the current counters.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		RowsProcessed:    m.RowsProcessed,
		RowsFailed:       m.RowsFailed,
		PagesFetched:     m.PagesFetched,
		FetchFailures:    m.FetchFailures,
		Resolutions:      m.Resolutions,
		EmptyResolutions: m.EmptyResolutions,
		SerpQueries:      m.SerpQueries,
		SerpFailures:     m.SerpFailures,
		Elapsed:          time.Since(m.StartTime),
	}
}

// Reset clears the counters and restarts the clock.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RowsProcessed = 0
	m.RowsFailed = 0
	m.PagesFetched = 0
	m.FetchFailures = 0
	m.Resolutions = 0
	m.EmptyResolutions = 0
	m.SerpQueries = 0
	m.SerpFailures = 0
	m.StartTime = time.Now()
}
