package metrics_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/gofresh/internal/metrics"
)

func TestNewMetrics(t *testing.T) {
	m := metrics.NewMetrics()
	assert.NotNil(t, m)
	assert.False(t, m.StartTime.IsZero())
}

func TestRecordRow(t *testing.T) {
	m := metrics.NewMetrics()

	m.RecordRow(false)
	m.RecordRow(false)
	m.RecordRow(true)

	snap := m.Snapshot()
	assert.Equal(t, int64(3), snap.RowsProcessed)
	assert.Equal(t, int64(1), snap.RowsFailed)
}

func TestRecordFetch(t *testing.T) {
	m := metrics.NewMetrics()

	m.RecordFetch(true)
	m.RecordFetch(true)
	m.RecordFetch(false)

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.PagesFetched)
	assert.Equal(t, int64(1), snap.FetchFailures)
}

func TestRecordResolution(t *testing.T) {
	m := metrics.NewMetrics()

	m.RecordResolution(true)
	m.RecordResolution(false)
	m.RecordResolution(false)

	snap := m.Snapshot()
	assert.Equal(t, int64(1), snap.Resolutions)
	assert.Equal(t, int64(2), snap.EmptyResolutions)
}

func TestRecordSerpQuery(t *testing.T) {
	m := metrics.NewMetrics()

	m.RecordSerpQuery(true)
	m.RecordSerpQuery(false)

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.SerpQueries)
	assert.Equal(t, int64(1), snap.SerpFailures)
}

func TestReset(t *testing.T) {
	m := metrics.NewMetrics()

	m.RecordRow(true)
	m.RecordFetch(true)
	m.RecordSerpQuery(false)
	m.Reset()

	snap := m.Snapshot()
	assert.Zero(t, snap.RowsProcessed)
	assert.Zero(t, snap.RowsFailed)
	assert.Zero(t, snap.PagesFetched)
	assert.Zero(t, snap.SerpQueries)
	assert.Zero(t, snap.SerpFailures)
}

func TestConcurrentAccess(t *testing.T) {
	m := metrics.NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RecordRow(false)
			m.RecordFetch(true)
			m.RecordResolution(true)
		}()
	}
	wg.Wait()

	snap := m.Snapshot()
	assert.Equal(t, int64(50), snap.RowsProcessed)
	assert.Equal(t, int64(50), snap.PagesFetched)
	assert.Equal(t, int64(50), snap.Resolutions)
}
