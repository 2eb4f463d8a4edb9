// Package compare computes freshness gaps between a target page and its
// competitors. Comparison is pure: no I/O, no clock reads, records derived
// entirely from the resolutions passed in.
package compare

import (
	"math"
	"time"

	"github.com/jonesrussell/gofresh/internal/domain"
)

const hoursPerDay = 24

// Compare builds the comparison record for one target against its
// competitors. The boolean verdict measures the target against the newest
// competitor of any kind; the tiered priority checks editorial freshness
// first, so a stale target loses hardest to sites that compete on content.
func Compare(target domain.Resolution, competitors []domain.CompetitorEntry, thresholdDays int) domain.ComparisonRecord {
	record := domain.ComparisonRecord{
		Target:      target,
		Competitors: competitors,
		Priority:    domain.PriorityNone,
	}

	record.NewestCompetitor = newestAny(competitors)
	record.NewestEditorial = newestEditorial(competitors)
	record.GapDays = gapDays(record.NewestCompetitor, target.Timestamp)
	record.EditorialGapDays = gapDays(record.NewestEditorial, target.Timestamp)

	record.NeedsUpdate = record.GapDays != nil && *record.GapDays > thresholdDays

	switch {
	case record.EditorialGapDays != nil && *record.EditorialGapDays > thresholdDays:
		record.Priority = domain.PriorityHigh
	case record.NeedsUpdate:
		record.Priority = domain.PriorityLow
	}

	return record
}

// newestAny returns the latest resolved competitor timestamp, or nil when
// no competitor has one.
func newestAny(competitors []domain.CompetitorEntry) *time.Time {
	var newest *time.Time
	for i := range competitors {
		ts := competitors[i].Resolution.Timestamp
		if ts == nil {
			continue
		}
		if newest == nil || ts.After(*newest) {
			newest = ts
		}
	}
	return newest
}

// newestEditorial returns the latest resolved timestamp among editorial
// competitors only.
func newestEditorial(competitors []domain.CompetitorEntry) *time.Time {
	var newest *time.Time
	for i := range competitors {
		if competitors[i].Tier != domain.TierEditorial {
			continue
		}
		ts := competitors[i].Resolution.Timestamp
		if ts == nil {
			continue
		}
		if newest == nil || ts.After(*newest) {
			newest = ts
		}
	}
	return newest
}

// gapDays returns the whole-day gap from target to newest, floored toward
// the earlier instant, or nil when either side is missing. A positive gap
// means the competitor pool is fresher than the target.
func gapDays(newest, target *time.Time) *int {
	if newest == nil || target == nil {
		return nil
	}

	days := int(math.Floor(newest.Sub(*target).Hours() / hoursPerDay))
	return &days
}
