package resolver_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/gofresh/internal/domain"
	"github.com/jonesrussell/gofresh/internal/resolver"
)

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func candidate(label string, ts time.Time, confidence float64) domain.Candidate {
	return domain.Candidate{Label: label, Timestamp: ts, Confidence: confidence}
}

func TestReduce_Empty(t *testing.T) {
	resolution := resolver.Reduce(nil)

	assert.False(t, resolution.Resolved())
	assert.Nil(t, resolution.Timestamp)
	assert.Zero(t, resolution.Confidence)
}

func TestReduce_HighestConfidenceWins(t *testing.T) {
	resolution := resolver.Reduce([]domain.Candidate{
		candidate("jsonld:dateModified", day(2024, time.March, 1), 0.95),
		candidate("meta:published", day(2024, time.January, 1), 0.75),
	})

	require.True(t, resolution.Resolved())
	assert.Equal(t, day(2024, time.March, 1), *resolution.Timestamp)
	assert.InDelta(t, 0.95, resolution.Confidence, 1e-9)
	assert.Equal(t, "jsonld:dateModified", resolution.Label)
}

func TestReduce_RecencyBreaksTies(t *testing.T) {
	resolution := resolver.Reduce([]domain.Candidate{
		candidate("meta:published-a", day(2024, time.January, 1), 0.75),
		candidate("meta:published-b", day(2024, time.February, 1), 0.75),
	})

	require.True(t, resolution.Resolved())
	assert.Equal(t, day(2024, time.February, 1), *resolution.Timestamp)
	assert.InDelta(t, 0.75, resolution.Confidence, 1e-9, "no boost without a corroborator near the winner")
}

func TestReduce_TieBoostedByNearbyThirdCandidate(t *testing.T) {
	resolution := resolver.Reduce([]domain.Candidate{
		candidate("meta:published-a", day(2024, time.January, 1), 0.75),
		candidate("meta:published-b", day(2024, time.February, 1), 0.75),
		candidate("time", day(2024, time.January, 31), 0.60),
	})

	require.True(t, resolution.Resolved())
	assert.Equal(t, day(2024, time.February, 1), *resolution.Timestamp)
	assert.InDelta(t, 0.85, resolution.Confidence, 1e-9)
}

func TestReduce_SlackAdmitsNearTies(t *testing.T) {
	resolution := resolver.Reduce([]domain.Candidate{
		candidate("meta:modified", day(2024, time.January, 1), 0.95),
		candidate("time", day(2024, time.March, 1), 0.92),
	})

	require.True(t, resolution.Resolved())
	assert.Equal(t, day(2024, time.March, 1), *resolution.Timestamp, "near-tied confidence competes on recency")
	assert.InDelta(t, 0.92, resolution.Confidence, 1e-9, "the winner keeps its own confidence")
}

func TestReduce_BelowSlackExcluded(t *testing.T) {
	resolution := resolver.Reduce([]domain.Candidate{
		candidate("meta:modified", day(2024, time.January, 1), 0.95),
		candidate("time", day(2024, time.March, 1), 0.89),
	})

	require.True(t, resolution.Resolved())
	assert.Equal(t, day(2024, time.January, 1), *resolution.Timestamp)
	assert.InDelta(t, 0.95, resolution.Confidence, 1e-9)
}

func TestReduce_BoostCappedAtOne(t *testing.T) {
	resolution := resolver.Reduce([]domain.Candidate{
		candidate("site:updated", day(2024, time.March, 1), 0.95),
		candidate("meta:modified", day(2024, time.March, 1), 0.95),
	})

	require.True(t, resolution.Resolved())
	assert.InDelta(t, 1.0, resolution.Confidence, 1e-9)
}

func TestReduce_NoBoostAtFullConfidence(t *testing.T) {
	resolution := resolver.Reduce([]domain.Candidate{
		candidate("site:updated", day(2024, time.March, 1), 1.0),
		candidate("meta:modified", day(2024, time.March, 1), 0.95),
	})

	require.True(t, resolution.Resolved())
	assert.InDelta(t, 1.0, resolution.Confidence, 1e-9)
}

func TestReduce_LoneCandidateNotBoosted(t *testing.T) {
	resolution := resolver.Reduce([]domain.Candidate{
		candidate("meta:modified", day(2024, time.March, 1), 0.95),
	})

	require.True(t, resolution.Resolved())
	assert.InDelta(t, 0.95, resolution.Confidence, 1e-9)
}

func TestReduce_WeakCorroboratorIgnored(t *testing.T) {
	resolution := resolver.Reduce([]domain.Candidate{
		candidate("meta:modified", day(2024, time.March, 1), 0.95),
		candidate("text:Updated", day(2024, time.March, 1), 0.40),
	})

	require.True(t, resolution.Resolved())
	assert.InDelta(t, 0.95, resolution.Confidence, 1e-9, "candidates below the confidence floor do not corroborate")
}

func TestReduce_AgreementWindowBoundary(t *testing.T) {
	winner := day(2024, time.March, 3)

	boosted := resolver.Reduce([]domain.Candidate{
		candidate("meta:modified", winner, 0.95),
		candidate("time", day(2024, time.March, 1), 0.90),
	})
	assert.InDelta(t, 1.0, boosted.Confidence, 1e-9, "exactly two days away still corroborates")

	unboosted := resolver.Reduce([]domain.Candidate{
		candidate("meta:modified", winner, 0.95),
		candidate("time", winner.Add(-49*time.Hour), 0.90),
	})
	assert.InDelta(t, 0.95, unboosted.Confidence, 1e-9)
}

func TestReduce_EqualTimestampPrefersHigherConfidence(t *testing.T) {
	ts := day(2024, time.March, 1)
	resolution := resolver.Reduce([]domain.Candidate{
		candidate("time", ts, 0.92),
		candidate("meta:modified", ts, 0.95),
	})

	require.True(t, resolution.Resolved())
	assert.Equal(t, "meta:modified", resolution.Label)
	assert.InDelta(t, 1.0, resolution.Confidence, 1e-9, "two strong signals on the same day corroborate each other")
}
