package resolver

import (
	"math"
	"time"

	"github.com/jonesrussell/gofresh/internal/domain"
)

// ConfidenceSlack is the tolerance band below the maximum confidence within
// which candidates still compete on recency. Different extractors can score
// the same evidence a notch apart; the band absorbs those near-ties instead
// of letting label order decide.
const ConfidenceSlack = 0.05

// Agreement parameters. A winner corroborated by other trusted candidates
// landing close to it earns a bump; a lone signal never does, since the
// winner counts toward the threshold itself.
const (
	agreementWindow        = 48 * time.Hour
	agreementMinCandidates = 2
	agreementMinConfidence = 0.6
	agreementBoost         = 0.1
)

// Reduce selects a single resolution from a candidate list. The highest
// confidence wins; candidates within ConfidenceSlack of the maximum compete
// on recency, most recent first. The boosted confidence never exceeds 1.0,
// and an empty list reduces to the no-evidence resolution.
func Reduce(candidates []domain.Candidate) domain.Resolution {
	if len(candidates) == 0 {
		return domain.Resolution{}
	}

	maxConfidence := candidates[0].Confidence
	for _, c := range candidates[1:] {
		if c.Confidence > maxConfidence {
			maxConfidence = c.Confidence
		}
	}

	var winner domain.Candidate
	selected := false
	for _, c := range candidates {
		if c.Confidence < maxConfidence-ConfidenceSlack {
			continue
		}
		if !selected || c.Timestamp.After(winner.Timestamp) ||
			(c.Timestamp.Equal(winner.Timestamp) && c.Confidence > winner.Confidence) {
			winner = c
			selected = true
		}
	}

	confidence := winner.Confidence
	if confidence < 1.0 && corroboration(candidates, winner.Timestamp) >= agreementMinCandidates {
		confidence = math.Min(confidence+agreementBoost, 1.0)
	}

	ts := winner.Timestamp
	return domain.Resolution{
		Timestamp:  &ts,
		Confidence: confidence,
		Label:      winner.Label,
	}
}

// corroboration counts candidates across the full list, winner included,
// whose timestamp falls within the agreement window of the winner and whose
// confidence clears the floor.
func corroboration(candidates []domain.Candidate, winner time.Time) int {
	count := 0
	for _, c := range candidates {
		if c.Confidence < agreementMinConfidence {
			continue
		}

		delta := winner.Sub(c.Timestamp)
		if delta < 0 {
			delta = -delta
		}
		if delta <= agreementWindow {
			count++
		}
	}
	return count
}
