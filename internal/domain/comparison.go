package domain

import "time"

// Tier classifies a competitor site for the tiered staleness verdict.
type Tier string

const (
	// TierEditorial marks publications that compete on editorial freshness.
	TierEditorial Tier = "editorial"
	// TierPlatform marks UGC, social, and video platforms.
	TierPlatform Tier = "platform"
	// TierRetailer marks commerce sites.
	TierRetailer Tier = "retailer"
	// TierUnknown marks domains outside the classification table.
	TierUnknown Tier = "unknown"
)

// Priority grades how urgently a stale target needs a refresh.
type Priority string

const (
	// PriorityNone means no competitor is meaningfully fresher.
	PriorityNone Priority = "none"
	// PriorityLow means only non-editorial competitors are fresher.
	PriorityLow Priority = "low"
	// PriorityHigh means an editorial competitor is fresher.
	PriorityHigh Priority = "high"
)

// CompetitorEntry is one ranked competitor page with its resolved date.
type CompetitorEntry struct {
	// Title is the result title reported by the ranked-results provider.
	Title string `json:"title"`
	// URL is the competitor page URL.
	URL string `json:"url"`
	// Resolution is the competitor page's resolved update date.
	Resolution Resolution `json:"resolution"`
	// Tier is the competitor's domain classification.
	Tier Tier `json:"tier"`
}

// ComparisonRecord is one analyzed keyword: the target page's resolved date
// measured against its competitors. Records are built fresh per run and are
// never persisted.
type ComparisonRecord struct {
	// Keyword is the search term the pages compete on.
	Keyword string `json:"keyword"`
	// TargetURL is the page whose freshness is being checked.
	TargetURL string `json:"target_url"`
	// Target is the target page's resolution.
	Target Resolution `json:"target"`
	// Competitors lists the ranked competitor pages, in provider order.
	Competitors []CompetitorEntry `json:"competitors"`
	// NewestCompetitor is the max resolved timestamp across all competitors.
	NewestCompetitor *time.Time `json:"newest_competitor"`
	// NewestEditorial is the max resolved timestamp across editorial competitors.
	NewestEditorial *time.Time `json:"newest_editorial"`
	// GapDays is how many whole days the newest competitor leads the target.
	// Nil when either side has no resolvable date.
	GapDays *int `json:"gap_days"`
	// EditorialGapDays is the same gap against the editorial pool only.
	EditorialGapDays *int `json:"editorial_gap_days"`
	// NeedsUpdate is true when GapDays exceeds the configured threshold.
	NeedsUpdate bool `json:"needs_update"`
	// Priority tiers the verdict by who is fresher.
	Priority Priority `json:"priority"`
}
