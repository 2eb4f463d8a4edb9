package domain

// CheckRow is one unit of batch input: a keyword and the target page whose
// freshness is checked against that keyword's competitors.
type CheckRow struct {
	// Keyword is the search term to pull competitors for.
	Keyword string `json:"keyword"`
	// TargetURL is the page to check.
	TargetURL string `json:"target_url"`
}
