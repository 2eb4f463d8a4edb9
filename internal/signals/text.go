package signals

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/gofresh/internal/dates"
	"github.com/jonesrussell/gofresh/internal/domain"
)

// freeTextPatterns match labeled dates in visible prose, one pattern per
// date shape: a month-name form and an ISO form. Group 1 captures the
// label, group 2 the date.
var freeTextPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(Updated|Published|Last updated|Last modified)[:\s]+([A-Za-z]{3,9}\s+\d{1,2},\s+\d{4})`),
	regexp.MustCompile(`(?i)(Updated|Published|Last updated|Last modified)[:\s]+(\d{4}-\d{1,2}-\d{1,2})`),
}

// ExtractFreeText collects date candidates from labeled phrases in the
// document's visible text, such as "Updated: March 1, 2024". Free text is
// the least structured evidence, so every match carries the same low
// confidence regardless of its label.
func ExtractFreeText(doc *goquery.Document) []domain.Candidate {
	text := doc.Text()

	var candidates []domain.Candidate
	for _, pattern := range freeTextPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			ts, ok := dates.Parse(match[2])
			if !ok {
				continue
			}

			candidates = append(candidates, domain.Candidate{
				Label:      "text:" + match[1],
				Timestamp:  ts,
				Confidence: freeTextConfidence,
			})
		}
	}

	return candidates
}
