// Package signals extracts update-date evidence from parsed documents.
// Each extractor mines one category of markup for timestamp candidates;
// extractors are independent and total, so malformed markup yields no
// candidates rather than an error.
package signals

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/gofresh/internal/domain"
)

// Extractor scans one category of evidence in a parsed document and emits
// zero or more candidates.
type Extractor func(doc *goquery.Document) []domain.Candidate

// Confidence tiers by signal kind. Structured metadata that names
// modification outranks publication stamps, which outrank undifferentiated
// dates and free-text matches.
const (
	modifiedConfidence    = 0.95
	updatedConfidence     = 0.90
	publishedConfidence   = 0.75
	createdConfidence     = 0.70
	genericDateConfidence = 0.60
	freeTextConfidence    = 0.40
	headerConfidence      = 0.30
)

// Site adapter tiers, graded by whether a matched rule signals an update,
// a publication, or neither.
const (
	siteUpdatedConfidence   = 0.95
	sitePublishedConfidence = 0.85
	siteNeutralConfidence   = 0.80
)

// Generic returns the document extractors in evaluation order. The header
// extractor is not included; it reads response headers, not markup, and is
// consulted separately as a last resort.
func Generic() []Extractor {
	return []Extractor{
		ExtractJSONLD,
		ExtractMeta,
		ExtractTimeTags,
		ExtractFreeText,
	}
}

// surroundingText returns the element's own text joined with its parent's,
// lowercased, for keyword checks against nearby labels.
func surroundingText(sel *goquery.Selection) string {
	return strings.ToLower(sel.Text() + " " + sel.Parent().Text())
}
