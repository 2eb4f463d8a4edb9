package signals

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/gofresh/internal/dates"
	"github.com/jonesrussell/gofresh/internal/domain"
)

// metaSelectors pairs each meta tag selector with its trust tier, strongest
// first. Modification stamps outrank Open Graph update hints, which outrank
// publication stamps and the bare date tag.
var metaSelectors = []struct {
	selector   string
	confidence float64
}{
	{`meta[property="article:modified_time"]`, modifiedConfidence},
	{`meta[itemprop="dateModified"]`, modifiedConfidence},
	{`meta[property="og:updated_time"]`, updatedConfidence},
	{`meta[property="article:published_time"]`, publishedConfidence},
	{`meta[itemprop="datePublished"]`, publishedConfidence},
	{`meta[name="parsely-pub-date"]`, publishedConfidence},
	{`meta[name="date"]`, genericDateConfidence},
}

// ExtractMeta collects date candidates from the document's metadata tags.
// Every matching tag contributes, so duplicated metadata can later count as
// agreement rather than being collapsed here.
func ExtractMeta(doc *goquery.Document) []domain.Candidate {
	var candidates []domain.Candidate

	for _, entry := range metaSelectors {
		doc.Find(entry.selector).Each(func(_ int, sel *goquery.Selection) {
			content, ok := sel.Attr("content")
			if !ok {
				return
			}

			ts, ok := dates.Parse(content)
			if !ok {
				return
			}

			candidates = append(candidates, domain.Candidate{
				Label:      "meta:" + entry.selector,
				Timestamp:  ts,
				Confidence: entry.confidence,
			})
		})
	}

	return candidates
}
