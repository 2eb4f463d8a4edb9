package signals

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/gofresh/internal/dates"
	"github.com/jonesrussell/gofresh/internal/domain"
)

// ExtractTimeTags collects date candidates from time elements. The datetime
// attribute is preferred; elements without one fall back to their text. A
// tag whose own or parent text mentions "updated" is trusted more than an
// undifferentiated timestamp.
func ExtractTimeTags(doc *goquery.Document) []domain.Candidate {
	var candidates []domain.Candidate

	doc.Find("time").Each(func(_ int, sel *goquery.Selection) {
		raw, ok := sel.Attr("datetime")
		if !ok || strings.TrimSpace(raw) == "" {
			raw = sel.Text()
		}

		ts, ok := dates.Parse(raw)
		if !ok {
			return
		}

		confidence := genericDateConfidence
		if strings.Contains(surroundingText(sel), "updated") {
			confidence = updatedConfidence
		}

		candidates = append(candidates, domain.Candidate{
			Label:      "time",
			Timestamp:  ts,
			Confidence: confidence,
		})
	})

	return candidates
}
