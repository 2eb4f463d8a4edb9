package signals

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/gofresh/internal/dates"
	"github.com/jonesrussell/gofresh/internal/domain"
	"github.com/jonesrussell/gofresh/internal/sites"
)

// ExtractSite applies a publisher profile's selector rules in order. Each
// rule contributes at most one candidate, from the first element it
// matches, so a template seen several times on the page does not multiply
// its own evidence.
func ExtractSite(doc *goquery.Document, profile *sites.Profile) []domain.Candidate {
	if profile == nil {
		return nil
	}

	var candidates []domain.Candidate
	for _, rule := range profile.Rules {
		sel := doc.Find(rule.Selector).First()
		if sel.Length() == 0 {
			continue
		}

		ts, ok := dates.Parse(elementDate(sel))
		if !ok {
			continue
		}

		candidates = append(candidates, domain.Candidate{
			Label:      profile.Name + ":" + rule.Selector,
			Timestamp:  ts,
			Confidence: siteRuleConfidence(rule.Selector, sel),
		})
	}

	return candidates
}

// elementDate pulls the raw date string off a matched element: the datetime
// attribute for time tags, the content attribute for meta tags, otherwise
// the element's text.
func elementDate(sel *goquery.Selection) string {
	if raw, ok := sel.Attr("datetime"); ok && strings.TrimSpace(raw) != "" {
		return raw
	}
	if raw, ok := sel.Attr("content"); ok && strings.TrimSpace(raw) != "" {
		return raw
	}
	return sel.Text()
}

// siteRuleConfidence grades a matched rule by the wording of the selector
// and the element's surroundings. Rules naming an update or modification
// outrank publication rules, which outrank neutral ones.
func siteRuleConfidence(selector string, sel *goquery.Selection) float64 {
	host := strings.ToLower(selector) + " " + surroundingText(sel)

	switch {
	case strings.Contains(host, "updated") || strings.Contains(host, "modified"):
		return siteUpdatedConfidence
	case strings.Contains(host, "publish"):
		return sitePublishedConfidence
	default:
		return siteNeutralConfidence
	}
}
