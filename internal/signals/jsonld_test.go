package signals_test

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/gofresh/internal/domain"
	"github.com/jonesrussell/gofresh/internal/signals"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func findCandidate(candidates []domain.Candidate, label string) (domain.Candidate, bool) {
	for _, c := range candidates {
		if c.Label == label {
			return c, true
		}
	}
	return domain.Candidate{}, false
}

func TestExtractJSONLD_DateModified(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
	{"@type": "Article", "dateModified": "2024-03-01T10:00:00Z", "datePublished": "2024-01-01"}
	</script></head></html>`
	doc := parseDoc(t, html)

	candidates := signals.ExtractJSONLD(doc)
	require.Len(t, candidates, 2)

	modified, ok := findCandidate(candidates, "jsonld:dateModified")
	require.True(t, ok)
	assert.InDelta(t, 0.95, modified.Confidence, 1e-9)
	assert.Equal(t, time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC), modified.Timestamp)

	published, ok := findCandidate(candidates, "jsonld:datePublished")
	require.True(t, ok)
	assert.InDelta(t, 0.75, published.Confidence, 1e-9)
}

func TestExtractJSONLD_CreatedAndUploadDates(t *testing.T) {
	html := `<script type="application/ld+json">
	{"dateCreated": "2024-02-01", "uploadDate": "2024-02-15"}
	</script>`
	doc := parseDoc(t, html)

	candidates := signals.ExtractJSONLD(doc)
	require.Len(t, candidates, 2)
	for _, c := range candidates {
		assert.InDelta(t, 0.70, c.Confidence, 1e-9)
	}
}

func TestExtractJSONLD_GraphWrapper(t *testing.T) {
	html := `<script type="application/ld+json">
	{"@graph": [
		{"@type": "WebPage", "dateModified": "2024-03-01"},
		{"@type": "Article", "datePublished": "2024-01-15"}
	]}
	</script>`
	doc := parseDoc(t, html)

	candidates := signals.ExtractJSONLD(doc)
	require.Len(t, candidates, 2)

	_, ok := findCandidate(candidates, "jsonld:dateModified")
	assert.True(t, ok)
	_, ok = findCandidate(candidates, "jsonld:datePublished")
	assert.True(t, ok)
}

func TestExtractJSONLD_NestedWrappers(t *testing.T) {
	html := `<script type="application/ld+json">
	{"mainEntity": {"itemListElement": [{"dateModified": "2024-03-01"}]}}
	</script>`
	doc := parseDoc(t, html)

	candidates := signals.ExtractJSONLD(doc)
	require.Len(t, candidates, 1)
	assert.Equal(t, "jsonld:dateModified", candidates[0].Label)
}

func TestExtractJSONLD_TopLevelArray(t *testing.T) {
	html := `<script type="application/ld+json">
	[{"dateModified": "2024-03-01"}, {"datePublished": "2024-01-01"}]
	</script>`
	doc := parseDoc(t, html)

	candidates := signals.ExtractJSONLD(doc)
	assert.Len(t, candidates, 2)
}

func TestExtractJSONLD_IgnoresUnrecognizedNesting(t *testing.T) {
	html := `<script type="application/ld+json">
	{"author": {"dateModified": "2024-03-01"}}
	</script>`
	doc := parseDoc(t, html)

	candidates := signals.ExtractJSONLD(doc)
	assert.Empty(t, candidates, "dates inside unrecognized containers should not surface")
}

func TestExtractJSONLD_MalformedBlockSkipped(t *testing.T) {
	html := `
	<script type="application/ld+json">{not valid json</script>
	<script type="application/ld+json">{"dateModified": "2024-03-01"}</script>`
	doc := parseDoc(t, html)

	candidates := signals.ExtractJSONLD(doc)
	require.Len(t, candidates, 1)
	assert.Equal(t, "jsonld:dateModified", candidates[0].Label)
}

func TestExtractJSONLD_NonStringDateIgnored(t *testing.T) {
	html := `<script type="application/ld+json">
	{"dateModified": 1709251200, "datePublished": "2024-01-01"}
	</script>`
	doc := parseDoc(t, html)

	candidates := signals.ExtractJSONLD(doc)
	require.Len(t, candidates, 1)
	assert.Equal(t, "jsonld:datePublished", candidates[0].Label)
}

func TestExtractJSONLD_NoBlocks(t *testing.T) {
	doc := parseDoc(t, `<html><body><p>No structured data here.</p></body></html>`)

	assert.Empty(t, signals.ExtractJSONLD(doc))
}
