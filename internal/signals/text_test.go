package signals_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/gofresh/internal/signals"
)

func TestExtractFreeText_MonthNameForm(t *testing.T) {
	html := `<body><p>Updated: March 1, 2024 by staff</p></body>`
	doc := parseDoc(t, html)

	candidates := signals.ExtractFreeText(doc)
	require.Len(t, candidates, 1)
	assert.Equal(t, "text:Updated", candidates[0].Label)
	assert.InDelta(t, 0.40, candidates[0].Confidence, 1e-9)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), candidates[0].Timestamp)
}

func TestExtractFreeText_ISOForm(t *testing.T) {
	html := `<body><span>Last modified 2024-03-15</span></body>`
	doc := parseDoc(t, html)

	candidates := signals.ExtractFreeText(doc)
	require.Len(t, candidates, 1)
	assert.Equal(t, "text:Last modified", candidates[0].Label)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), candidates[0].Timestamp)
}

func TestExtractFreeText_CaseInsensitiveLabel(t *testing.T) {
	html := `<body>LAST UPDATED: Jan 5, 2024</body>`
	doc := parseDoc(t, html)

	candidates := signals.ExtractFreeText(doc)
	require.Len(t, candidates, 1)
	assert.Equal(t, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), candidates[0].Timestamp)
}

func TestExtractFreeText_PublishedLabel(t *testing.T) {
	html := `<body>Published: 2024-01-01</body>`
	doc := parseDoc(t, html)

	candidates := signals.ExtractFreeText(doc)
	require.Len(t, candidates, 1)
	assert.InDelta(t, 0.40, candidates[0].Confidence, 1e-9)
}

func TestExtractFreeText_MultipleMatches(t *testing.T) {
	html := `<body>
	<p>Published: January 1, 2024</p>
	<p>Updated: March 1, 2024</p>
	</body>`
	doc := parseDoc(t, html)

	candidates := signals.ExtractFreeText(doc)
	assert.Len(t, candidates, 2)
}

func TestExtractFreeText_UnlabeledDateIgnored(t *testing.T) {
	html := `<body>The meeting is on March 1, 2024 in the main hall.</body>`
	doc := parseDoc(t, html)

	assert.Empty(t, signals.ExtractFreeText(doc), "dates without an update label are not evidence")
}
