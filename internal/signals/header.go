package signals

import (
	"net/http"

	"github.com/jonesrussell/gofresh/internal/dates"
	"github.com/jonesrussell/gofresh/internal/domain"
)

// ExtractLastModified reads the Last-Modified response header. CDNs and
// origin servers routinely stamp it with serve time rather than content
// time, so it carries the lowest confidence and is only consulted when the
// document itself yields nothing.
func ExtractLastModified(headers http.Header) []domain.Candidate {
	if headers == nil {
		return nil
	}

	ts, ok := dates.Parse(headers.Get("Last-Modified"))
	if !ok {
		return nil
	}

	return []domain.Candidate{{
		Label:      "header:last-modified",
		Timestamp:  ts,
		Confidence: headerConfidence,
	}}
}
