// Package resolver reduces a page's extracted evidence to one dated
// verdict. Resolution is a pure function of the parsed document, the page's
// host, and the response headers; re-resolving identical inputs yields an
// identical result.
package resolver

import (
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/gofresh/internal/domain"
	"github.com/jonesrussell/gofresh/internal/signals"
	"github.com/jonesrussell/gofresh/internal/sites"
)

// Resolver gathers candidates from the generic extractors, augmented by a
// publisher profile when one covers the page's host.
type Resolver struct {
	registry *sites.Registry
}

// New creates a Resolver over the given profile registry. A nil registry
// falls back to the built-in profiles.
func New(registry *sites.Registry) *Resolver {
	if registry == nil {
		registry = sites.DefaultRegistry()
	}
	return &Resolver{registry: registry}
}

// Resolve extracts and reduces the update-date evidence for one page. The
// Last-Modified header is consulted only when the document itself yields no
// candidates; headers may be nil. An empty outcome is valid and means no
// discoverable date.
func (r *Resolver) Resolve(doc *goquery.Document, host string, headers http.Header) domain.Resolution {
	candidates := r.Collect(doc, host)
	if len(candidates) == 0 {
		candidates = signals.ExtractLastModified(headers)
	}
	return Reduce(candidates)
}

// Collect runs the site adapter for the host, when a profile covers it,
// then every generic extractor. Adapter candidates are additive, never a
// replacement.
func (r *Resolver) Collect(doc *goquery.Document, host string) []domain.Candidate {
	var candidates []domain.Candidate

	if profile := r.registry.Lookup(host); profile != nil {
		candidates = append(candidates, signals.ExtractSite(doc, profile)...)
	}

	for _, extract := range signals.Generic() {
		candidates = append(candidates, extract(doc)...)
	}

	return candidates
}
