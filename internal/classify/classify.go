// Package classify assigns competitor hosts to freshness tiers. Editorial
// outlets compete on content recency, platforms and retailers do not, and
// the comparator weighs their freshness accordingly.
package classify

import (
	"strings"

	"github.com/jonesrussell/gofresh/internal/domain"
)

// Classification methods.
const (
	MethodDomainList    = "domain_list"
	MethodHostHeuristic = "host_heuristic"
	MethodDefault       = "default"
)

// Result explains one classification.
type Result struct {
	Tier   domain.Tier `json:"tier"`
	Method string      `json:"method"`
	Reason string      `json:"reason"`
}

// Classifier maps hosts to tiers via static domain lists, with a light
// host-token heuristic for unlisted sites.
type Classifier struct {
	editorial []string
	platform  []string
	retailer  []string
}

// New creates a classifier seeded with the built-in domain lists.
func New() *Classifier {
	return &Classifier{
		editorial: editorialDomains,
		platform:  platformDomains,
		retailer:  retailerDomains,
	}
}

// Classify assigns a tier to the given host. Hosts are matched against the
// domain lists by exact or subdomain match; unmatched hosts fall through to
// the token heuristic and finally to the unknown tier.
func (c *Classifier) Classify(host string) Result {
	host = strings.ToLower(strings.TrimSpace(host))
	if host == "" {
		return Result{Tier: domain.TierUnknown, Method: MethodDefault, Reason: "empty host"}
	}

	if matched, ok := matchList(host, c.editorial); ok {
		return Result{Tier: domain.TierEditorial, Method: MethodDomainList, Reason: matched}
	}
	if matched, ok := matchList(host, c.platform); ok {
		return Result{Tier: domain.TierPlatform, Method: MethodDomainList, Reason: matched}
	}
	if matched, ok := matchList(host, c.retailer); ok {
		return Result{Tier: domain.TierRetailer, Method: MethodDomainList, Reason: matched}
	}

	if token, ok := editorialToken(host); ok {
		return Result{Tier: domain.TierEditorial, Method: MethodHostHeuristic, Reason: token}
	}

	return Result{Tier: domain.TierUnknown, Method: MethodDefault, Reason: "unlisted host"}
}

// Tier is a convenience wrapper returning only the assigned tier.
func (c *Classifier) Tier(host string) domain.Tier {
	return c.Classify(host).Tier
}

// matchList reports the first list entry the host matches, exactly or as a
// subdomain.
func matchList(host string, list []string) (string, bool) {
	for _, entry := range list {
		if host == entry || strings.HasSuffix(host, "."+entry) {
			return entry, true
		}
	}
	return "", false
}

// editorialToken reports whether a host label marks the site as a
// publication, such as news.example.com or example-magazine.com.
func editorialToken(host string) (string, bool) {
	for _, token := range editorialHostTokens {
		for _, label := range strings.FieldsFunc(host, func(r rune) bool {
			return r == '.' || r == '-'
		}) {
			if label == token {
				return token, true
			}
		}
	}
	return "", false
}
