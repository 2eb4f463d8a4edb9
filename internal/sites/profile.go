// Package sites manages publisher-specific extraction profiles. A profile
// captures template knowledge for one publisher: the domains it covers and
// the selectors that locate its update stamp. Profiles extend coverage to
// sites whose markup defeats the generic extractors.
package sites

import "strings"

// Rule is one structural selector in a profile. Rules are evaluated in
// declaration order, most reliable first.
type Rule struct {
	Selector string `mapstructure:"selector" yaml:"selector"`
}

// Profile describes one publisher.
type Profile struct {
	Name    string   `mapstructure:"name" yaml:"name"`
	Domains []string `mapstructure:"domains" yaml:"domains"`
	Rules   []Rule   `mapstructure:"rules" yaml:"rules"`
}

// Matches reports whether the given host belongs to this profile, by exact
// or subdomain match. A bare suffix like "net.com" does not capture
// "cnet.com".
func (p *Profile) Matches(host string) bool {
	host = strings.ToLower(strings.TrimSpace(host))
	if host == "" {
		return false
	}

	for _, domain := range p.Domains {
		domain = strings.ToLower(strings.TrimSpace(domain))
		if domain == "" {
			continue
		}
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}

	return false
}
