// Package domain provides domain models used across the application.
package domain

import "time"

// Candidate is one piece of evidence about a page's last-update date.
type Candidate struct {
	// Label identifies the extractor and selector that produced the evidence.
	// It is diagnostic only and never drives resolution.
	Label string `json:"label"`
	// Timestamp is the parsed date, normalized to UTC.
	Timestamp time.Time `json:"timestamp"`
	// Confidence is an ordinal trust score in [0, 1], fixed per signal kind.
	Confidence float64 `json:"confidence"`
}

// Resolution is the single answer produced by fusing all candidates for a page.
type Resolution struct {
	// Timestamp is the resolved update date in UTC. Nil means no usable
	// evidence was found, which is a valid outcome rather than an error.
	Timestamp *time.Time `json:"timestamp"`
	// Confidence is the winning candidate's trust score after any agreement
	// boost. It is exactly 0.0 when Timestamp is nil.
	Confidence float64 `json:"confidence"`
	// Label names the winning candidate's source. Empty when Timestamp is nil.
	Label string `json:"label,omitempty"`
}

// Resolved reports whether the resolution carries a usable timestamp.
func (r Resolution) Resolved() bool {
	return r.Timestamp != nil
}

// ISODate renders the resolved timestamp in RFC 3339 form, or "" when unresolved.
func (r Resolution) ISODate() string {
	if r.Timestamp == nil {
		return ""
	}
	return r.Timestamp.UTC().Format(time.RFC3339)
}
