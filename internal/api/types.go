package api

import (
	"time"

	"github.com/jonesrussell/gofresh/internal/domain"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Code      string    `json:"code"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse reports service health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// ResolveRequest asks for one page's resolved update date.
type ResolveRequest struct {
	URL string `json:"url" binding:"required"`
}

// ResolveResponse carries the resolution plus the full candidate list for
// diagnosis.
type ResolveResponse struct {
	URL        string             `json:"url"`
	Host       string             `json:"host"`
	Resolution domain.Resolution  `json:"resolution"`
	Candidates []domain.Candidate `json:"candidates"`
}

// CheckRequest asks for one keyword's staleness verdict.
type CheckRequest struct {
	Keyword string `json:"keyword" binding:"required"`
	URL     string `json:"url" binding:"required"`
}
