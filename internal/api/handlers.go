package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/gofresh/internal/domain"
	"github.com/jonesrussell/gofresh/internal/fetch"
	"github.com/jonesrussell/gofresh/internal/logger"
	"github.com/jonesrussell/gofresh/internal/resolver"
	"github.com/jonesrussell/gofresh/internal/signals"
)

// PageFetcher retrieves one page.
type PageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*fetch.Page, error)
}

// Checker runs one keyword's staleness check.
type Checker interface {
	Check(ctx context.Context, row domain.CheckRow) domain.ComparisonRecord
}

// Handler holds the HTTP request handlers.
type Handler struct {
	fetcher  PageFetcher
	resolver *resolver.Resolver
	checker  Checker
	log      logger.Interface
	service  string
	version  string
}

// NewHandler creates a handler instance.
func NewHandler(
	fetcher PageFetcher,
	res *resolver.Resolver,
	checker Checker,
	log logger.Interface,
	service, version string,
) *Handler {
	return &Handler{
		fetcher:  fetcher,
		resolver: res,
		checker:  checker,
		log:      log.WithComponent("api"),
		service:  service,
		version:  version,
	}
}

// HealthCheck reports service health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: h.service,
		Version: h.version,
	})
}

// Resolve handles POST /api/v1/resolve: fetch one page and return its
// resolution together with every extracted candidate.
func (h *Handler) Resolve(c *gin.Context) {
	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	page, err := h.fetcher.Fetch(c.Request.Context(), req.URL)
	if err != nil {
		h.log.Warn("resolve fetch failed", "url", req.URL, "error", err.Error())
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:     "Page fetch failed: " + err.Error(),
			Code:      "FETCH_ERROR",
			Timestamp: time.Now().UTC(),
		})
		return
	}

	candidates := h.resolver.Collect(page.Document, page.Host)
	if len(candidates) == 0 {
		candidates = signals.ExtractLastModified(page.Headers)
	}
	resolution := resolver.Reduce(candidates)

	c.JSON(http.StatusOK, ResolveResponse{
		URL:        page.URL,
		Host:       page.Host,
		Resolution: resolution,
		Candidates: candidates,
	})
}

// Check handles POST /api/v1/check: run one keyword's full staleness
// comparison.
func (h *Handler) Check(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	record := h.checker.Check(c.Request.Context(), domain.CheckRow{
		Keyword:   req.Keyword,
		TargetURL: req.URL,
	})

	c.JSON(http.StatusOK, record)
}

func (h *Handler) badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:     msg,
		Code:      "INVALID_REQUEST",
		Timestamp: time.Now().UTC(),
	})
}
