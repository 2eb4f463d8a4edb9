// Package fetch retrieves pages over HTTP and hands back parsed documents
// together with the response metadata the resolver consumes.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/gofresh/internal/config"
	"github.com/jonesrussell/gofresh/internal/retry"
)

// Logger provides structured logging.
type Logger interface {
	Debug(msg string, fields ...any)
	Warn(msg string, fields ...any)
}

// Page is one retrieved document plus the response metadata that matters
// downstream.
type Page struct {
	URL        string
	Host       string
	StatusCode int
	Headers    http.Header
	Document   *goquery.Document
}

// StatusError reports a non-success HTTP status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http status %d", e.Code)
}

// retryableStatus reports whether a status is worth another attempt.
// Throttling and server errors are; client errors are not.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// Fetcher retrieves and parses pages.
type Fetcher struct {
	httpClient *http.Client
	log        Logger
	userAgent  string
	maxBody    int64
	retries    int
}

// New creates a fetcher from the fetch configuration.
func New(cfg *config.FetchConfig, log Logger) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
		userAgent:  cfg.UserAgent,
		maxBody:    cfg.MaxBodyBytes,
		retries:    cfg.Retries,
	}
}

// Fetch retrieves one page, retrying transient failures. The returned page
// always carries a parsed document and the response headers.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	host, err := Domain(rawURL)
	if err != nil {
		return nil, err
	}

	cfg := retry.Config{
		MaxAttempts:  f.retries + 1,
		InitialDelay: 500 * time.Millisecond,
		IsRetryable:  fetchRetryable,
	}

	var page *Page
	err = retry.Retry(ctx, cfg, func() error {
		fetched, fetchErr := f.fetchOnce(ctx, rawURL, host)
		if fetchErr != nil {
			f.log.Warn("page fetch attempt failed", "url", rawURL, "error", fetchErr.Error())
			return fetchErr
		}
		page = fetched
		return nil
	})
	if err != nil {
		return nil, err
	}

	return page, nil
}

// fetchRetryable treats throttled and erroring servers as transient, plus
// the usual network failure patterns.
func fetchRetryable(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return retryableStatus(statusErr.Code)
	}
	return retry.DefaultIsRetryable(err)
}

// fetchOnce performs a single HTTP GET and parses the body.
func (f *Fetcher) fetchOnce(ctx context.Context, rawURL, host string) (*Page, error) {
	start := time.Now()

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %w", reqErr)
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, doErr := f.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("http fetch: %w", doErr)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	limited := io.LimitReader(resp.Body, f.maxBody)

	body, readErr := io.ReadAll(limited)
	if readErr != nil {
		return nil, fmt.Errorf("read response body: %w", readErr)
	}

	doc, parseErr := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if parseErr != nil {
		return nil, fmt.Errorf("parse document: %w", parseErr)
	}

	f.log.Debug("page fetched",
		"url", rawURL,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(start),
	)

	return &Page{
		URL:        rawURL,
		Host:       host,
		StatusCode: resp.StatusCode,
		Headers:    resp.Header.Clone(),
		Document:   doc,
	}, nil
}
