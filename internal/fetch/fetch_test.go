package fetch_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonesrussell/gofresh/internal/config"
	"github.com/jonesrussell/gofresh/internal/fetch"
	"github.com/jonesrussell/gofresh/internal/logger"
)

// articleHTML carries one unambiguous update stamp.
const articleHTML = `<!DOCTYPE html>
<html>
<head>
  <meta property="article:modified_time" content="2024-03-01T10:00:00Z">
</head>
<body>
  <article><p>Body text.</p></article>
</body>
</html>`

func newFetcher(t *testing.T, retries int) *fetch.Fetcher {
	t.Helper()

	cfg := &config.FetchConfig{
		Timeout:      5 * time.Second,
		UserAgent:    "gofresh-test",
		MaxBodyBytes: 1 << 20,
		Retries:      retries,
	}
	return fetch.New(cfg, logger.NewNoOp())
}

func TestFetch_ParsesDocumentAndHeaders(t *testing.T) {
	t.Parallel()

	var gotUserAgent atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent.Store(r.Header.Get("User-Agent"))
		w.Header().Set("Last-Modified", "Wed, 01 May 2024 00:00:00 GMT")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	page, err := newFetcher(t, 0).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if page.StatusCode != http.StatusOK {
		t.Errorf("StatusCode: expected 200, got %d", page.StatusCode)
	}
	if got := page.Headers.Get("Last-Modified"); got != "Wed, 01 May 2024 00:00:00 GMT" {
		t.Errorf("Last-Modified header: got %q", got)
	}
	if page.Document.Find(`meta[property="article:modified_time"]`).Length() != 1 {
		t.Error("Document: expected the modified_time meta tag to be queryable")
	}
	if ua, _ := gotUserAgent.Load().(string); ua != "gofresh-test" {
		t.Errorf("User-Agent: expected configured value, got %q", ua)
	}
}

func TestFetch_HostNormalized(t *testing.T) {
	t.Parallel()

	host, err := fetch.Domain("https://www.CNET.com/reviews/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if host != "cnet.com" {
		t.Errorf("Domain: expected cnet.com, got %q", host)
	}
}

func TestDomain_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := fetch.Domain("not a url at all\x7f"); err == nil {
		t.Error("expected an error for an unparseable URL")
	}

	_, err := fetch.Domain("/relative/path")
	if !errors.Is(err, fetch.ErrNoHost) {
		t.Errorf("expected ErrNoHost, got %v", err)
	}
}

func TestFetch_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	page, err := newFetcher(t, 2).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page == nil || page.StatusCode != http.StatusOK {
		t.Fatal("expected a successful page after retries")
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("expected 3 attempts, got %d", got)
	}
}

func TestFetch_ClientErrorNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newFetcher(t, 2).Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected an error for a 404 response")
	}

	var statusErr *fetch.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected a StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusNotFound {
		t.Errorf("StatusError.Code: expected 404, got %d", statusErr.Code)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("expected a single attempt, got %d", got)
	}
}

func TestFetch_BodyTruncatedAtLimit(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>"))
		filler := make([]byte, 4096)
		for i := range filler {
			filler[i] = 'x'
		}
		for i := 0; i < 16; i++ {
			_, _ = w.Write(filler)
		}
		_, _ = w.Write([]byte("</body></html>"))
	}))
	defer srv.Close()

	cfg := &config.FetchConfig{
		Timeout:      5 * time.Second,
		UserAgent:    "gofresh-test",
		MaxBodyBytes: 1024,
		Retries:      0,
	}
	page, err := fetch.New(cfg, logger.NewNoOp()).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Document == nil {
		t.Fatal("expected a parsed document even when the body is truncated")
	}
}
