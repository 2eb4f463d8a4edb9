// Package serp retrieves ranked search results for a keyword from a
// SerpAPI-compatible endpoint. The engine treats these as opaque competitor
// URLs; ranking quality is the provider's problem.
package serp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jonesrussell/gofresh/internal/config"
)

// ErrMissingAPIKey is returned when no API key is configured.
var ErrMissingAPIKey = errors.New("serp api key is not configured")

// limiterBurst keeps queries strictly paced; the provider meters by the
// request.
const limiterBurst = 1

// Logger provides structured logging.
type Logger interface {
	Debug(msg string, fields ...any)
	Warn(msg string, fields ...any)
}

// Result is one ranked organic result.
type Result struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

// Client queries the ranked-result provider.
type Client struct {
	httpClient *http.Client
	log        Logger
	limiter    *rate.Limiter
	apiKey     string
	baseURL    string
	engine     string
	results    int
	topN       int
	language   string
	country    string
	exclude    []string
}

// New creates a client from the serp configuration.
func New(cfg *config.SerpConfig, log Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), limiterBurst),
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		engine:     cfg.Engine,
		results:    cfg.Results,
		topN:       cfg.TopN,
		language:   cfg.Language,
		country:    cfg.Country,
		exclude:    cfg.Exclude,
	}, nil
}

// searchResponse is the provider payload, reduced to the fields consumed.
type searchResponse struct {
	OrganicResults []organicResult `json:"organic_results"`
	Error          string          `json:"error"`
}

type organicResult struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	Link     string `json:"link"`
}

// Search returns the top competitors for a keyword, excluded domains
// filtered out. The result slice holds at most the configured top N
// entries and may be empty.
func (c *Client) Search(ctx context.Context, keyword string) ([]Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	start := time.Now()

	body, err := c.query(ctx, keyword)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("provider error: %s", resp.Error)
	}

	results := c.filter(resp.OrganicResults)

	c.log.Debug("serp query completed",
		"keyword", keyword,
		"organic", len(resp.OrganicResults),
		"kept", len(results),
		"duration", time.Since(start),
	)

	return results, nil
}

// query performs the HTTP round trip.
func (c *Client) query(ctx context.Context, keyword string) ([]byte, error) {
	params := url.Values{}
	params.Set("engine", c.engine)
	params.Set("q", keyword)
	params.Set("num", strconv.Itoa(c.results))
	params.Set("hl", c.language)
	params.Set("gl", c.country)
	params.Set("api_key", c.apiKey)

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), http.NoBody)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %w", reqErr)
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("serp fetch: %w", doErr)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("read response body: %w", readErr)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serp status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}

// filter drops excluded domains and keeps the top N of what remains.
func (c *Client) filter(organic []organicResult) []Result {
	results := make([]Result, 0, c.topN)
	for _, entry := range organic {
		if entry.Link == "" || c.excluded(entry.Link) {
			continue
		}

		results = append(results, Result{
			Position: entry.Position,
			Title:    entry.Title,
			URL:      entry.Link,
		})
		if len(results) == c.topN {
			break
		}
	}
	return results
}

// excluded reports whether the link belongs to a filtered domain.
func (c *Client) excluded(link string) bool {
	lowered := strings.ToLower(link)
	for _, domain := range c.exclude {
		if strings.Contains(lowered, strings.ToLower(domain)) {
			return true
		}
	}
	return false
}
