package common

import (
	"fmt"

	"github.com/jonesrussell/gofresh/internal/analyzer"
	"github.com/jonesrussell/gofresh/internal/classify"
	"github.com/jonesrussell/gofresh/internal/fetch"
	"github.com/jonesrussell/gofresh/internal/metrics"
	"github.com/jonesrussell/gofresh/internal/resolver"
	"github.com/jonesrussell/gofresh/internal/serp"
	"github.com/jonesrussell/gofresh/internal/sites"
)

// BuildRegistry returns the built-in publisher profiles, extended by the
// configured site pack when one is set.
func BuildRegistry(deps CommandDeps) (*sites.Registry, error) {
	registry := sites.DefaultRegistry()

	if path := deps.Config.Sites.Path; path != "" {
		profiles, err := sites.NewLoader(path).LoadProfiles()
		if err != nil {
			return nil, fmt.Errorf("load site profiles from %s: %w", path, err)
		}
		registry.Register(profiles...)
		deps.Logger.Debug("site profiles loaded", "path", path, "profiles", len(profiles))
	}

	return registry, nil
}

// BuildResolver creates the resolver over the configured profile registry.
func BuildResolver(deps CommandDeps) (*resolver.Resolver, error) {
	registry, err := BuildRegistry(deps)
	if err != nil {
		return nil, err
	}
	return resolver.New(registry), nil
}

// BuildFetcher creates the page fetcher.
func BuildFetcher(deps CommandDeps) *fetch.Fetcher {
	return fetch.New(&deps.Config.Fetch, deps.Logger)
}

// BuildAnalyzer wires the full analysis pipeline: fetcher, ranked-result
// client, resolver, classifier, and metrics. Fails when no SERP API key is
// configured.
func BuildAnalyzer(deps CommandDeps) (*analyzer.Analyzer, *metrics.Metrics, error) {
	serpClient, err := serp.New(&deps.Config.Serp, deps.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("create serp client: %w", err)
	}

	res, err := BuildResolver(deps)
	if err != nil {
		return nil, nil, err
	}

	m := metrics.NewMetrics()
	a := analyzer.New(
		BuildFetcher(deps),
		serpClient,
		res,
		classify.New(),
		m,
		deps.Logger,
		analyzer.Config{
			Workers:       deps.Config.Analyzer.Workers,
			ThresholdDays: deps.Config.Compare.ThresholdDays,
		},
	)

	return a, m, nil
}
