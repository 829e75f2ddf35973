package parser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"NewsScanner/internal/config"
	"NewsScanner/internal/domain"
	"NewsScanner/internal/ports"
	"NewsScanner/internal/scanner"
)

// StrategySource implements CandidateSource via registered publisher adapters.
type StrategySource struct {
	registry    *scanner.Registry
	sites       []config.SiteConfig
	concurrency int
	logger      *slog.Logger
}

var _ ports.CandidateSource = (*StrategySource)(nil)

// NewStrategySource wires the adapter registry with config-defined sites.
// concurrency bounds how many publishers are scanned at once; values below 1 mean 1.
func NewStrategySource(reg *scanner.Registry, sites []config.SiteConfig, concurrency int, log *slog.Logger) *StrategySource {
	if concurrency < 1 {
		concurrency = 1
	}
	return &StrategySource{
		registry:    reg,
		sites:       sites,
		concurrency: concurrency,
		logger:      log,
	}
}

// CollectDaily lists and extracts candidates for every site. A failing article is
// skipped and a failing site yields an empty batch; neither aborts the run.
func (s *StrategySource) CollectDaily(ctx context.Context, day time.Time) ([][]domain.Candidate, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("adapter registry is not configured")
	}

	s.debug("collect daily", "sites", len(s.sites), "day", day.Format("2006-01-02"))

	batches := make([][]domain.Candidate, len(s.sites))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, site := range s.sites {
		g.Go(func() error {
			candidates, err := s.collectSite(gctx, site, day)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s.warn("site skipped", "site", site.Name, "error", err)
				return nil
			}
			batches[i] = candidates
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return batches, nil
}

func (s *StrategySource) collectSite(ctx context.Context, site config.SiteConfig, day time.Time) ([]domain.Candidate, error) {
	adapter, err := s.registry.Resolve(site.Adapter)
	if err != nil {
		return nil, fmt.Errorf("site %s: %w", site.Name, err)
	}

	req := scanner.Request{
		Day:      day,
		SiteName: site.Name,
		BaseURL:  site.URL,
		Limit:    site.Limit,
		Options:  site.Options,
	}

	links, err := adapter.ListCandidates(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("list site %s: %w", site.Name, err)
	}
	s.debug("site listed links", "site", site.Name, "count", len(links))

	candidates := make([]domain.Candidate, 0, len(links))
	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		candidate, err := adapter.Extract(ctx, req, link)
		if err != nil {
			s.warn("article skipped", "site", site.Name, "url", link.URL, "error", err)
			continue
		}
		candidates = append(candidates, candidate)
	}

	s.debug("site produced candidates", "site", site.Name, "count", len(candidates))
	return candidates, nil
}

func (s *StrategySource) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *StrategySource) warn(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
