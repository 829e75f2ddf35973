package parser

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"NewsScanner/internal/domain"
	"NewsScanner/internal/ports"
	"NewsScanner/internal/scanner"
)

// GuardianScanner finds today's top stories through the dated section listing.
type GuardianScanner struct {
	fetcher ports.DocumentFetcher
	logger  *slog.Logger
}

var _ scanner.Adapter = (*GuardianScanner)(nil)

// NewGuardianScanner wires the page fetcher.
func NewGuardianScanner(fetcher ports.DocumentFetcher, logger *slog.Logger) *GuardianScanner {
	return &GuardianScanner{fetcher: fetcher, logger: logger}
}

// Name identifies the adapter inside the registry.
func (g *GuardianScanner) Name() string {
	return string(domain.Guardian)
}

// ListCandidates returns links dated today, falling back to yesterday when none match.
func (g *GuardianScanner) ListCandidates(ctx context.Context, req scanner.Request) ([]scanner.Link, error) {
	links, err := g.linksForDay(ctx, req, req.Day)
	if err != nil {
		return nil, err
	}
	if len(links) > 0 {
		return links, nil
	}

	yesterday := req.Day.AddDate(0, 0, -1)
	debug(g.logger, "no links for today, retrying yesterday", "token", dateToken(yesterday))
	return g.linksForDay(ctx, req, yesterday)
}

func (g *GuardianScanner) linksForDay(ctx context.Context, req scanner.Request, day time.Time) ([]scanner.Link, error) {
	root, err := g.fetcher.Document(ctx, req.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("section root: %w", err)
	}

	section, err := first(root.Selection, "section", g.Name(), req.BaseURL)
	if err != nil {
		return nil, err
	}
	nav, err := first(section, "a", g.Name(), req.BaseURL)
	if err != nil {
		return nil, err
	}
	href, ok := nav.Attr("href")
	if !ok {
		return nil, &ExtractionError{Source: g.Name(), URL: req.BaseURL, Element: "section a[href]"}
	}
	listingURL := resolveLink(req.BaseURL, href)

	listing, err := g.fetcher.Document(ctx, listingURL)
	if err != nil {
		return nil, fmt.Errorf("listing page: %w", err)
	}

	token := dateToken(day)
	var matches []string
	listing.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		if link, _ := a.Attr("href"); strings.Contains(link, token) {
			matches = append(matches, link)
		}
	})
	debug(g.logger, "dated links", "token", token, "matches", len(matches))

	// The first dated link on the listing points back at the listing itself.
	if len(matches) > 0 {
		matches = matches[1:]
	}

	limit := req.MaxLinks()
	seen := map[string]struct{}{}
	links := make([]scanner.Link, 0, limit)
	for _, m := range matches {
		if len(links) == limit {
			break
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		links = append(links, scanner.Link{URL: resolveLink(listingURL, m)})
	}
	return links, nil
}

// Extract reads the page title and the paragraphs of the main content block.
func (g *GuardianScanner) Extract(ctx context.Context, _ scanner.Request, link scanner.Link) (domain.Candidate, error) {
	doc, err := g.fetcher.Document(ctx, link.URL)
	if err != nil {
		return domain.Candidate{}, err
	}

	title, err := first(doc.Selection, "title", g.Name(), link.URL)
	if err != nil {
		return domain.Candidate{}, err
	}
	body, err := first(doc.Selection, "div#maincontent", g.Name(), link.URL)
	if err != nil {
		return domain.Candidate{}, err
	}

	var text strings.Builder
	body.Find("p").Each(func(_ int, p *goquery.Selection) {
		text.WriteString(p.Text())
	})

	return domain.Candidate{
		Newspaper: domain.Guardian,
		Link:      link.URL,
		Title:     title.Text(),
		Body:      text.String(),
	}, nil
}

// dateToken renders day the way Guardian article paths carry it, e.g. "oct/07".
func dateToken(day time.Time) string {
	return strings.ToLower(day.Format("Jan")) + "/" + day.Format("02")
}
