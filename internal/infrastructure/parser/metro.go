package parser

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"NewsScanner/internal/domain"
	"NewsScanner/internal/ports"
	"NewsScanner/internal/scanner"
)

const (
	metroDuplicateTitleClass = "zopo-title"
	metroBoilerplateMarker   = "Get in touch with our news team"
)

// MetroScanner reads the trending module of the Metro news section.
type MetroScanner struct {
	fetcher ports.DocumentFetcher
	logger  *slog.Logger
}

var _ scanner.Adapter = (*MetroScanner)(nil)

// NewMetroScanner wires the page fetcher.
func NewMetroScanner(fetcher ports.DocumentFetcher, logger *slog.Logger) *MetroScanner {
	return &MetroScanner{fetcher: fetcher, logger: logger}
}

func (m *MetroScanner) Name() string {
	return string(domain.Metro)
}

// ListCandidates pairs each trending item's heading with its link.
func (m *MetroScanner) ListCandidates(ctx context.Context, req scanner.Request) ([]scanner.Link, error) {
	doc, err := m.fetcher.Document(ctx, req.BaseURL)
	if err != nil {
		return nil, err
	}

	items := doc.Find(".trending-module-item")
	limit := req.MaxLinks()
	links := make([]scanner.Link, 0, limit)
	for i := 0; i < items.Length() && len(links) < limit; i++ {
		item := items.Eq(i)
		heading, err := first(item, "h2", m.Name(), req.BaseURL)
		if err != nil {
			return nil, err
		}
		anchor, err := first(item, "a[href]", m.Name(), req.BaseURL)
		if err != nil {
			return nil, err
		}
		href, _ := anchor.Attr("href")
		links = append(links, scanner.Link{
			URL:   resolveLink(req.BaseURL, href),
			Title: heading.Text(),
		})
	}

	debug(m.logger, "trending items", "found", items.Length(), "kept", len(links))
	return links, nil
}

// Extract joins article paragraphs, skipping duplicated titles and trailing boilerplate.
func (m *MetroScanner) Extract(ctx context.Context, _ scanner.Request, link scanner.Link) (domain.Candidate, error) {
	doc, err := m.fetcher.Document(ctx, link.URL)
	if err != nil {
		return domain.Candidate{}, err
	}

	body, err := first(doc.Selection, "div.article-body", m.Name(), link.URL)
	if err != nil {
		return domain.Candidate{}, err
	}

	var paras []string
	body.Find("p").Each(func(_ int, p *goquery.Selection) {
		outer, err := goquery.OuterHtml(p)
		if err == nil && strings.Contains(outer, metroDuplicateTitleClass) {
			return
		}
		paras = append(paras, p.Text())
	})

	text := strings.Join(paras, ". ")
	if idx := strings.Index(text, metroBoilerplateMarker); idx >= 0 {
		text = text[:idx]
	}

	return domain.Candidate{
		Newspaper: domain.Metro,
		Link:      link.URL,
		Title:     link.Title,
		Body:      text,
	}, nil
}
