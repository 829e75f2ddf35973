package parser

import (
	"context"
	"log/slog"
	"strings"

	"NewsScanner/internal/domain"
	"NewsScanner/internal/ports"
	"NewsScanner/internal/scanner"
)

// MailScanner reads the Daily Mail latest-headlines page.
type MailScanner struct {
	fetcher ports.DocumentFetcher
	logger  *slog.Logger
}

var _ scanner.Adapter = (*MailScanner)(nil)

// NewMailScanner wires the page fetcher.
func NewMailScanner(fetcher ports.DocumentFetcher, logger *slog.Logger) *MailScanner {
	return &MailScanner{fetcher: fetcher, logger: logger}
}

func (m *MailScanner) Name() string {
	return string(domain.Mail)
}

// ListCandidates pairs each headline's title span with its absolute link.
func (m *MailScanner) ListCandidates(ctx context.Context, req scanner.Request) ([]scanner.Link, error) {
	doc, err := m.fetcher.Document(ctx, req.BaseURL)
	if err != nil {
		return nil, err
	}

	root := siteRoot(req.BaseURL)
	if v := req.Options["siteURL"]; v != "" {
		root = strings.TrimSuffix(v, "/")
	}

	items := doc.Find(".mol-fe-latest-headlines--article")
	limit := req.MaxLinks()
	links := make([]scanner.Link, 0, limit)
	for i := 0; i < items.Length() && len(links) < limit; i++ {
		anchor, err := first(items.Eq(i), "a[href]", m.Name(), req.BaseURL)
		if err != nil {
			return nil, err
		}
		span, err := first(anchor, "span", m.Name(), req.BaseURL)
		if err != nil {
			return nil, err
		}

		href, _ := anchor.Attr("href")
		if !strings.HasPrefix(href, "http") {
			href = root + href
		}
		links = append(links, scanner.Link{URL: href, Title: span.Text()})
	}

	debug(m.logger, "latest headlines", "found", items.Length(), "kept", len(links))
	return links, nil
}

// Extract reads the text of the article body container.
func (m *MailScanner) Extract(ctx context.Context, _ scanner.Request, link scanner.Link) (domain.Candidate, error) {
	doc, err := m.fetcher.Document(ctx, link.URL)
	if err != nil {
		return domain.Candidate{}, err
	}

	body, err := first(doc.Selection, `div[itemprop="articleBody"]`, m.Name(), link.URL)
	if err != nil {
		return domain.Candidate{}, err
	}

	return domain.Candidate{
		Newspaper: domain.Mail,
		Link:      link.URL,
		Title:     link.Title,
		Body:      body.Text(),
	}, nil
}
