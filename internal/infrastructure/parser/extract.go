package parser

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractionError reports a structural element missing from a page.
type ExtractionError struct {
	Source  string
	URL     string
	Element string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s: element %q not found on %s", e.Source, e.Element, e.URL)
}

// first returns the first match of selector or an ExtractionError.
func first(sel *goquery.Selection, selector, source, pageURL string) (*goquery.Selection, error) {
	match := sel.Find(selector).First()
	if match.Length() == 0 {
		return nil, &ExtractionError{Source: source, URL: pageURL, Element: selector}
	}
	return match, nil
}

// resolveLink turns href into an absolute URL relative to base.
func resolveLink(base, href string) string {
	href = strings.TrimSpace(href)
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}

// siteRoot strips the path from a listing URL, leaving scheme and host.
func siteRoot(listing string) string {
	parsed, err := url.Parse(listing)
	if err != nil || parsed.Host == "" {
		return strings.TrimSuffix(listing, "/")
	}
	return parsed.Scheme + "://" + parsed.Host
}

func debug(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}
