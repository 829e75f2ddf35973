package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDocumentParsesBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != userAgent {
			t.Errorf("unexpected user agent: %q", r.Header.Get("User-Agent"))
		}
		_, _ = w.Write([]byte(`<html><head><title>Hello</title></head><body><section><a href="/x">x</a></section></body></html>`))
	}))
	defer server.Close()

	doc, err := NewHTTPFetcher(server.Client()).Document(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Document error: %v", err)
	}
	if got := doc.Find("title").Text(); got != "Hello" {
		t.Fatalf("unexpected title: %q", got)
	}
	if href, _ := doc.Find("section a").First().Attr("href"); href != "/x" {
		t.Fatalf("unexpected href: %q", href)
	}
}

func TestDocumentNonSuccessStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewHTTPFetcher(server.Client()).Document(context.Background(), server.URL)
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fetchErr.Status != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", fetchErr.Status)
	}
}

func TestDocumentTransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewHTTPFetcher(nil).Document(context.Background(), url)
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) || fetchErr.Err == nil {
		t.Fatalf("expected transport FetchError, got %v", err)
	}
}
