package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"NewsScanner/internal/config"
)

const articleBody = "Flood defences failed badly in the town. Flood defences failed badly again overnight, residents say. Council promises review."

const (
	guardianListing = `<a href="/theguardian/2025/nov/08">self</a>
		<a href="/uk/2025/nov/08/floods">Floods</a>`
	guardianArticle = `<html><head><title>Floods: town braces for more rain</title></head>
		<body><div id="maincontent"><p>` + articleBody + `</p></div></body></html>`
)

var pages = map[string]string{
	"/guardian/topstories":   `<section><a href="/guardian/listing">Top</a></section>`,
	"/guardian/listing":      guardianListing,
	"/uk/2025/nov/08/floods": guardianArticle,
	"/mail/latest":           `<div class="mol-fe-latest-headlines--article"><a href="/mail/a1"><span>Mail story | Exclusive</span></a></div>`,
	"/mail/a1":               `<div itemprop="articleBody">Too short.</div>`,
	"/metro/news":            `<div class="trending-module-item"><a href="/metro/broken"><h2>Broken</h2></a></div>`,
	"/metro/broken":          `<div>no body</div>`,
}

func TestRunWritesSnapshot(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	out := filepath.Join(t.TempDir(), "scraped_data.json")
	cfg := config.Config{
		Scheduler: config.SchedulerConfig{CronExpression: "0 6 * * *"},
		Fetch:     config.FetchConfig{Timeout: 5 * time.Second, Concurrency: 2},
		Output:    config.OutputConfig{Path: out},
		Sites: []config.SiteConfig{
			{Name: "guardian", Adapter: "guardian", URL: server.URL + "/guardian/topstories"},
			{Name: "mail", Adapter: "mail", URL: server.URL + "/mail/latest", Options: map[string]string{"siteURL": server.URL}},
			{Name: "metro", Adapter: "metro", URL: server.URL + "/metro/news"},
		},
	}

	a := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	a.now = func() time.Time { return time.Date(2025, time.November, 8, 7, 0, 0, 0, time.UTC) }

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected guardian and mail records, got %d: %s", len(records), raw)
	}
	if records[0]["newspaper"] != "guardian" || records[1]["newspaper"] != "mail" {
		t.Fatalf("unexpected order: %v, %v", records[0]["newspaper"], records[1]["newspaper"])
	}
	if records[0]["summary_title"] != "Floods" {
		t.Fatalf("unexpected guardian summary: %v", records[0]["summary_title"])
	}
	if records[0]["salient_sentences"] != "Flood defences failed badly in the town.  Flood defences failed badly again overnight, residents say" {
		t.Fatalf("unexpected salient sentences: %q", records[0]["salient_sentences"])
	}
	if records[1]["summary_title"] != "Mail story" || records[1]["salient_sentences"] != "" {
		t.Fatalf("unexpected mail record: %v", records[1])
	}
}
