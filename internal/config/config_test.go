package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv(outputPathEnv, "")
	t.Setenv(logLevelEnv, "")

	cfg := Load()

	if cfg.Output.Path != "scraped_data.json" {
		t.Fatalf("unexpected output path: %s", cfg.Output.Path)
	}
	if len(cfg.Sites) != 3 {
		t.Fatalf("expected 3 default sites, got %d", len(cfg.Sites))
	}
	order := []string{"guardian", "mail", "metro"}
	for i, site := range cfg.Sites {
		if site.Name != order[i] {
			t.Fatalf("site %d = %s, want %s", i, site.Name, order[i])
		}
	}
	if cfg.Scheduler.Location() == nil {
		t.Fatalf("location not bound")
	}
	if cfg.Fetch.Timeout != 20*time.Second {
		t.Fatalf("unexpected fetch timeout: %v", cfg.Fetch.Timeout)
	}
}

func TestLoadMergesFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	raw := `
logging:
  level: debug
fetch:
  timeout: 5s
  concurrency: 3
analysis:
  excludedWords: ["metro"]
output:
  path: from-file.json
  legacyScores: true
scheduler:
  timezone: Not/AZone
sites:
  - name: metro
    adapter: metro
    url: http://localhost/news
    limit: 2
`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(configPathEnv, path)
	t.Setenv(outputPathEnv, "from-env.json")
	t.Setenv(logLevelEnv, "")

	cfg := Load()

	if cfg.Output.Path != "from-env.json" {
		t.Fatalf("env should override output path, got %s", cfg.Output.Path)
	}
	if !cfg.Output.LegacyScores {
		t.Fatalf("legacyScores not merged")
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected log level: %s", cfg.Logging.Level)
	}
	if cfg.Fetch.Timeout != 5*time.Second || cfg.Fetch.Concurrency != 3 {
		t.Fatalf("unexpected fetch config: %+v", cfg.Fetch)
	}
	if len(cfg.Analysis.ExcludedWords) != 1 || cfg.Analysis.ExcludedWords[0] != "metro" {
		t.Fatalf("unexpected excluded words: %v", cfg.Analysis.ExcludedWords)
	}
	if len(cfg.Sites) != 1 || cfg.Sites[0].Limit != 2 {
		t.Fatalf("unexpected sites: %+v", cfg.Sites)
	}
	if cfg.Scheduler.Location() != time.UTC {
		t.Fatalf("unknown timezone should fall back to UTC, got %v", cfg.Scheduler.Location())
	}
}

func TestTelegramEnabled(t *testing.T) {
	t.Parallel()

	if (TelegramConfig{BotToken: "x"}).Enabled() {
		t.Fatalf("chat id missing, should be disabled")
	}
	if !(TelegramConfig{BotToken: "x", ChatID: "1"}).Enabled() {
		t.Fatalf("expected enabled")
	}
}
