package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"NewsScanner/internal/analysis"
	"NewsScanner/internal/scanner"
)

const (
	defaultTimezone     = "Europe/London"
	fallbackTimezone    = "UTC"
	defaultOutputPath   = "scraped_data.json"
	defaultLogLevel     = "warn"
	defaultCron         = "0 6 * * *"
	defaultFetchTimeout = 20 * time.Second

	configPathEnv     = "NEWS_SCANNER_CONFIG"
	outputPathEnv     = "NEWS_SCANNER_OUTPUT"
	logLevelEnv       = "NEWS_SCANNER_LOG_LEVEL"
	telegramTokenEnv  = "TELEGRAM_BOT_TOKEN"
	telegramChatIDEnv = "TELEGRAM_CHAT_ID"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging       LoggingConfig      `yaml:"logging"`
	Scheduler     SchedulerConfig    `yaml:"scheduler"`
	Fetch         FetchConfig        `yaml:"fetch"`
	Analysis      AnalysisConfig     `yaml:"analysis"`
	Output        OutputConfig       `yaml:"output"`
	Notifications NotificationConfig `yaml:"notifications"`
	Sites         []SiteConfig       `yaml:"sites"`
}

// LoggingConfig sets the slog level (debug, info, warn, error).
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// SchedulerConfig defines when the daemon mode runs and which day counts as "today".
type SchedulerConfig struct {
	CronExpression string         `yaml:"cronExpression"`
	Timezone       string         `yaml:"timezone"`
	location       *time.Location `yaml:"-"`
}

// Location resolves the scheduler timezone string to a time.Location.
func (s SchedulerConfig) Location() *time.Location {
	if s.location != nil {
		return s.location
	}
	return time.UTC
}

// FetchConfig tunes outbound HTTP and fan-out.
type FetchConfig struct {
	Timeout     time.Duration `yaml:"timeout"`
	Concurrency int           `yaml:"concurrency"`
}

// AnalysisConfig tunes the text pipeline.
type AnalysisConfig struct {
	ExcludedWords []string `yaml:"excludedWords"`
	TopWords      int      `yaml:"topWords"`
}

// OutputConfig controls the JSON snapshot.
type OutputConfig struct {
	Path         string `yaml:"path"`
	LegacyScores bool   `yaml:"legacyScores"`
}

// NotificationConfig encapsulates outbound channels (Telegram, etc.).
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// Enabled reports whether both credentials are present.
func (t TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != ""
}

// SiteConfig describes one publisher and the adapter that reads it.
type SiteConfig struct {
	Name    string            `yaml:"name"`
	Adapter string            `yaml:"adapter"`
	URL     string            `yaml:"url"`
	Limit   int               `yaml:"limit"`
	Options map[string]string `yaml:"options"`
}

// Load reads .env and YAML configuration (if present) and applies environment overrides.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: cannot load .env: %v", err)
	}

	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if fileCfg, err := readFile(path); err != nil {
			log.Printf("config: %v (falling back to defaults)", err)
		} else {
			cfg = mergeConfig(cfg, fileCfg)
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindTimezone()

	return cfg
}

func readFile(path string) (Config, error) {
	var fileCfg Config
	raw, err := os.ReadFile(path)
	if err != nil {
		return fileCfg, err
	}
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		return fileCfg, err
	}
	return fileCfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(outputPathEnv); v != "" {
		c.Output.Path = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}

	if v := os.Getenv(telegramChatIDEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}
}

func (c *Config) bindTimezone() {
	tz := c.Scheduler.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("config: unknown timezone %s, reverting to %s", tz, fallbackTimezone)
		loc = time.UTC
	}
	c.Scheduler.location = loc
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Scheduler.CronExpression != "" {
		base.Scheduler.CronExpression = override.Scheduler.CronExpression
	}
	if override.Scheduler.Timezone != "" {
		base.Scheduler.Timezone = override.Scheduler.Timezone
	}

	if override.Fetch.Timeout > 0 {
		base.Fetch.Timeout = override.Fetch.Timeout
	}
	if override.Fetch.Concurrency > 0 {
		base.Fetch.Concurrency = override.Fetch.Concurrency
	}

	if override.Analysis.ExcludedWords != nil {
		base.Analysis.ExcludedWords = override.Analysis.ExcludedWords
	}
	if override.Analysis.TopWords > 0 {
		base.Analysis.TopWords = override.Analysis.TopWords
	}

	if override.Output.Path != "" {
		base.Output.Path = override.Output.Path
	}
	base.Output.LegacyScores = base.Output.LegacyScores || override.Output.LegacyScores

	if override.Notifications.Telegram.BotToken != "" {
		base.Notifications.Telegram.BotToken = override.Notifications.Telegram.BotToken
	}
	if override.Notifications.Telegram.ChatID != "" {
		base.Notifications.Telegram.ChatID = override.Notifications.Telegram.ChatID
	}

	if len(override.Sites) > 0 {
		base.Sites = override.Sites
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging:   LoggingConfig{Level: defaultLogLevel},
		Scheduler: SchedulerConfig{CronExpression: defaultCron, Timezone: defaultTimezone},
		Fetch:     FetchConfig{Timeout: defaultFetchTimeout, Concurrency: 1},
		Analysis: AnalysisConfig{
			ExcludedWords: analysis.DefaultExcludedWords,
			TopWords:      analysis.DefaultTopWords,
		},
		Output: OutputConfig{Path: defaultOutputPath},
		Sites: []SiteConfig{
			{
				Name:    "guardian",
				Adapter: "guardian",
				URL:     "https://www.theguardian.com/theguardian/mainsection/topstories",
				Limit:   scanner.DefaultLimit,
			},
			{
				Name:    "mail",
				Adapter: "mail",
				URL:     "https://www.dailymail.co.uk/home/latest/index.html#news",
				Limit:   scanner.DefaultLimit,
				Options: map[string]string{"siteURL": "https://www.dailymail.co.uk"},
			},
			{
				Name:    "metro",
				Adapter: "metro",
				URL:     "https://metro.co.uk/news/uk/",
				Limit:   scanner.DefaultLimit,
			},
		},
	}
}
