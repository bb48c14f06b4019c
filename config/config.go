package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/golobby/config/v3"
	"github.com/golobby/config/v3/pkg/feeder"
)

type Config struct {
	Bangerd  BangerdConfig
	Catalog  CatalogConfig
	Gallery  GalleryConfig
	Pushover PushoverConfig
}

type BangerdConfig struct {
	Port               string `env:"PORT"`
	DbPath             string `env:"DB_PATH"`
	LogLevel           string `env:"LOG_LEVEL"`
	DownloadsDir       string `env:"DOWNLOADS_DIR"`
	ClipboardSpoolPath string `env:"CLIPBOARD_SPOOL_PATH"`
	BackgroundJobs     bool   `env:"BACKGROUND_JOBS_ENABLED"`
	WebhookSecret      string `env:"CATALOG_WEBHOOK_SECRET"`
}

type CatalogConfig struct {
	FeedURL          string `env:"FEED_URL"`
	FeedPath         string `env:"FEED_PATH"`
	RefreshInterval  string `env:"FEED_REFRESH_INTERVAL"`
	DownloadMaxAgeHr int    `env:"DOWNLOAD_MAX_AGE_HOURS"`
}

type GalleryConfig struct {
	PageSize int `env:"GALLERY_PAGE_SIZE"`
}

type PushoverConfig struct {
	Recipient string `env:"PUSHOVER_RECIPIENT"`
	Token     string `env:"PUSHOVER_TOKEN"`
}

// Load reads configuration from .env (when present) plus the process
// environment and applies defaults for anything unset.
func Load() (Config, error) {
	var cfg Config
	c := config.New()
	if _, err := os.Stat(".env"); err == nil {
		c.AddFeeder(feeder.DotEnv{Path: ".env"})
	}
	c.AddFeeder(feeder.Env{})
	if err := c.AddStruct(&cfg).Feed(); err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.applyDefaults()
	if cfg.Gallery.PageSize <= 0 {
		return cfg, fmt.Errorf("gallery page size must be positive, got %d", cfg.Gallery.PageSize)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Bangerd.Port == "" {
		c.Bangerd.Port = "8080"
	}
	if c.Bangerd.DbPath == "" {
		c.Bangerd.DbPath = "bangerd.db"
	}
	if c.Bangerd.DownloadsDir == "" {
		c.Bangerd.DownloadsDir = "/tmp/bangerd"
	}
	if c.Bangerd.ClipboardSpoolPath == "" {
		c.Bangerd.ClipboardSpoolPath = "/tmp/bangerd/clipboard.txt"
	}
	if c.Gallery.PageSize == 0 {
		c.Gallery.PageSize = 20
	}
	if c.Catalog.DownloadMaxAgeHr == 0 {
		c.Catalog.DownloadMaxAgeHr = 72
	}
}

// FeedRefreshInterval returns the configured refresh cadence, or zero when
// periodic refresh is disabled.
func (c *Config) FeedRefreshInterval() time.Duration {
	if c.Catalog.RefreshInterval == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Catalog.RefreshInterval)
	if err != nil {
		slog.With(slog.String("interval", c.Catalog.RefreshInterval)).Warn("Invalid feed refresh interval. Disabling refresh.")
		return 0
	}
	return d
}

func (c *Config) GetLogLevel() slog.Leveler {
	logLevel := strings.ToLower(c.Bangerd.LogLevel)
	if logLevel == "error" {
		return slog.LevelError
	}
	if logLevel == "warning" {
		return slog.LevelWarn
	}
	if logLevel == "info" {
		return slog.LevelInfo
	}
	if logLevel == "debug" {
		return slog.LevelDebug
	}
	// default to info if unknown
	slog.With(slog.String("log_level", logLevel)).Info("Received invalid log level. Defaulting to INFO.")
	return slog.LevelInfo
}
