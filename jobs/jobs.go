package jobs

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/slime-this/bangerd/config"
	"github.com/slime-this/bangerd/shared"
)

func SetupInBackground(cfg config.Config, refresh func(context.Context) error) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, err
	}

	s.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(PruneDownloads, cfg),
	)

	if interval := cfg.FeedRefreshInterval(); interval > 0 {
		s.NewJob(
			gocron.DurationJob(interval),
			gocron.NewTask(func() {
				if err := refresh(context.Background()); err != nil {
					slog.Error("Scheduled catalog refresh failed", slog.String("stack", err.Error()))
				}
			}),
		)
	}

	slog.Info("Jobs scheduled. Scheduler not running yet.")

	return s, nil
}

// PruneDownloads removes saved media older than the retention window.
// Only files carrying our filename prefix are touched; anything else in
// the directory is left alone.
func PruneDownloads(cfg config.Config) {
	maxAge := time.Duration(cfg.Catalog.DownloadMaxAgeHr) * time.Hour
	entries, err := os.ReadDir(cfg.Bangerd.DownloadsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("Failed to read downloads dir", slog.String("stack", err.Error()))
		}
		return
	}
	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), shared.FILENAME_PREFIX) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			path := filepath.Join(cfg.Bangerd.DownloadsDir, entry.Name())
			if err := os.Remove(path); err != nil {
				slog.Error("Failed to prune download",
					slog.String("path", path),
					slog.String("stack", err.Error()),
				)
			}
		}
	}
}
