package main

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/slime-this/bangerd/catalog"
	"github.com/slime-this/bangerd/config"
	"github.com/slime-this/bangerd/db"
	"github.com/slime-this/bangerd/events"
	"github.com/slime-this/bangerd/export"
	"github.com/slime-this/bangerd/jobs"
	"github.com/slime-this/bangerd/routes"
	"github.com/slime-this/bangerd/session"
	"github.com/slime-this/bangerd/utils"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

func main() {

	if err := godotenv.Load(); err != nil {
		fmt.Println(err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.GetLogLevel(),
	}))
	slog.SetDefault(logger)

	if utils.GetEnv("RESET_DB", "0") == "1" {
		if err := os.Remove(cfg.Bangerd.DbPath); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	store, err := db.NewSqliteStore(cfg.Bangerd.DbPath)
	if err != nil {
		panic(err)
	}

	if err := store.ApplyMigrations(embedMigrations); err != nil {
		panic(err)
	}

	events.Init()

	client := utils.NewHTTPClient()
	sources := []catalog.Source{
		catalog.NewFeedSource(client, cfg.Catalog.FeedURL, cfg.Catalog.FeedPath),
		catalog.NewStaticImages(catalog.KnownImageFiles),
		catalog.NewStaticGifs(catalog.KnownGifFiles),
	}

	cat := catalog.Build(context.Background(), sources)
	if cat.Len() == 0 {
		events.NotifyFeedFailure(cfg, "Catalog came up completely empty. Check the feed.")
	}

	copier := &export.FallbackCopier{
		Primary:  &export.OSC52Copier{},
		Fallback: &export.SpoolCopier{Path: cfg.Bangerd.ClipboardSpoolPath},
	}
	saver := export.NewDownloadSaver(client, cfg.Bangerd.DownloadsDir)
	exporter := export.NewCoordinator(copier, saver, store)

	sess, err := session.New(cat, cfg.Gallery.PageSize, exporter)
	if err != nil {
		panic(err)
	}

	refresh := func(ctx context.Context) error {
		return sess.ReplaceCatalog(catalog.Build(ctx, sources))
	}

	jobScheduler, err := jobs.SetupInBackground(cfg, refresh)
	if err != nil {
		panic(err)
	}

	if cfg.Bangerd.BackgroundJobs {
		jobScheduler.Start()
		fmt.Println("Background jobs have started up in the background.")
	} else {
		fmt.Println("Background jobs are disabled.")
	}

	router := routes.Register(http.NewServeMux(), sess, store, cfg, refresh)

	fmt.Printf("Bangerd is running at http://localhost:%s\n", cfg.Bangerd.Port)

	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Bangerd.Port), router); err != nil {
		fmt.Println(err)
		jobScheduler.Shutdown()
		os.Exit(1)
	}
}
