package events

import (
	"log/slog"

	"github.com/gregdel/pushover"

	"github.com/slime-this/bangerd/config"
)

// NotifyFeedFailure sends a push notification when the catalog feed can't
// be loaded at all. Silently does nothing when pushover isn't configured
// since a missing feed already degrades to an empty catalog.
func NotifyFeedFailure(cfg config.Config, detail string) {
	if cfg.Pushover.Token == "" || cfg.Pushover.Recipient == "" {
		return
	}
	app := pushover.New(cfg.Pushover.Token)
	recipient := pushover.NewRecipient(cfg.Pushover.Recipient)
	message := &pushover.Message{
		Title:   "Bangerd failed to load its catalog feed",
		Message: detail,
	}
	if _, err := app.SendMessage(message, recipient); err != nil {
		slog.Error("Failed to send pushover notification", slog.String("stack", err.Error()))
	}
}
