package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/slime-this/bangerd/db"
	"github.com/slime-this/bangerd/events"
	"github.com/slime-this/bangerd/models"
	"github.com/slime-this/bangerd/shared"
)

// TextCopier places text on the user's clipboard.
type TextCopier interface {
	Copy(text string) error
}

// MediaSaver fetches the bytes behind url and stores them locally under
// filename, returning the dominant colours of saved images.
type MediaSaver interface {
	Save(ctx context.Context, url, filename string) (models.SerializedColours, error)
}

// Coordinator turns a display payload into its copy/save side effects.
// Sub-actions are independent: one failing is reported on its own notice
// and never stops the others from being attempted.
type Coordinator struct {
	Copier TextCopier
	Saver  MediaSaver
	Store  db.Store
}

func NewCoordinator(copier TextCopier, saver MediaSaver, store db.Store) *Coordinator {
	return &Coordinator{
		Copier: copier,
		Saver:  saver,
		Store:  store,
	}
}

// Export inspects the payload and issues a copy request for a non-empty
// trimmed caption plus one save request per media item. Filenames from a
// single call share a timestamp and only gain an ordinal suffix when more
// than one media item is present.
func (c *Coordinator) Export(ctx context.Context, payload models.DisplayPayload) models.ExportResult {
	caption := strings.TrimSpace(payload.CaptionText)

	if caption == "" && len(payload.MediaItems) == 0 {
		events.PublishNotice(models.NoticeInfo, "No content to copy")
		return models.ExportResult{Outcome: models.OutcomeNothingToExport}
	}

	var actions []models.ActionResult

	if caption != "" {
		result := models.ActionResult{Action: models.ActionCopyText}
		if err := c.Copier.Copy(caption); err != nil {
			slog.Error("Failed to copy caption", slog.String("stack", err.Error()))
			result.Error = err.Error()
			events.PublishNotice(models.NoticeError, "Failed to copy to clipboard")
		} else {
			result.OK = true
			events.PublishNotice(models.NoticeSuccess, "Copied to clipboard!")
		}
		c.record(result, nil)
		actions = append(actions, result)
	}

	timestamp := time.Now().UnixMilli()
	for i, item := range payload.MediaItems {
		filename := mediaFilename(timestamp, i, len(payload.MediaItems), item.Kind)
		result := models.ActionResult{
			Action:   models.ActionSaveMedia,
			Filename: filename,
			URL:      item.URL,
		}
		colours, err := c.Saver.Save(ctx, item.URL, filename)
		if err != nil {
			slog.Error("Failed to save media",
				slog.String("url", item.URL),
				slog.String("stack", err.Error()),
			)
			result.Error = err.Error()
			events.PublishNotice(models.NoticeError, "Failed to save media")
		} else {
			result.OK = true
			events.PublishNotice(models.NoticeSuccess, "Media saved!")
		}
		c.record(result, colours)
		actions = append(actions, result)
	}

	return models.ExportResult{
		Outcome: outcomeFor(actions),
		Actions: actions,
	}
}

// mediaFilename derives <prefix>-<timestamp>[-ordinal].<ext>. The ordinal
// only appears when a payload carries more than one media item.
func mediaFilename(timestamp int64, index, total int, kind models.MediaKind) string {
	if total > 1 {
		return fmt.Sprintf("%s-%d-%d.%s", shared.FILENAME_PREFIX, timestamp, index+1, kind.Extension())
	}
	return fmt.Sprintf("%s-%d.%s", shared.FILENAME_PREFIX, timestamp, kind.Extension())
}

func outcomeFor(actions []models.ActionResult) models.ExportOutcome {
	failures := 0
	for _, action := range actions {
		if !action.OK {
			failures++
		}
	}
	switch failures {
	case 0:
		return models.OutcomeExported
	case len(actions):
		return models.OutcomeFailed
	default:
		return models.OutcomePartialFailure
	}
}

func (c *Coordinator) record(result models.ActionResult, colours models.SerializedColours) {
	if c.Store == nil {
		return
	}
	outcome := "ok"
	if !result.OK {
		outcome = "failed"
	}
	record := models.ExportRecord{
		ID:              uuid.NewString(),
		CreatedAt:       time.Now().UTC(),
		Action:          string(result.Action),
		Filename:        result.Filename,
		URL:             result.URL,
		Outcome:         outcome,
		Detail:          result.Error,
		DominantColours: colours,
	}
	if err := c.Store.InsertExport(record); err != nil {
		slog.Error("Failed to record export", slog.String("stack", err.Error()))
	}
}
