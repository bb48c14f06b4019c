package render

import (
	"fmt"

	"github.com/slime-this/bangerd/models"
)

// Payload maps an entry to its display description. The mapping is pure
// and covers every content kind; multi-image kinds emit media in their
// declared left-to-right, top-to-bottom order with the caption attached
// once after all media. Plain images and GIFs carry no caption.
func Payload(entry models.ContentEntry) models.DisplayPayload {
	payload := models.DisplayPayload{EntryID: entry.ID}
	switch v := entry.Content.(type) {
	case models.Quote:
		payload.CaptionText = v.Text
	case models.Meme:
		payload.MediaItems = []models.MediaRef{
			{URL: v.ImageURL, Kind: models.MediaImage},
		}
		payload.CaptionText = v.Caption
	case models.Video:
		payload.MediaItems = []models.MediaRef{
			{URL: v.VideoURL, Kind: models.MediaVideo},
		}
		payload.CaptionText = v.Caption
	case models.Gif:
		payload.MediaItems = []models.MediaRef{
			{URL: v.ImageURL, Kind: models.MediaImage},
		}
	case models.Image:
		payload.MediaItems = []models.MediaRef{
			{URL: v.ImageURL, Kind: models.MediaImage},
		}
	case models.DoubleImage:
		payload.MediaItems = []models.MediaRef{
			{URL: v.LeftURL, Kind: models.MediaImage},
			{URL: v.RightURL, Kind: models.MediaImage},
		}
		payload.CaptionText = v.Caption
	case models.QuadImage:
		payload.MediaItems = []models.MediaRef{
			{URL: v.TopLeftURL, Kind: models.MediaImage},
			{URL: v.TopRightURL, Kind: models.MediaImage},
			{URL: v.BottomLeftURL, Kind: models.MediaImage},
			{URL: v.BottomRightURL, Kind: models.MediaImage},
		}
		payload.CaptionText = v.Caption
	default:
		// Unreachable while models.Content stays sealed; a loud payload
		// beats silently dropping a new kind.
		payload.Message = fmt.Sprintf("Unrenderable content kind: %s", entry.Content.Kind())
	}
	return payload
}

// EmptyPayload is what an empty selection renders to. The message is
// presentation-only and never exported.
func EmptyPayload() models.DisplayPayload {
	return models.DisplayPayload{Message: "No bangers available for this type!"}
}

// ImagePayload renders a gallery image selection into a single-image
// payload.
func ImagePayload(url string) models.DisplayPayload {
	return models.DisplayPayload{
		MediaItems: []models.MediaRef{
			{URL: url, Kind: models.MediaImage},
		},
	}
}
