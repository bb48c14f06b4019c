package models

// MediaKind distinguishes how a media item should be painted and which
// extension a saved copy receives.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Extension returns the filename extension for saved media of this kind.
func (m MediaKind) Extension() string {
	if m == MediaVideo {
		return "mp4"
	}
	return "jpg"
}

type MediaRef struct {
	URL  string    `json:"url"`
	Kind MediaKind `json:"kind"`
}

// DisplayPayload is the render-ready description of what to show for a
// selected entry. It is recomputed on every selection or navigation and
// is the sole input to the export coordinator.
type DisplayPayload struct {
	EntryID     string     `json:"entry_id,omitempty"`
	MediaItems  []MediaRef `json:"media_items"`
	CaptionText string     `json:"caption_text,omitempty"`
	// Message carries placeholder text for the "nothing available" case.
	// It is presentation-only and never exported.
	Message string `json:"message,omitempty"`
}

// IsEmpty reports whether the payload has neither exportable text nor media.
func (p DisplayPayload) IsEmpty() bool {
	return len(p.MediaItems) == 0 && p.CaptionText == ""
}
