package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"

	"github.com/slime-this/bangerd/events"
	"github.com/slime-this/bangerd/models"
)

// Source contributes entries to the catalog. A source that fails to fetch
// contributes zero entries; it never aborts the rest of the build.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (models.FeedDocument, error)
}

// Catalog is the ordered, immutable registry of entries for a session.
// Entries are ordered by category (quotes, memes, videos, double-images,
// quad-images, images, gifs) and within a category by source order, which
// is also the gallery's page order.
type Catalog struct {
	entries    []models.ContentEntry
	imageIndex []string
}

// Build fetches every source and assembles the catalog in its fixed
// category order. The image index (plain image URLs, in catalog order) is
// derived in the same pass.
func Build(ctx context.Context, sources []Source) *Catalog {
	docs := make([]models.FeedDocument, 0, len(sources))
	for _, src := range sources {
		doc, err := src.Fetch(ctx)
		if err != nil {
			slog.Error("Catalog source failed",
				slog.String("source", src.Name()),
				slog.String("stack", err.Error()),
			)
			events.PublishNotice(models.NoticeError, fmt.Sprintf("Failed to load %s content", src.Name()))
			continue
		}
		docs = append(docs, doc)
	}

	c := &Catalog{}
	add := func(content models.Content) {
		c.entries = append(c.entries, models.ContentEntry{
			ID:      EntryID(content),
			Content: content,
		})
	}

	for _, d := range docs {
		for _, text := range d.Quotes {
			add(models.Quote{Text: text})
		}
	}
	for _, d := range docs {
		for _, m := range d.Memes {
			add(m)
		}
	}
	for _, d := range docs {
		for _, v := range d.Videos {
			add(v)
		}
	}
	for _, d := range docs {
		for _, di := range d.DoubleImages {
			add(di)
		}
	}
	for _, d := range docs {
		for _, qi := range d.QuadImages {
			add(qi)
		}
	}
	for _, d := range docs {
		for _, url := range d.Images {
			add(models.Image{ImageURL: url})
			c.imageIndex = append(c.imageIndex, url)
		}
	}
	for _, d := range docs {
		for _, url := range d.Gifs {
			add(models.Gif{ImageURL: url})
		}
	}

	slog.Info("Catalog built",
		slog.Int("entries", len(c.entries)),
		slog.Int("gallery_images", len(c.imageIndex)),
	)

	return c
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns the catalog's backing slice. Callers must treat it as
// read-only; the catalog is shared across concurrent reads without locks.
func (c *Catalog) Entries() []models.ContentEntry {
	return c.entries
}

// ImageIndex returns the ordered URLs of plain image entries. Only these
// participate in gallery paging.
func (c *Catalog) ImageIndex() []string {
	return c.imageIndex
}

// EntryID derives a deterministic ID from an entry's kind and fields so
// rebuilding an identical catalog keeps IDs stable.
func EntryID(content models.Content) string {
	var hashString string
	switch v := content.(type) {
	case models.Quote:
		hashString = v.Text
	case models.Meme:
		hashString = fmt.Sprintf("%s-%s", v.ImageURL, v.Caption)
	case models.Video:
		hashString = fmt.Sprintf("%s-%s", v.VideoURL, v.Caption)
	case models.Gif:
		hashString = v.ImageURL
	case models.Image:
		hashString = v.ImageURL
	case models.DoubleImage:
		hashString = fmt.Sprintf("%s-%s-%s", v.LeftURL, v.RightURL, v.Caption)
	case models.QuadImage:
		hashString = fmt.Sprintf("%s-%s-%s-%s-%s", v.TopLeftURL, v.TopRightURL, v.BottomLeftURL, v.BottomRightURL, v.Caption)
	}
	return fmt.Sprintf("%s:%d", content.Kind(), xxhash.Sum64String(hashString))
}
