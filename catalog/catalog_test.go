package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/slime-this/bangerd/models"
)

type staticDoc struct {
	name string
	doc  models.FeedDocument
	err  error
}

func (s staticDoc) Name() string { return s.name }

func (s staticDoc) Fetch(_ context.Context) (models.FeedDocument, error) {
	return s.doc, s.err
}

func TestBuild_ConcatenatesSourcesInFixedCategoryOrder(t *testing.T) {
	t.Parallel()
	sources := []Source{
		staticDoc{name: "feed", doc: models.FeedDocument{
			Quotes: []string{"first quote", "second quote"},
			Memes:  []models.Meme{{ImageURL: "meme.jpg", Caption: "a meme"}},
			Videos: []models.Video{{VideoURL: "clip.mp4", Caption: "a clip"}},
			DoubleImages: []models.DoubleImage{
				{LeftURL: "l.jpg", RightURL: "r.jpg", Caption: "both"},
			},
			QuadImages: []models.QuadImage{
				{TopLeftURL: "tl.jpg", TopRightURL: "tr.jpg", BottomLeftURL: "bl.jpg", BottomRightURL: "br.jpg", Caption: "four"},
			},
		}},
		staticDoc{name: "images", doc: models.FeedDocument{Images: []string{"one.jpg", "two.jpg"}}},
		staticDoc{name: "gifs", doc: models.FeedDocument{Gifs: []string{"gifs/cat.gif"}}},
	}

	cat := Build(context.Background(), sources)

	want := []models.Kind{
		models.KindQuote, models.KindQuote,
		models.KindMeme,
		models.KindVideo,
		models.KindDoubleImage,
		models.KindQuadImage,
		models.KindImage, models.KindImage,
		models.KindGif,
	}
	var got []models.Kind
	for _, entry := range cat.Entries() {
		got = append(got, entry.Content.Kind())
	}
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestBuild_ImageIndexOnlyContainsPlainImages(t *testing.T) {
	t.Parallel()
	sources := []Source{
		staticDoc{name: "feed", doc: models.FeedDocument{
			Memes: []models.Meme{{ImageURL: "meme.jpg", Caption: "not in gallery"}},
			Gifs:  []string{"gifs/not-in-gallery.gif"},
		}},
		staticDoc{name: "images", doc: models.FeedDocument{Images: []string{"a.jpg", "b.jpg", "c.jpg"}}},
	}

	cat := Build(context.Background(), sources)

	want := []string{"a.jpg", "b.jpg", "c.jpg"}
	if !cmp.Equal(want, cat.ImageIndex()) {
		t.Error(cmp.Diff(want, cat.ImageIndex()))
	}
}

func TestBuild_FailingSourceContributesNothing(t *testing.T) {
	t.Parallel()
	sources := []Source{
		staticDoc{name: "feed", err: errors.New("feed is down")},
		staticDoc{name: "images", doc: models.FeedDocument{Images: []string{"only.jpg"}}},
	}

	cat := Build(context.Background(), sources)

	assert.Equal(t, 1, cat.Len())
	assert.Equal(t, []string{"only.jpg"}, cat.ImageIndex())
}

func TestBuild_AllSourcesFailingYieldsEmptyCatalog(t *testing.T) {
	t.Parallel()
	sources := []Source{
		staticDoc{name: "feed", err: errors.New("boom")},
	}

	cat := Build(context.Background(), sources)

	assert.Equal(t, 0, cat.Len())
	assert.Empty(t, cat.ImageIndex())
}

func TestEntryID_DeterministicAcrossBuilds(t *testing.T) {
	t.Parallel()
	a := EntryID(models.Meme{ImageURL: "meme.jpg", Caption: "hello"})
	b := EntryID(models.Meme{ImageURL: "meme.jpg", Caption: "hello"})
	assert.Equal(t, a, b)

	c := EntryID(models.Meme{ImageURL: "meme.jpg", Caption: "different"})
	assert.NotEqual(t, a, c)
}

func TestEntryID_CarriesKindPrefix(t *testing.T) {
	t.Parallel()
	id := EntryID(models.Quote{Text: "some quote"})
	assert.Contains(t, id, "quote:")
}
