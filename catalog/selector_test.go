package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slime-this/bangerd/models"
	"github.com/slime-this/bangerd/shared"
)

func quotesAndImagesCatalog(t *testing.T) *Catalog {
	t.Helper()
	sources := []Source{
		staticDoc{name: "feed", doc: models.FeedDocument{
			Quotes: []string{"one", "two", "three"},
		}},
		staticDoc{name: "images", doc: models.FeedDocument{Images: []string{"a.jpg", "b.jpg"}}},
	}
	return Build(context.Background(), sources)
}

func TestPick_FilterOnlyReturnsMatchingKind(t *testing.T) {
	t.Parallel()
	cat := quotesAndImagesCatalog(t)

	// Selection is random so sample repeatedly
	for i := 0; i < 50; i++ {
		entry, err := cat.Pick(string(models.KindQuote))
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, models.KindQuote, entry.Content.Kind())
	}
}

func TestPick_AllDrawsFromWholeCatalog(t *testing.T) {
	t.Parallel()
	cat := quotesAndImagesCatalog(t)

	seen := map[models.Kind]bool{}
	for i := 0; i < 200; i++ {
		entry, err := cat.Pick(shared.FILTER_ALL)
		if err != nil {
			t.Fatal(err)
		}
		seen[entry.Content.Kind()] = true
	}
	// With 200 draws over 5 entries, both kinds should show up
	assert.True(t, seen[models.KindQuote])
	assert.True(t, seen[models.KindImage])
}

func TestPick_EmptyFilterSetReturnsErrNoContent(t *testing.T) {
	t.Parallel()
	cat := quotesAndImagesCatalog(t)

	_, err := cat.Pick(string(models.KindVideo))
	assert.True(t, errors.Is(err, ErrNoContent))
}

func TestPick_UnknownFilterBehavesAsEmpty(t *testing.T) {
	t.Parallel()
	cat := quotesAndImagesCatalog(t)

	_, err := cat.Pick("hologram")
	assert.True(t, errors.Is(err, ErrNoContent))
}

func TestPick_EmptyCatalogReturnsErrNoContent(t *testing.T) {
	t.Parallel()
	cat := Build(context.Background(), nil)

	_, err := cat.Pick(shared.FILTER_ALL)
	assert.True(t, errors.Is(err, ErrNoContent))
}
