package gallery

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func urls(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("image-%02d.jpg", i+1)
	}
	return out
}

func TestNewBrowser_RejectsNonPositivePageSize(t *testing.T) {
	t.Parallel()
	_, err := NewBrowser(urls(5), 0)
	assert.Error(t, err)
	_, err = NewBrowser(urls(5), -1)
	assert.Error(t, err)
}

func TestBrowser_PagesPartitionTheIndex(t *testing.T) {
	t.Parallel()
	index := urls(25)
	b, err := NewBrowser(index, 10)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 3, b.TotalPages())

	var collected []string
	for page := 1; page <= b.TotalPages(); page++ {
		b.GoTo(page)
		collected = append(collected, b.Page()...)
	}
	if !cmp.Equal(index, collected) {
		t.Error(cmp.Diff(index, collected))
	}
}

func TestBrowser_GoToLastPageYieldsRemainder(t *testing.T) {
	t.Parallel()
	b, err := NewBrowser(urls(25), 10)
	if err != nil {
		t.Fatal(err)
	}

	b.GoTo(3)
	assert.Len(t, b.Page(), 5)
}

func TestBrowser_NavigationClampsAtBounds(t *testing.T) {
	t.Parallel()
	b, err := NewBrowser(urls(25), 10)
	if err != nil {
		t.Fatal(err)
	}

	b.Navigate(Previous)
	assert.Equal(t, 1, b.Snapshot().CurrentPage)

	b.GoTo(3)
	b.Navigate(Next)
	assert.Equal(t, 3, b.Snapshot().CurrentPage)

	b.GoTo(0)
	assert.Equal(t, 3, b.Snapshot().CurrentPage)
	b.GoTo(99)
	assert.Equal(t, 3, b.Snapshot().CurrentPage)
}

func TestBrowser_EmptyIndexIsOneDisabledPage(t *testing.T) {
	t.Parallel()
	b, err := NewBrowser(nil, 20)
	if err != nil {
		t.Fatal(err)
	}

	snap := b.Snapshot()
	assert.Equal(t, 1, snap.TotalPages)
	assert.Equal(t, 1, snap.CurrentPage)
	assert.Empty(t, snap.Images)
	assert.False(t, snap.HasPrevious)
	assert.False(t, snap.HasNext)
}

func TestBrowser_SnapshotEnablesDirectionsInTheMiddle(t *testing.T) {
	t.Parallel()
	b, err := NewBrowser(urls(25), 10)
	if err != nil {
		t.Fatal(err)
	}

	b.GoTo(2)
	snap := b.Snapshot()
	assert.True(t, snap.HasPrevious)
	assert.True(t, snap.HasNext)
}

func TestBrowser_SelectEntersSingleImageView(t *testing.T) {
	t.Parallel()
	b, err := NewBrowser(urls(25), 10)
	if err != nil {
		t.Fatal(err)
	}

	assert.True(t, b.Select("image-03.jpg"))
	url, ok := b.SelectedURL()
	assert.True(t, ok)
	assert.Equal(t, "image-03.jpg", url)
}

func TestBrowser_SelectIgnoresImagesOffTheCurrentPage(t *testing.T) {
	t.Parallel()
	b, err := NewBrowser(urls(25), 10)
	if err != nil {
		t.Fatal(err)
	}

	// image 15 lives on page 2
	assert.False(t, b.Select("image-15.jpg"))
	_, ok := b.SelectedURL()
	assert.False(t, ok)
}

func TestBrowser_ItemNavigationIsBoundedToThePage(t *testing.T) {
	t.Parallel()
	b, err := NewBrowser(urls(25), 10)
	if err != nil {
		t.Fatal(err)
	}

	b.Select("image-01.jpg")
	b.PreviousItem()
	url, _ := b.SelectedURL()
	assert.Equal(t, "image-01.jpg", url)

	b.Select("image-10.jpg")
	b.NextItem()
	url, _ = b.SelectedURL()
	// Last item on page 1; never spills onto page 2
	assert.Equal(t, "image-10.jpg", url)

	b.PreviousItem()
	url, _ = b.SelectedURL()
	assert.Equal(t, "image-09.jpg", url)
}

func TestBrowser_BackReturnsToTheActivePage(t *testing.T) {
	t.Parallel()
	b, err := NewBrowser(urls(25), 10)
	if err != nil {
		t.Fatal(err)
	}

	b.GoTo(2)
	b.Select("image-12.jpg")
	b.Back()

	snap := b.Snapshot()
	assert.False(t, snap.ViewingItem)
	assert.Equal(t, 2, snap.CurrentPage)
}
