package gallery

import "fmt"

type Direction string

const (
	Previous Direction = "previous"
	Next     Direction = "next"
)

// Browser pages through an ordered image index. Navigation outside
// [1, totalPages] is a no-op; there is no wrap-around. Selecting an image
// enters a single-image view whose item navigation is bounded to the
// current page, and leaving it returns to the same page of the grid.
//
// Browser is not safe for concurrent use; the owning session serialises
// access to it.
type Browser struct {
	imageIndex []string
	pageSize   int

	currentPage int

	// single-image view; selected is an offset within the current page
	viewingItem bool
	selected    int
}

// Snapshot is what the presentation layer needs to paint the grid and its
// controls.
type Snapshot struct {
	Images      []string `json:"images"`
	CurrentPage int      `json:"current_page"`
	TotalPages  int      `json:"total_pages"`
	HasPrevious bool     `json:"has_previous"`
	HasNext     bool     `json:"has_next"`
	ViewingItem bool     `json:"viewing_item"`
	SelectedURL string   `json:"selected_url,omitempty"`
}

func NewBrowser(imageIndex []string, pageSize int) (*Browser, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("page size must be positive, got %d", pageSize)
	}
	return &Browser{
		imageIndex:  imageIndex,
		pageSize:    pageSize,
		currentPage: 1,
	}, nil
}

// TotalPages is ceil(len(index)/pageSize), with a minimum of one so an
// empty index still renders a single empty page.
func (b *Browser) TotalPages() int {
	pages := (len(b.imageIndex) + b.pageSize - 1) / b.pageSize
	if pages == 0 {
		return 1
	}
	return pages
}

// Page returns the image URLs on the current page, at most pageSize of them.
func (b *Browser) Page() []string {
	start := (b.currentPage - 1) * b.pageSize
	if start >= len(b.imageIndex) {
		return []string{}
	}
	end := start + b.pageSize
	if end > len(b.imageIndex) {
		end = len(b.imageIndex)
	}
	return b.imageIndex[start:end]
}

// Navigate moves one page in the given direction. Requests that would
// leave [1, totalPages] leave the state unchanged.
func (b *Browser) Navigate(dir Direction) {
	switch dir {
	case Previous:
		b.GoTo(b.currentPage - 1)
	case Next:
		b.GoTo(b.currentPage + 1)
	}
}

// GoTo jumps to an absolute page number, clamping nothing: out-of-range
// requests are no-ops.
func (b *Browser) GoTo(page int) {
	if page < 1 || page > b.TotalPages() {
		return
	}
	b.currentPage = page
	b.viewingItem = false
}

// Select enters the single-image view for a URL on the current page.
// URLs not on the current page are ignored.
func (b *Browser) Select(url string) bool {
	for i, candidate := range b.Page() {
		if candidate == url {
			b.viewingItem = true
			b.selected = i
			return true
		}
	}
	return false
}

// NextItem advances the single-image view within the current page only;
// it never spills into an adjacent page.
func (b *Browser) NextItem() {
	if !b.viewingItem {
		return
	}
	if b.selected+1 < len(b.Page()) {
		b.selected++
	}
}

// PreviousItem steps the single-image view back within the current page.
func (b *Browser) PreviousItem() {
	if !b.viewingItem {
		return
	}
	if b.selected > 0 {
		b.selected--
	}
}

// Back leaves the single-image view, returning to the grid at the page
// that was active when the image was selected.
func (b *Browser) Back() {
	b.viewingItem = false
}

// SelectedURL returns the URL shown in the single-image view, if any.
func (b *Browser) SelectedURL() (string, bool) {
	if !b.viewingItem {
		return "", false
	}
	page := b.Page()
	if b.selected >= len(page) {
		return "", false
	}
	return page[b.selected], true
}

func (b *Browser) Snapshot() Snapshot {
	snap := Snapshot{
		Images:      b.Page(),
		CurrentPage: b.currentPage,
		TotalPages:  b.TotalPages(),
		ViewingItem: b.viewingItem,
	}
	snap.HasPrevious = b.currentPage > 1
	snap.HasNext = b.currentPage < snap.TotalPages
	if url, ok := b.SelectedURL(); ok {
		snap.SelectedURL = url
	}
	return snap
}
