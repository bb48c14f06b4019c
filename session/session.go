package session

import (
	"context"
	"errors"
	"sync"

	"github.com/slime-this/bangerd/catalog"
	"github.com/slime-this/bangerd/export"
	"github.com/slime-this/bangerd/gallery"
	"github.com/slime-this/bangerd/models"
	"github.com/slime-this/bangerd/render"
	"github.com/slime-this/bangerd/shared"
)

// Session owns all per-session state: the catalog snapshot, the gallery
// browser, the active type filter and the currently displayed payload.
// Everything the handlers mutate goes through the session's lock; the
// catalog itself is read-only once built so reads need no coordination
// beyond the snapshot pointer.
type Session struct {
	m sync.RWMutex

	catalog  *catalog.Catalog
	browser  *gallery.Browser
	pageSize int
	filter   string
	current  models.DisplayPayload

	exporter *export.Coordinator
}

func New(cat *catalog.Catalog, pageSize int, exporter *export.Coordinator) (*Session, error) {
	browser, err := gallery.NewBrowser(cat.ImageIndex(), pageSize)
	if err != nil {
		return nil, err
	}
	return &Session{
		catalog:  cat,
		browser:  browser,
		pageSize: pageSize,
		filter:   shared.FILTER_ALL,
		exporter: exporter,
	}, nil
}

// Generate draws a random entry for the given filter ("" keeps the
// session's active filter) and makes its payload current. An empty
// selection is a normal outcome rendered as the explicit placeholder
// payload.
func (s *Session) Generate(filter string) models.DisplayPayload {
	s.m.Lock()
	defer s.m.Unlock()
	if filter != "" {
		s.filter = filter
	}
	entry, err := s.catalog.Pick(s.filter)
	if errors.Is(err, catalog.ErrNoContent) {
		s.current = render.EmptyPayload()
		return s.current
	}
	s.current = render.Payload(entry)
	return s.current
}

// Current returns a snapshot of the displayed payload.
func (s *Session) Current() models.DisplayPayload {
	s.m.RLock()
	defer s.m.RUnlock()
	return s.current
}

func (s *Session) Filter() string {
	s.m.RLock()
	defer s.m.RUnlock()
	return s.filter
}

func (s *Session) Gallery() gallery.Snapshot {
	s.m.RLock()
	defer s.m.RUnlock()
	return s.browser.Snapshot()
}

func (s *Session) Navigate(dir gallery.Direction) gallery.Snapshot {
	s.m.Lock()
	defer s.m.Unlock()
	s.browser.Navigate(dir)
	return s.browser.Snapshot()
}

func (s *Session) GoToPage(page int) gallery.Snapshot {
	s.m.Lock()
	defer s.m.Unlock()
	s.browser.GoTo(page)
	return s.browser.Snapshot()
}

// SelectImage enters the single-image view for a URL on the current page
// and makes that image the displayed payload.
func (s *Session) SelectImage(url string) (models.DisplayPayload, bool) {
	s.m.Lock()
	defer s.m.Unlock()
	if !s.browser.Select(url) {
		return s.current, false
	}
	s.current = render.ImagePayload(url)
	return s.current, true
}

// NextItem steps the single-image view forward within the current page,
// updating the displayed payload to match.
func (s *Session) NextItem() models.DisplayPayload {
	s.m.Lock()
	defer s.m.Unlock()
	s.browser.NextItem()
	return s.refreshSelected()
}

func (s *Session) PreviousItem() models.DisplayPayload {
	s.m.Lock()
	defer s.m.Unlock()
	s.browser.PreviousItem()
	return s.refreshSelected()
}

func (s *Session) refreshSelected() models.DisplayPayload {
	if url, ok := s.browser.SelectedURL(); ok {
		s.current = render.ImagePayload(url)
	}
	return s.current
}

// GalleryBack leaves the single-image view, returning to the grid at the
// previously active page.
func (s *Session) GalleryBack() gallery.Snapshot {
	s.m.Lock()
	defer s.m.Unlock()
	s.browser.Back()
	return s.browser.Snapshot()
}

// ExportCurrent snapshots the displayed payload before doing any I/O so a
// rapid re-generate can't swap the payload out from under an in-flight
// export.
func (s *Session) ExportCurrent(ctx context.Context) models.ExportResult {
	s.m.RLock()
	payload := s.current
	s.m.RUnlock()
	return s.exporter.Export(ctx, payload)
}

// ReplaceCatalog swaps in a freshly built catalog and resets gallery
// state, used by the refresh webhook and the scheduled feed refresh.
func (s *Session) ReplaceCatalog(cat *catalog.Catalog) error {
	browser, err := gallery.NewBrowser(cat.ImageIndex(), s.pageSize)
	if err != nil {
		return err
	}
	s.m.Lock()
	defer s.m.Unlock()
	s.catalog = cat
	s.browser = browser
	return nil
}
