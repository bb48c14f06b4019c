package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/patrickmn/go-cache"

	"github.com/slime-this/bangerd/models"
)

const feedCacheKey = "feed"

// FeedSource loads the bangers.json style catalog feed, either over HTTP
// or from a local path. Fetched documents are cached for a few minutes so
// a webhook-triggered rebuild doesn't hammer the upstream.
type FeedSource struct {
	client *http.Client
	url    string
	path   string
	docs   *cache.Cache
}

func NewFeedSource(client *http.Client, url, path string) *FeedSource {
	return &FeedSource{
		client: client,
		url:    url,
		path:   path,
		docs:   cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (f *FeedSource) Name() string {
	return "feed"
}

func (f *FeedSource) Fetch(ctx context.Context) (models.FeedDocument, error) {
	if cached, found := f.docs.Get(feedCacheKey); found {
		return cached.(models.FeedDocument), nil
	}

	var doc models.FeedDocument
	var body []byte
	var err error
	if f.url != "" {
		body, err = f.fetchHTTP(ctx)
	} else if f.path != "" {
		body, err = os.ReadFile(f.path)
	} else {
		return doc, fmt.Errorf("feed source has neither a URL nor a path configured")
	}
	if err != nil {
		return doc, err
	}

	if err := json.Unmarshal(body, &doc); err != nil {
		return doc, fmt.Errorf("failed to parse catalog feed: %w", err)
	}

	f.docs.Set(feedCacheKey, doc, cache.DefaultExpiration)
	return doc, nil
}

func (f *FeedSource) fetchHTTP(ctx context.Context) ([]byte, error) {
	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		res, err := f.client.Do(req)
		if err != nil {
			return err
		}
		defer res.Body.Close()
		if res.StatusCode != http.StatusOK {
			return fmt.Errorf("feed returned status %d", res.StatusCode)
		}
		body, err = io.ReadAll(res.Body)
		return err
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, bo); err != nil {
		return nil, err
	}
	return body, nil
}

// StaticSource contributes a compiled-in document for assets that have no
// feed of their own.
type StaticSource struct {
	name string
	doc  models.FeedDocument
}

func NewStaticImages(urls []string) *StaticSource {
	return &StaticSource{name: "images", doc: models.FeedDocument{Images: urls}}
}

func NewStaticGifs(urls []string) *StaticSource {
	return &StaticSource{name: "gifs", doc: models.FeedDocument{Gifs: urls}}
}

func (s *StaticSource) Name() string {
	return s.name
}

func (s *StaticSource) Fetch(_ context.Context) (models.FeedDocument, error) {
	return s.doc, nil
}
