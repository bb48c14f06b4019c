package export

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/cenkalti/backoff/v4"

	"github.com/slime-this/bangerd/models"
	"github.com/slime-this/bangerd/utils"
)

// DownloadSaver fetches media bytes and writes them into the downloads
// directory. Transient fetch failures are retried with backoff before the
// action is reported as failed.
type DownloadSaver struct {
	Client *http.Client
	Dir    string
}

func NewDownloadSaver(client *http.Client, dir string) *DownloadSaver {
	return &DownloadSaver{
		Client: client,
		Dir:    dir,
	}
}

func (d *DownloadSaver) Save(ctx context.Context, url, filename string) (models.SerializedColours, error) {
	body, err := d.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(d.Dir, filename), body, 0644); err != nil {
		return nil, err
	}

	return models.SerializedColours(utils.DominantColours(body)), nil
}

func (d *DownloadSaver) fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		res, err := d.Client.Do(req)
		if err != nil {
			return err
		}
		defer res.Body.Close()
		if res.StatusCode != http.StatusOK {
			return fmt.Errorf("media fetch returned status %d", res.StatusCode)
		}
		body, err = io.ReadAll(res.Body)
		return err
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx)
	if err := backoff.Retry(operation, bo); err != nil {
		return nil, err
	}
	return body, nil
}
