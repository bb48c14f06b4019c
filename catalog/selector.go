package catalog

import (
	"errors"
	"math/rand/v2"

	"github.com/slime-this/bangerd/models"
	"github.com/slime-this/bangerd/shared"
)

// ErrNoContent is the normal outcome for a filter with nothing registered.
// It is not a fault; callers render it as an explicit "nothing available"
// payload.
var ErrNoContent = errors.New("no content available for this filter")

// Pick draws one entry uniformly at random from the subsequence matching
// filter. The filter is either "all" or one kind tag; an unknown tag
// behaves as an empty subsequence. Draws are independent across calls and
// previously seen entries are never excluded.
func (c *Catalog) Pick(filter string) (models.ContentEntry, error) {
	filtered := c.entries
	if filter != shared.FILTER_ALL {
		filtered = nil
		for _, entry := range c.entries {
			if string(entry.Content.Kind()) == filter {
				filtered = append(filtered, entry)
			}
		}
	}
	if len(filtered) == 0 {
		return models.ContentEntry{}, ErrNoContent
	}
	return filtered[rand.IntN(len(filtered))], nil
}
