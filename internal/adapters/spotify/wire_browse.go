package spotify

import (
	"context"
	"fmt"

	"github.com/ewilliams-labs/dashboard/internal/core/domain"
)

// GetNewReleases returns the catalog's new album releases.
func (c *Client) GetNewReleases(ctx context.Context) ([]domain.Album, error) {
	root, err := c.get(ctx, c.httpClient, "/browse/new-releases", nil)
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: new releases: %w", err)
	}

	// The album list is wrapped in a paging object under "albums".
	albums, err := c.mapper.mapAlbums(root, "albums", "items")
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: new releases: %w", err)
	}
	return albums, nil
}
