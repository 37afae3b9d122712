package spotify

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/ewilliams-labs/dashboard/internal/core/domain"
)

// GetTopArtist returns the user's favourite artist.
func (c *Client) GetTopArtist(ctx context.Context) (domain.Artist, error) {
	query := url.Values{}
	query.Set("limit", "1")

	root, err := c.get(ctx, c.httpClient, "/me/top/artists", query)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("spotify adapter: top artist: %w", err)
	}

	artist, err := c.mapper.mapTopArtist(root)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("spotify adapter: top artist: %w", err)
	}
	return artist, nil
}

// GetArtistTopTrack returns the most popular track of the given artist.
func (c *Client) GetArtistTopTrack(ctx context.Context, artistID string) (domain.Track, error) {
	path, err := artistPath(artistID, "top-tracks")
	if err != nil {
		return domain.Track{}, err
	}

	root, err := c.get(ctx, c.httpClient, path, nil)
	if err != nil {
		return domain.Track{}, fmt.Errorf("spotify adapter: artist top track: %w", err)
	}

	track, err := c.mapper.mapTopTrack(root)
	if err != nil {
		return domain.Track{}, fmt.Errorf("spotify adapter: artist top track: %w", err)
	}
	return track, nil
}

// GetAlbumsByArtist returns the albums the artist made or appears on, in the
// order the catalog lists them.
func (c *Client) GetAlbumsByArtist(ctx context.Context, artistID string) ([]domain.Album, error) {
	path, err := artistPath(artistID, "albums")
	if err != nil {
		return nil, err
	}

	root, err := c.get(ctx, c.httpClient, path, nil)
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: artist albums: %w", err)
	}

	albums, err := c.mapper.mapAlbums(root, "items")
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: artist albums: %w", err)
	}
	return albums, nil
}

func artistPath(artistID, resource string) (string, error) {
	if strings.TrimSpace(artistID) == "" {
		return "", fmt.Errorf("spotify adapter: %w: artist id is required", domain.ErrInvalidArgument)
	}
	return fmt.Sprintf("/artists/%s/%s", url.PathEscape(artistID), resource), nil
}
