package ports

import (
	"context"

	"github.com/ewilliams-labs/dashboard/internal/core/domain"
)

// CatalogProvider reads the current user's music profile from the catalog API.
// Every call issues exactly one upstream request and builds fresh records.
type CatalogProvider interface {
	GetTopArtist(ctx context.Context) (domain.Artist, error)
	GetArtistTopTrack(ctx context.Context, artistID string) (domain.Track, error)
	GetAlbumsByArtist(ctx context.Context, artistID string) ([]domain.Album, error)
	GetNewReleases(ctx context.Context) ([]domain.Album, error)
	GetUserProfile(ctx context.Context, token string) (domain.User, error)
}
