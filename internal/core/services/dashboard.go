package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ewilliams-labs/dashboard/internal/core/domain"
	"github.com/ewilliams-labs/dashboard/internal/core/ports"
)

// Dashboard composes catalog calls into the records the dashboard renders.
type Dashboard struct {
	catalog ports.CatalogProvider
}

// NewDashboard constructs a Dashboard.
func NewDashboard(catalog ports.CatalogProvider) *Dashboard {
	return &Dashboard{catalog: catalog}
}

func (d *Dashboard) TopArtist(ctx context.Context) (domain.Artist, error) {
	artist, err := d.catalog.GetTopArtist(ctx)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("service: failed to fetch top artist: %w", err)
	}
	return artist, nil
}

func (d *Dashboard) ArtistTopTrack(ctx context.Context, artistID string) (domain.Track, error) {
	track, err := d.catalog.GetArtistTopTrack(ctx, artistID)
	if err != nil {
		return domain.Track{}, fmt.Errorf("service: failed to fetch artist top track: %w", err)
	}
	return track, nil
}

func (d *Dashboard) Albums(ctx context.Context, artistID string) ([]domain.Album, error) {
	albums, err := d.catalog.GetAlbumsByArtist(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch albums: %w", err)
	}
	return albums, nil
}

func (d *Dashboard) NewReleases(ctx context.Context) ([]domain.Album, error) {
	albums, err := d.catalog.GetNewReleases(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch new releases: %w", err)
	}
	return albums, nil
}

func (d *Dashboard) Profile(ctx context.Context, token string) (domain.User, error) {
	user, err := d.catalog.GetUserProfile(ctx, token)
	if err != nil {
		return domain.User{}, fmt.Errorf("service: failed to fetch profile: %w", err)
	}
	return user, nil
}

// Overview fetches everything the dashboard page shows in one pass.
// Profile, new releases and the top artist load concurrently; the artist's
// top track and albums follow once the artist is known. The first failure
// cancels the rest and is returned as is.
func (d *Dashboard) Overview(ctx context.Context, token string) (domain.Dashboard, error) {
	var out domain.Dashboard

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		user, err := d.Profile(gctx, token)
		out.User = user
		return err
	})

	g.Go(func() error {
		releases, err := d.NewReleases(gctx)
		out.NewReleases = releases
		return err
	})

	g.Go(func() error {
		artist, err := d.TopArtist(gctx)
		if err != nil {
			return err
		}
		out.TopArtist = artist

		ag, actx := errgroup.WithContext(gctx)
		ag.Go(func() error {
			track, err := d.ArtistTopTrack(actx, artist.ID)
			out.ArtistTopTrack = track
			return err
		})
		ag.Go(func() error {
			albums, err := d.Albums(actx, artist.ID)
			out.Albums = albums
			return err
		})
		return ag.Wait()
	})

	if err := g.Wait(); err != nil {
		return domain.Dashboard{}, err
	}
	return out, nil
}
