package domain

import (
	"fmt"
	"strings"
)

// Widget describes one dashboard tile: where it sits and which dashboard
// property feeds it.
type Widget struct {
	ID       string `json:"id"`
	Name     string `json:"widgetName"`
	Property string `json:"widgetProperty"`
	Label    string `json:"widgetLabel"`
	Type     string `json:"type"`
	Height   int    `json:"height"`
	Width    int    `json:"width"`
	Position string `json:"position"`
}

// Validate reports whether the widget can be stored.
func (w Widget) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("%w: widget name is required", ErrInvalidArgument)
	}
	if w.Height < 1 || w.Width < 1 {
		return fmt.Errorf("%w: widget %q must have positive height and width", ErrInvalidArgument, w.Name)
	}
	return nil
}

// DefaultWidgets returns the dashboard's standard tiles in display order.
func DefaultWidgets() []Widget {
	return []Widget{
		{Name: "user-data", Property: "user", Label: "Dati dell'utente corrente", Type: "header", Height: 1, Width: 4, Position: "center"},
		{Name: "top-artist", Property: "topArtist", Label: "Favourite", Type: "card", Height: 1, Width: 4, Position: "left"},
		{Name: "user-playlist", Property: "userPlaylists", Label: "Playlists", Type: "list", Height: 4, Width: 4, Position: "right"},
		{Name: "top-artist-song", Property: "artistTopTrack", Label: "Artist Top Track", Type: "card", Height: 1, Width: 2, Position: "center"},
		{Name: "top-ten-songs", Property: "userTopTracks", Label: "Favourite Tracks", Type: "list", Height: 3, Width: 4, Position: "left"},
		{Name: "new-releases", Property: "newReleases", Label: "New Releases", Type: "list", Height: 1, Width: 2, Position: "center"},
		{Name: "top-genres", Property: "topGenres", Label: "Recommended tracks & Artist Albums", Type: "multi-list", Height: 2, Width: 4, Position: "center"},
	}
}
