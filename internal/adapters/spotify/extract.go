package spotify

import (
	"encoding/json"
	"fmt"

	"github.com/ewilliams-labs/dashboard/internal/core/ports"
)

// The extractors below work on nodes the caller has already located, so the
// same functions serve every endpoint that nests images, artists or links the
// same way.

// FirstGenre returns the first tag of an artist's genre list. An artist may
// legitimately have no genres; that is reported as *ports.EmptyListError,
// never as an empty string. A null first tag wraps ports.ErrFieldAbsent.
func FirstGenre(genres []Node) (string, error) {
	if len(genres) == 0 {
		return "", &ports.EmptyListError{Field: "genres"}
	}
	if genres[0].IsNull() {
		return "", fmt.Errorf("genres.0: %w", ports.ErrFieldAbsent)
	}
	genre, ok := stringValue(genres[0])
	if !ok {
		return "", &ports.ShapeError{Path: []string{"genres", "0"}, Want: "string", Got: genres[0].Kind()}
	}
	return genre, nil
}

// FirstImageURL returns the url of the first image, or false when the list is
// empty or the first image carries no url.
func FirstImageURL(images []Node) (string, bool) {
	if len(images) == 0 {
		return "", false
	}
	image, err := Locate(images[0], KindObject).Object()
	if err != nil {
		return "", false
	}
	return stringValue(image["url"])
}

// FirstArtistName returns the name of the first artist in the list. A null
// artist or a null or missing name wraps ports.ErrFieldAbsent.
func FirstArtistName(artists []Node) (string, error) {
	if len(artists) == 0 {
		return "", &ports.EmptyListError{Field: "artists"}
	}
	if artists[0].IsNull() {
		return "", fmt.Errorf("artists.0: %w", ports.ErrFieldAbsent)
	}
	artist, err := Locate(artists[0], KindObject).Object()
	if err != nil {
		return "", &ports.ShapeError{Path: []string{"artists", "0"}, Want: "object", Got: artists[0].Kind()}
	}
	if artist["name"].IsNull() {
		return "", fmt.Errorf("artists.0.name: %w", ports.ErrFieldAbsent)
	}
	name, ok := stringValue(artist["name"])
	if !ok {
		return "", &ports.ShapeError{Path: []string{"artists", "0", "name"}, Want: "string", Got: artist["name"].Kind()}
	}
	return name, nil
}

// ExternalSpotifyLink returns the "spotify" entry of an external_urls object.
func ExternalSpotifyLink(externalURLs map[string]Node) (string, bool) {
	return stringValue(externalURLs["spotify"])
}

func stringValue(n Node) (string, bool) {
	if n.Kind() != "string" {
		return "", false
	}
	var s string
	if err := json.Unmarshal(n, &s); err != nil {
		return "", false
	}
	return s, true
}
