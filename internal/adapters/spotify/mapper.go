package spotify

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ewilliams-labs/dashboard/internal/core/domain"
	"github.com/ewilliams-labs/dashboard/internal/core/ports"
)

// mapper turns located catalog nodes into flat domain records.
//
// Every record is built in two steps: the scalar fields are decoded straight
// into a wire struct, then the nested decorations are pulled out of the raw
// node by the extractors. With strict unset, an empty or missing decoration
// list leaves that field nil; with strict set, it fails the whole call. A null
// element or field inside a present list leaves the field nil in both modes.
type mapper struct {
	strict bool
}

// mapTopArtist builds the first artist of a /me/top/artists response.
func (m mapper) mapTopArtist(root Node) (domain.Artist, error) {
	item, err := firstItem(root, "items")
	if err != nil {
		return domain.Artist{}, err
	}

	var sa spotifyArtist
	if err := decodeWire(item, &sa, "items[0]"); err != nil {
		return domain.Artist{}, err
	}
	artist := domain.Artist{ID: sa.ID, Name: sa.Name}

	genres, err := decorationList(item, "genres")
	if err != nil {
		return domain.Artist{}, fmt.Errorf("items[0]: %w", err)
	}
	if artist.Genre, err = m.decorate(FirstGenre(genres)); err != nil {
		return domain.Artist{}, fmt.Errorf("items[0]: %w", err)
	}

	images, err := decorationList(item, "images")
	if err != nil {
		return domain.Artist{}, fmt.Errorf("items[0]: %w", err)
	}
	if artist.ImageURL, err = m.decorate(imageURL(images)); err != nil {
		return domain.Artist{}, fmt.Errorf("items[0]: %w", err)
	}

	return artist, nil
}

// mapTopTrack builds the first track of a /artists/{id}/top-tracks response.
// The image comes from the track's parent album.
func (m mapper) mapTopTrack(root Node) (domain.Track, error) {
	item, err := firstItem(root, "tracks")
	if err != nil {
		return domain.Track{}, err
	}

	var st spotifyTrack
	if err := decodeWire(item, &st, "tracks[0]"); err != nil {
		return domain.Track{}, err
	}
	track := domain.Track{Name: st.Name}

	artists, err := decorationList(item, "artists")
	if err != nil {
		return domain.Track{}, fmt.Errorf("tracks[0]: %w", err)
	}
	if track.Artist, err = m.decorate(FirstArtistName(artists)); err != nil {
		return domain.Track{}, fmt.Errorf("tracks[0]: %w", err)
	}

	images, err := decorationList(item, "album", "images")
	if err != nil {
		return domain.Track{}, fmt.Errorf("tracks[0]: %w", err)
	}
	if track.ImageURL, err = m.decorate(imageURL(images)); err != nil {
		return domain.Track{}, fmt.Errorf("tracks[0]: %w", err)
	}

	return track, nil
}

// mapAlbums builds one album per element of the array at path, in order.
func (m mapper) mapAlbums(root Node, path ...string) ([]domain.Album, error) {
	located := Locate(root, KindArray, path...)
	raw, err := located.Array()
	if err != nil {
		return nil, err
	}

	var wires []spotifyAlbum
	if err := json.Unmarshal(located.Node, &wires); err != nil {
		return nil, &ports.ShapeError{Path: path, Want: "array of albums", Got: err.Error()}
	}

	return zipByIndex(wires, raw, path, m.mapAlbum)
}

func (m mapper) mapAlbum(sa spotifyAlbum, item Node) (domain.Album, error) {
	album := domain.Album{Name: sa.Name, TotalTracks: sa.TotalTracks}

	urls := Locate(item, KindObject, "external_urls")
	switch urls.Status {
	case Found:
		links, err := urls.Object()
		if err != nil {
			return domain.Album{}, err
		}
		album.SpotifyURL = domain.Optional(ExternalSpotifyLink(links))
	case WrongShape:
		return domain.Album{}, urls.Err()
	}

	images, err := decorationList(item, "images")
	if err != nil {
		return domain.Album{}, err
	}
	if album.ImageURL, err = m.decorate(imageURL(images)); err != nil {
		return domain.Album{}, err
	}

	artists, err := decorationList(item, "artists")
	if err != nil {
		return domain.Album{}, err
	}
	if album.Artist, err = m.decorate(FirstArtistName(artists)); err != nil {
		return domain.Album{}, err
	}

	return album, nil
}

// mapUser builds the /me profile.
func (m mapper) mapUser(root Node) (domain.User, error) {
	if err := Locate(root, KindObject).Err(); err != nil {
		return domain.User{}, err
	}

	var su spotifyUser
	if err := decodeWire(root, &su, "profile"); err != nil {
		return domain.User{}, err
	}
	user := domain.User{DisplayName: su.DisplayName, Email: su.Email, ID: su.ID}

	images, err := decorationList(root, "images")
	if err != nil {
		return domain.User{}, err
	}
	if user.ImageURL, err = m.decorate(imageURL(images)); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// decorate applies the empty-list policy to one extracted field.
func (m mapper) decorate(value string, err error) (*string, error) {
	if err == nil {
		return &value, nil
	}
	if errors.Is(err, ports.ErrFieldAbsent) || (errors.Is(err, ports.ErrEmptyList) && !m.strict) {
		slog.Debug("spotify adapter: decoration absent", "reason", err.Error())
		return nil, nil
	}
	return nil, err
}

// zipByIndex pairs the i-th decoded wire record with the i-th raw node. The
// two lists come from separate decodes of the same array, so their lengths are
// checked before any pairing happens.
func zipByIndex[W, R any](wires []W, raw []Node, path []string, build func(W, Node) (R, error)) ([]R, error) {
	if len(wires) != len(raw) {
		return nil, &ports.ShapeError{
			Path: path,
			Want: fmt.Sprintf("%d decoded items", len(raw)),
			Got:  strconv.Itoa(len(wires)),
		}
	}

	out := make([]R, len(raw))
	for i := range raw {
		rec, err := build(wires[i], raw[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", indexLabel(path, i), err)
		}
		out[i] = rec
	}
	return out, nil
}

// firstItem returns element 0 of the array at path, which must be an object.
// An empty first-level array means no record can be built.
func firstItem(root Node, path ...string) (Node, error) {
	items, err := Locate(root, KindArray, path...).Array()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, &ports.EmptyListError{Field: path[len(path)-1]}
	}
	if err := Locate(items[0], KindObject).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", indexLabel(path, 0), err)
	}
	return items[0], nil
}

// decorationList locates an optional list inside one item. A missing list
// reads as empty; a value of the wrong kind is a shape error.
func decorationList(item Node, path ...string) ([]Node, error) {
	located := Locate(item, KindArray, path...)
	if located.Status == Absent {
		return nil, nil
	}
	return located.Array()
}

// imageURL adapts FirstImageURL to the empty-list policy.
func imageURL(images []Node) (string, error) {
	url, ok := FirstImageURL(images)
	if !ok {
		return "", &ports.EmptyListError{Field: "images"}
	}
	return url, nil
}

func decodeWire(item Node, v any, label string) error {
	if err := json.Unmarshal(item, v); err != nil {
		return fmt.Errorf("%s: %w", label, &ports.ShapeError{Want: "object", Got: err.Error()})
	}
	return nil
}

func indexLabel(path []string, i int) string {
	if len(path) == 0 {
		return "[" + strconv.Itoa(i) + "]"
	}
	return path[len(path)-1] + "[" + strconv.Itoa(i) + "]"
}
