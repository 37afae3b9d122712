package spotify_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/ewilliams-labs/dashboard/internal/adapters/spotify"
	"github.com/ewilliams-labs/dashboard/internal/core/domain"
	"github.com/ewilliams-labs/dashboard/internal/core/ports"
)

// --- Fixtures ---

const topArtistsResponse = `{
	"items": [
		{
			"id": "4Z8W4fKeB5YxbusRsdQVPb",
			"name": "Radiohead",
			"genres": ["art rock", "alternative rock"],
			"images": [ { "url": "http://img.com/radiohead.jpg", "height": 640 } ]
		}
	],
	"total": 50,
	"limit": 1
}`

const topTracksResponse = `{
	"tracks": [
		{
			"name": "Creep",
			"artists": [ { "name": "Radiohead" } ],
			"album": {
				"name": "Pablo Honey",
				"images": [ { "url": "A" }, { "url": "B" } ]
			}
		},
		{
			"name": "No Surprises",
			"artists": [ { "name": "Radiohead" } ],
			"album": { "name": "OK Computer", "images": [] }
		}
	]
}`

// The second album has no external_urls.
const artistAlbumsResponse = `{
	"items": [
		{
			"name": "OK Computer",
			"total_tracks": 12,
			"artists": [ { "name": "Radiohead" } ],
			"images": [ { "url": "http://img.com/okc.jpg" } ],
			"external_urls": { "spotify": "https://open.spotify.com/album/okc" }
		},
		{
			"name": "Kid A",
			"total_tracks": 10,
			"artists": [ { "name": "Radiohead" } ],
			"images": [ { "url": "http://img.com/kida.jpg" } ]
		}
	]
}`

const newReleasesResponse = `{
	"albums": {
		"items": [
			{
				"name": "Fresh",
				"total_tracks": 8,
				"artists": [ { "name": "Newcomer" }, { "name": "Feature" } ],
				"images": [ { "url": "http://img.com/fresh.jpg" } ],
				"external_urls": { "spotify": "https://open.spotify.com/album/fresh" }
			},
			{
				"name": "Single",
				"total_tracks": 1,
				"artists": [ { "name": "Solo" } ],
				"images": [ { "url": "http://img.com/single.jpg" } ]
			}
		],
		"next": null
	}
}`

const profileResponse = `{
	"display_name": "Jane",
	"email": "j@x.com",
	"id": "u1",
	"country": "SE",
	"images": [ { "url": "http://img" } ]
}`

// --- Helpers ---

func ptr(s string) *string { return &s }

func compareOptional(t *testing.T, field string, got, want *string) {
	t.Helper()

	switch {
	case got == nil && want == nil:
	case got == nil || want == nil:
		t.Errorf("%s: got %v, want %v", field, deref(got), deref(want))
	case *got != *want:
		t.Errorf("%s: got %q, want %q", field, *got, *want)
	}
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}

func compareAlbums(t *testing.T, got, want []domain.Album) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("albums: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i].Name {
			t.Errorf("[%d] Name: got %q, want %q", i, got[i].Name, want[i].Name)
		}
		if got[i].TotalTracks != want[i].TotalTracks {
			t.Errorf("[%d] TotalTracks: got %d, want %d", i, got[i].TotalTracks, want[i].TotalTracks)
		}
		compareOptional(t, "Artist", got[i].Artist, want[i].Artist)
		compareOptional(t, "ImageURL", got[i].ImageURL, want[i].ImageURL)
		compareOptional(t, "SpotifyURL", got[i].SpotifyURL, want[i].SpotifyURL)
	}
}

// fixtureServer serves body for path and fails the test on any other path.
func fixtureServer(t *testing.T, path, body string) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != path {
			t.Errorf("expected URL path %s, got %s", path, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

// --- Tests ---

func TestGetTopArtist(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/me/top/artists" {
			t.Errorf("expected URL path /me/top/artists, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "1" {
			t.Errorf("expected limit=1, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer user-token" {
			t.Errorf("expected bearer token, got %q", got)
		}
		w.Write([]byte(topArtistsResponse))
	}))
	defer ts.Close()

	client := spotify.NewUserClient(context.Background(), "Bearer user-token", ts.URL)

	artist, err := client.GetTopArtist(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if artist.ID != "4Z8W4fKeB5YxbusRsdQVPb" || artist.Name != "Radiohead" {
		t.Errorf("artist: got %+v", artist)
	}
	compareOptional(t, "Genre", artist.Genre, ptr("art rock"))
	compareOptional(t, "ImageURL", artist.ImageURL, ptr("http://img.com/radiohead.jpg"))
}

func TestGetArtistTopTrack(t *testing.T) {
	tests := []struct {
		name      string
		artistID  string
		response  string
		wantTrack domain.Track
		wantErr   error
	}{
		{
			name:     "first track, first album image",
			artistID: "4Z8W4fKeB5YxbusRsdQVPb",
			response: topTracksResponse,
			wantTrack: domain.Track{
				Name:     "Creep",
				Artist:   ptr("Radiohead"),
				ImageURL: ptr("A"),
			},
		},
		{
			name:     "no tracks",
			artistID: "4Z8W4fKeB5YxbusRsdQVPb",
			response: `{"tracks": []}`,
			wantErr:  ports.ErrEmptyList,
		},
		{
			name:     "tracks is not a list",
			artistID: "4Z8W4fKeB5YxbusRsdQVPb",
			response: `{"tracks": {"items": []}}`,
			wantErr:  ports.ErrShapeMismatch,
		},
		{
			name:     "empty artist id",
			artistID: "  ",
			wantErr:  domain.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := fixtureServer(t, "/artists/"+tt.artistID+"/top-tracks", tt.response)
			client := spotify.NewClient(ts.Client(), ts.URL)

			track, err := client.GetArtistTopTrack(context.Background(), tt.artistID)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if track.Name != tt.wantTrack.Name {
				t.Errorf("Name: got %q, want %q", track.Name, tt.wantTrack.Name)
			}
			compareOptional(t, "Artist", track.Artist, tt.wantTrack.Artist)
			compareOptional(t, "ImageURL", track.ImageURL, tt.wantTrack.ImageURL)
		})
	}
}

func TestGetAlbumsByArtist(t *testing.T) {
	ts := fixtureServer(t, "/artists/radiohead/albums", artistAlbumsResponse)
	client := spotify.NewClient(ts.Client(), ts.URL)

	albums, err := client.GetAlbumsByArtist(context.Background(), "radiohead")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	compareAlbums(t, albums, []domain.Album{
		{
			Name:        "OK Computer",
			Artist:      ptr("Radiohead"),
			ImageURL:    ptr("http://img.com/okc.jpg"),
			SpotifyURL:  ptr("https://open.spotify.com/album/okc"),
			TotalTracks: 12,
		},
		{
			Name:        "Kid A",
			Artist:      ptr("Radiohead"),
			ImageURL:    ptr("http://img.com/kida.jpg"),
			SpotifyURL:  nil,
			TotalTracks: 10,
		},
	})
}

func TestGetNewReleases(t *testing.T) {
	ts := fixtureServer(t, "/browse/new-releases", newReleasesResponse)
	client := spotify.NewClient(ts.Client(), ts.URL)

	first, err := client.GetNewReleases(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	compareAlbums(t, first, []domain.Album{
		{
			Name:        "Fresh",
			Artist:      ptr("Newcomer"),
			ImageURL:    ptr("http://img.com/fresh.jpg"),
			SpotifyURL:  ptr("https://open.spotify.com/album/fresh"),
			TotalTracks: 8,
		},
		{
			Name:        "Single",
			Artist:      ptr("Solo"),
			ImageURL:    ptr("http://img.com/single.jpg"),
			TotalTracks: 1,
		},
	})

	second, err := client.GetNewReleases(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ:\n%+v\n%+v", first, second)
	}
}

func TestGetNewReleases_StrictDecorations(t *testing.T) {
	response := `{"albums": {"items": [
		{"name": "Bare", "total_tracks": 1, "artists": [], "images": []}
	]}}`

	ts := fixtureServer(t, "/browse/new-releases", response)

	albums, err := spotify.NewClient(ts.Client(), ts.URL).GetNewReleases(context.Background())
	if err != nil {
		t.Fatalf("graceful: unexpected error: %v", err)
	}
	if len(albums) != 1 || albums[0].Artist != nil || albums[0].ImageURL != nil {
		t.Errorf("graceful: expected absent decorations, got %+v", albums)
	}

	strict := spotify.NewClient(ts.Client(), ts.URL, spotify.WithStrictDecorations(true))
	if _, err := strict.GetNewReleases(context.Background()); !errors.Is(err, ports.ErrEmptyList) {
		t.Errorf("strict: expected ErrEmptyList, got %v", err)
	}
}

func TestGetUserProfile(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/me" {
			t.Errorf("expected URL path /me, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer caller-token" {
			t.Errorf("expected caller token, got %q", got)
		}
		w.Write([]byte(profileResponse))
	}))
	defer ts.Close()

	// The caller's token replaces the client's own credentials.
	client := spotify.NewUserClient(context.Background(), "other-token", ts.URL)

	user, err := client.GetUserProfile(context.Background(), "Bearer caller-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.User{DisplayName: "Jane", Email: "j@x.com", ID: "u1", ImageURL: ptr("http://img")}
	if !reflect.DeepEqual(user, want) {
		t.Errorf("user: got %+v, want %+v", user, want)
	}

	for _, token := range []string{"", "Bearer", "Bearer ", "bearer", "  BEARER  "} {
		if _, err := client.GetUserProfile(context.Background(), token); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("token %q: expected ErrInvalidArgument, got %v", token, err)
		}
	}
}

func TestUpstreamStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"unauthorized", http.StatusUnauthorized},
		{"not found", http.StatusNotFound},
		{"rate limited", http.StatusTooManyRequests},
		{"server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(`{"error": {"status": 0, "message": "nope"}}`))
			}))
			defer ts.Close()

			client := spotify.NewClient(ts.Client(), ts.URL)
			_, err := client.GetNewReleases(context.Background())

			var statusErr *ports.StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("expected *ports.StatusError, got %v", err)
			}
			if statusErr.StatusCode != tt.statusCode {
				t.Errorf("StatusCode: got %d, want %d", statusErr.StatusCode, tt.statusCode)
			}
			if !errors.Is(err, ports.ErrUpstreamStatus) {
				t.Errorf("expected ErrUpstreamStatus in chain")
			}
			if calls != 1 {
				t.Errorf("expected exactly one request, got %d", calls)
			}
		})
	}
}

func TestTransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := ts.URL
	ts.Close()

	client := spotify.NewClient(nil, baseURL)
	_, err := client.GetTopArtist(context.Background())
	if !errors.Is(err, ports.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestCanceledContext(t *testing.T) {
	ts := fixtureServer(t, "/browse/new-releases", newReleasesResponse)
	client := spotify.NewClient(ts.Client(), ts.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetNewReleases(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMalformedBody(t *testing.T) {
	ts := fixtureServer(t, "/me/top/artists", `<html>oops</html>`)
	client := spotify.NewClient(ts.Client(), ts.URL)

	_, err := client.GetTopArtist(context.Background())
	if !errors.Is(err, ports.ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestWithTimeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	client := spotify.NewClient(nil, ts.URL, spotify.WithTimeout(50*time.Millisecond))
	_, err := client.GetNewReleases(context.Background())
	if !errors.Is(err, ports.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	if http.DefaultClient.Timeout != 0 {
		t.Errorf("WithTimeout modified http.DefaultClient")
	}
}
