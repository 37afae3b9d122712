package spotify

// The wire types hold the scalar fields that map one-to-one from a catalog
// item. Nested decorations (images, artists, genres, links) are read from the
// raw node by the extractors instead.

// spotifyArtist is an item of /me/top/artists.
type spotifyArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// spotifyTrack is an item of /artists/{id}/top-tracks.
type spotifyTrack struct {
	Name string `json:"name"`
}

// spotifyAlbum is an item of /artists/{id}/albums and /browse/new-releases.
type spotifyAlbum struct {
	Name        string `json:"name"`
	TotalTracks int    `json:"total_tracks"`
}

// spotifyUser is the /me profile. Unknown fields are ignored.
type spotifyUser struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	ID          string `json:"id"`
}
