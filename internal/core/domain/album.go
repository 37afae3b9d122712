package domain

// Album is used both for an artist's discography and for catalog new releases.
type Album struct {
	Name        string  `json:"name"`
	Artist      *string `json:"artist"`
	ImageURL    *string `json:"imageUrl"`
	SpotifyURL  *string `json:"spotifyUrl"`
	TotalTracks int     `json:"totalTracks"`
}
