package domain

// Dashboard aggregates every record the dashboard page renders.
type Dashboard struct {
	User           User    `json:"user"`
	TopArtist      Artist  `json:"topArtist"`
	ArtistTopTrack Track   `json:"artistTopTrack"`
	Albums         []Album `json:"albums"`
	NewReleases    []Album `json:"newReleases"`
}

// Optional returns a pointer to value when ok, nil otherwise.
// Record fields use nil for data the catalog did not provide.
func Optional(value string, ok bool) *string {
	if !ok {
		return nil
	}
	return &value
}
