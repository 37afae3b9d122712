package domain

// Track represents an artist's top track, flattened for display.
type Track struct {
	Name     string  `json:"name"`
	Artist   *string `json:"artist"`   // first performer
	ImageURL *string `json:"imageUrl"` // first image of the parent album
}
