package domain

// Artist represents the user's favourite artist.
type Artist struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Genre    *string `json:"genre"` // first of the artist's genre tags
	ImageURL *string `json:"imageUrl"`
}
