package domain

// User holds the current user's profile data.
type User struct {
	DisplayName string  `json:"displayName"`
	Email       string  `json:"email"`
	ID          string  `json:"id"`
	ImageURL    *string `json:"imageUrl"`
}
