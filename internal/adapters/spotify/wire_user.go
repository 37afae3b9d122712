package spotify

import (
	"context"
	"fmt"

	"github.com/ewilliams-labs/dashboard/internal/core/domain"
)

// GetUserProfile returns the profile of the user owning token. token is the
// caller's Authorization value, with or without the "Bearer " scheme, and is
// sent instead of whatever credentials the client carries.
func (c *Client) GetUserProfile(ctx context.Context, token string) (domain.User, error) {
	if bearerToken(token) == "" {
		return domain.User{}, fmt.Errorf("spotify adapter: %w: token is required", domain.ErrInvalidArgument)
	}

	root, err := c.get(ctx, c.withToken(token), "/me", nil)
	if err != nil {
		return domain.User{}, fmt.Errorf("spotify adapter: user profile: %w", err)
	}

	user, err := c.mapper.mapUser(root)
	if err != nil {
		return domain.User{}, fmt.Errorf("spotify adapter: user profile: %w", err)
	}
	return user, nil
}
