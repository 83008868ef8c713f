package apiclient

import (
	"context"

	"github.com/quillboard/quill/internal/api"
	"github.com/quillboard/quill/internal/domain"
)

// Profile fetches the record for whoever the token belongs to. The backend
// answering 401 here is how the client learns a restored credential is dead.
func (c *Client) Profile(ctx context.Context, token string) (domain.User, error) {
	var user domain.User
	err := c.doJSON(ctx, "GET", "/profile", token, nil, &user)
	return user, err
}

func (c *Client) ProfileStats(ctx context.Context, token string) (api.StatsResponse, error) {
	var stats api.StatsResponse
	err := c.doJSON(ctx, "GET", "/profile/stats", token, nil, &stats)
	return stats, err
}

func (c *Client) ChangePassword(ctx context.Context, token, current, newPassword string) error {
	req := api.ChangePasswordRequest{CurrentPassword: current, NewPassword: newPassword}
	return c.doJSON(ctx, "PUT", "/profile/password", token, req, nil)
}
