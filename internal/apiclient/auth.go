package apiclient

import (
	"context"

	"github.com/quillboard/quill/internal/api"
)

// Login exchanges credentials for a bearer token. A 2xx without a token in
// the payload is returned as-is; the session decides what that means.
func (c *Client) Login(ctx context.Context, email, password string) (api.TokenResponse, error) {
	var out api.TokenResponse
	req := api.LoginRequest{Email: email, Password: password}
	err := c.doJSON(ctx, "POST", "/login", "", req, &out)
	return out, err
}

// Register creates an account. The backend is expected to answer like a
// login: with a usable token.
func (c *Client) Register(ctx context.Context, username, email, password string) (api.TokenResponse, error) {
	var out api.TokenResponse
	req := api.RegisterRequest{Username: username, Email: email, Password: password}
	err := c.doJSON(ctx, "POST", "/register", "", req, &out)
	return out, err
}
