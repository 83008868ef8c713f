package apiclient

import (
	"context"
	"fmt"

	"github.com/quillboard/quill/internal/api"
	"github.com/quillboard/quill/internal/domain"
)

// Admin endpoints. All of them require an admin credential; a non-admin
// token simply gets the server's 403 back as a StatusError.

func (c *Client) AdminUsers(ctx context.Context, token string) ([]domain.User, error) {
	var users []domain.User
	if err := c.doJSON(ctx, "GET", "/admin/users", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) AdminUser(ctx context.Context, token string, id int64) (domain.User, error) {
	var user domain.User
	err := c.doJSON(ctx, "GET", fmt.Sprintf("/admin/users/%d", id), token, nil, &user)
	return user, err
}

func (c *Client) AdminUpdateUser(ctx context.Context, token string, id int64, req api.UpdateUserRequest) (domain.User, error) {
	var user domain.User
	err := c.doJSON(ctx, "PUT", fmt.Sprintf("/admin/users/%d", id), token, req, &user)
	return user, err
}

func (c *Client) AdminDeleteUser(ctx context.Context, token string, id int64) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/admin/users/%d", id), token, nil, nil)
}

func (c *Client) AdminPosts(ctx context.Context, token string) ([]domain.Post, error) {
	var posts []domain.Post
	if err := c.doJSON(ctx, "GET", "/admin/posts", token, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) AdminComments(ctx context.Context, token string) ([]domain.Comment, error) {
	var comments []domain.Comment
	if err := c.doJSON(ctx, "GET", "/admin/comments", token, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
