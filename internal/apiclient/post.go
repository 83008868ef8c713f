package apiclient

import (
	"context"
	"fmt"

	"github.com/quillboard/quill/internal/api"
	"github.com/quillboard/quill/internal/domain"
)

// Posts lists every post, newest first (server ordering). Whether the
// listing needs a credential is up to the server; we attach one when given.
func (c *Client) Posts(ctx context.Context, token string) ([]domain.Post, error) {
	var posts []domain.Post
	if err := c.doJSON(ctx, "GET", "/posts", token, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) Post(ctx context.Context, token string, id int64) (domain.Post, error) {
	var post domain.Post
	err := c.doJSON(ctx, "GET", fmt.Sprintf("/posts/%d", id), token, nil, &post)
	return post, err
}

func (c *Client) CreatePost(ctx context.Context, token string, req api.CreatePostRequest) (domain.Post, error) {
	var post domain.Post
	err := c.doJSON(ctx, "POST", "/posts", token, req, &post)
	return post, err
}

func (c *Client) UpdatePost(ctx context.Context, token string, id int64, req api.UpdatePostRequest) (domain.Post, error) {
	var post domain.Post
	err := c.doJSON(ctx, "PUT", fmt.Sprintf("/posts/%d", id), token, req, &post)
	return post, err
}

func (c *Client) DeletePost(ctx context.Context, token string, id int64) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/posts/%d", id), token, nil, nil)
}
