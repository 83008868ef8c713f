package apiclient

import (
	"context"
	"fmt"

	"github.com/quillboard/quill/internal/api"
	"github.com/quillboard/quill/internal/domain"
)

func (c *Client) Comments(ctx context.Context, token string, postId int64) ([]domain.Comment, error) {
	var comments []domain.Comment
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/posts/%d/comments", postId), token, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) CreateComment(ctx context.Context, token string, postId int64, req api.CreateCommentRequest) (domain.Comment, error) {
	var comment domain.Comment
	err := c.doJSON(ctx, "POST", fmt.Sprintf("/posts/%d/comments", postId), token, req, &comment)
	return comment, err
}

func (c *Client) UpdateComment(ctx context.Context, token string, id int64, req api.UpdateCommentRequest) (domain.Comment, error) {
	var comment domain.Comment
	err := c.doJSON(ctx, "PUT", fmt.Sprintf("/comments/%d", id), token, req, &comment)
	return comment, err
}

func (c *Client) DeleteComment(ctx context.Context, token string, id int64) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/comments/%d", id), token, nil, nil)
}
