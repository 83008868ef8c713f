package store

import (
	"context"

	"github.com/quillboard/quill/internal/api"
	"github.com/quillboard/quill/internal/apiclient"
	"github.com/quillboard/quill/internal/domain"
	"github.com/quillboard/quill/internal/session"
)

// Comments holds the comment collection for whichever post the caller last
// scoped a fetch to. The post relationship is never checked client-side.
type Comments struct {
	collection[domain.Comment]

	client  *apiclient.Client
	session *session.Session
}

func NewComments(client *apiclient.Client, sess *session.Session) *Comments {
	return &Comments{client: client, session: sess}
}

// FetchAll replaces the collection with the comments of the given post.
func (c *Comments) FetchAll(ctx context.Context, postId int64) {
	c.run(false, func() error {
		comments, err := c.client.Comments(ctx, c.session.Token(), postId)
		if err != nil {
			c.replaceAll(nil)
			return err
		}
		c.replaceAll(comments)
		return nil
	})
}

// Create adds a comment to the post and prepends the server's echo.
func (c *Comments) Create(ctx context.Context, postId int64, content string) (domain.Comment, error) {
	var created domain.Comment
	err := c.run(true, func() error {
		comment, err := c.client.CreateComment(ctx, c.session.Token(), postId, api.CreateCommentRequest{Content: content})
		if err != nil {
			return err
		}
		created = comment
		c.prepend(comment)
		return nil
	})
	return created, err
}

func (c *Comments) Update(ctx context.Context, id int64, content string) (domain.Comment, error) {
	var updated domain.Comment
	err := c.run(true, func() error {
		comment, err := c.client.UpdateComment(ctx, c.session.Token(), id, api.UpdateCommentRequest{Content: content})
		if err != nil {
			return err
		}
		updated = comment
		c.replaceWhere(func(e domain.Comment) bool { return e.Id == id }, comment)
		return nil
	})
	return updated, err
}

func (c *Comments) Delete(ctx context.Context, id int64) error {
	return c.run(true, func() error {
		if err := c.client.DeleteComment(ctx, c.session.Token(), id); err != nil {
			return err
		}
		c.removeWhere(func(e domain.Comment) bool { return e.Id == id })
		return nil
	})
}

// Clear drops the loaded comments, e.g. when the user leaves a post view.
func (c *Comments) Clear() {
	c.reset()
}
