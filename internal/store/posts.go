package store

import (
	"context"

	"github.com/quillboard/quill/internal/api"
	"github.com/quillboard/quill/internal/apiclient"
	"github.com/quillboard/quill/internal/domain"
	"github.com/quillboard/quill/internal/session"
)

// Posts proxies CRUD over the post collection. Reads swallow failures (the
// error lands in Err() and the state is reset); writes additionally return
// the failure so the calling view can react to it.
type Posts struct {
	collection[domain.Post]

	client  *apiclient.Client
	session *session.Session
}

func NewPosts(client *apiclient.Client, sess *session.Session) *Posts {
	return &Posts{client: client, session: sess}
}

// FetchAll replaces the whole collection with the server's listing. A
// malformed or absent payload leaves an empty collection and a recorded
// error, never a panic or a returned failure.
func (p *Posts) FetchAll(ctx context.Context) {
	p.run(false, func() error {
		posts, err := p.client.Posts(ctx, p.session.Token())
		if err != nil {
			p.replaceAll(nil)
			return err
		}
		p.replaceAll(posts)
		return nil
	})
}

// FetchOne loads a single post into the current slot, clearing it on failure.
func (p *Posts) FetchOne(ctx context.Context, id int64) {
	p.run(false, func() error {
		post, err := p.client.Post(ctx, p.session.Token(), id)
		if err != nil {
			p.setCurrent(nil)
			return err
		}
		p.setCurrent(&post)
		return nil
	})
}

// Create posts a new record and prepends the server's echo to the
// collection, newest first.
func (p *Posts) Create(ctx context.Context, title, content string) (domain.Post, error) {
	var created domain.Post
	err := p.run(true, func() error {
		post, err := p.client.CreatePost(ctx, p.session.Token(), api.CreatePostRequest{Title: title, Content: content})
		if err != nil {
			return err
		}
		created = post
		p.prepend(post)
		return nil
	})
	return created, err
}

// Update swaps the matching entry for the server's version. When nothing
// matches the collection stays untouched; there is no insert-on-miss.
func (p *Posts) Update(ctx context.Context, id int64, title, content string) (domain.Post, error) {
	var updated domain.Post
	err := p.run(true, func() error {
		post, err := p.client.UpdatePost(ctx, p.session.Token(), id, api.UpdatePostRequest{Title: title, Content: content})
		if err != nil {
			return err
		}
		updated = post
		p.replaceWhere(func(e domain.Post) bool { return e.Id == id }, post)
		return nil
	})
	return updated, err
}

// Delete removes the matching entry once the server confirms. The current
// slot is cleared too when it held the deleted post.
func (p *Posts) Delete(ctx context.Context, id int64) error {
	return p.run(true, func() error {
		if err := p.client.DeletePost(ctx, p.session.Token(), id); err != nil {
			return err
		}
		p.removeWhere(func(e domain.Post) bool { return e.Id == id })
		return nil
	})
}
