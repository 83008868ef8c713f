package store

import (
	"context"

	"github.com/quillboard/quill/internal/api"
	"github.com/quillboard/quill/internal/apiclient"
	"github.com/quillboard/quill/internal/domain"
	"github.com/quillboard/quill/internal/session"
)

// Admin backs the admin dashboard: site-wide user, post and comment
// collections. Authorization is the server's business; a non-admin
// credential just surfaces the 403 in the usual error slot.
type Admin struct {
	users    collection[domain.User]
	posts    collection[domain.Post]
	comments collection[domain.Comment]

	client  *apiclient.Client
	session *session.Session
}

func NewAdmin(client *apiclient.Client, sess *session.Session) *Admin {
	return &Admin{client: client, session: sess}
}

func (a *Admin) Users() []domain.User { return a.users.Items() }

func (a *Admin) CurrentUser() *domain.User { return a.users.Current() }

func (a *Admin) Posts() []domain.Post { return a.posts.Items() }

func (a *Admin) Comments() []domain.Comment { return a.comments.Items() }

func (a *Admin) Loading() bool {
	return a.users.Loading() || a.posts.Loading() || a.comments.Loading()
}

func (a *Admin) Err() error {
	if err := a.users.Err(); err != nil {
		return err
	}
	if err := a.posts.Err(); err != nil {
		return err
	}
	return a.comments.Err()
}

func (a *Admin) FetchUsers(ctx context.Context) {
	a.users.run(false, func() error {
		users, err := a.client.AdminUsers(ctx, a.session.Token())
		if err != nil {
			a.users.replaceAll(nil)
			return err
		}
		a.users.replaceAll(users)
		return nil
	})
}

func (a *Admin) FetchUser(ctx context.Context, id int64) {
	a.users.run(false, func() error {
		user, err := a.client.AdminUser(ctx, a.session.Token(), id)
		if err != nil {
			a.users.setCurrent(nil)
			return err
		}
		a.users.setCurrent(&user)
		return nil
	})
}

func (a *Admin) UpdateUser(ctx context.Context, id int64, username, email, role string) (domain.User, error) {
	var updated domain.User
	err := a.users.run(true, func() error {
		req := api.UpdateUserRequest{Username: username, Email: email, Role: role}
		user, err := a.client.AdminUpdateUser(ctx, a.session.Token(), id, req)
		if err != nil {
			return err
		}
		updated = user
		a.users.replaceWhere(func(e domain.User) bool { return e.Id == id }, user)
		return nil
	})
	return updated, err
}

func (a *Admin) DeleteUser(ctx context.Context, id int64) error {
	return a.users.run(true, func() error {
		if err := a.client.AdminDeleteUser(ctx, a.session.Token(), id); err != nil {
			return err
		}
		a.users.removeWhere(func(e domain.User) bool { return e.Id == id })
		return nil
	})
}

func (a *Admin) FetchPosts(ctx context.Context) {
	a.posts.run(false, func() error {
		posts, err := a.client.AdminPosts(ctx, a.session.Token())
		if err != nil {
			a.posts.replaceAll(nil)
			return err
		}
		a.posts.replaceAll(posts)
		return nil
	})
}

func (a *Admin) FetchComments(ctx context.Context) {
	a.comments.run(false, func() error {
		comments, err := a.client.AdminComments(ctx, a.session.Token())
		if err != nil {
			a.comments.replaceAll(nil)
			return err
		}
		a.comments.replaceAll(comments)
		return nil
	})
}
