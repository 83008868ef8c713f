package session

import (
	"context"
	"sync"

	"github.com/quillboard/quill/internal/api"
	"github.com/quillboard/quill/internal/apiclient"
	"github.com/quillboard/quill/internal/credstore"
	"github.com/quillboard/quill/internal/domain"
	"github.com/quillboard/quill/internal/logger"
)

// Session owns the bearer credential and the authenticated user's profile.
// It is constructed explicitly at startup and handed to whoever needs it;
// there is no package-level instance. The credential is read at call time by
// every component that issues authenticated requests, so nothing caches a
// stale copy.
//
// Authenticated is true only while the credential is present and the last
// server call that used it accepted it. The client never inspects the
// credential itself.
type Session struct {
	mu            sync.Mutex
	client        *apiclient.Client
	creds         *credstore.Store
	token         string
	user          *domain.User
	authenticated bool
}

func New(client *apiclient.Client, creds *credstore.Store) *Session {
	return &Session{client: client, creds: creds}
}

// Token returns the current credential, "" when logged out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns a copy of the profile, nil when none was fetched.
func (s *Session) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Login authenticates against the backend. On success the credential is held
// in memory, persisted, and the profile is fetched. A 2xx response without a
// token reports false without touching any state. Transport and server
// failures propagate to the caller so the view can display them.
func (s *Session) Login(ctx context.Context, email, password string) (bool, error) {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return false, err
	}
	if resp.Token == "" {
		return false, nil
	}

	s.adopt(resp.Token)
	s.FetchProfile(ctx)
	return true, nil
}

// Register creates an account; same contract as Login.
func (s *Session) Register(ctx context.Context, username, email, password string) (bool, error) {
	resp, err := s.client.Register(ctx, username, email, password)
	if err != nil {
		return false, err
	}
	if resp.Token == "" {
		return false, nil
	}

	s.adopt(resp.Token)
	s.FetchProfile(ctx)
	return true, nil
}

// FetchProfile validates the current credential by loading the profile. Any
// failure means the session is not worth keeping: full teardown, no error
// surfaced beyond the state change.
func (s *Session) FetchProfile(ctx context.Context) {
	user, err := s.client.Profile(ctx, s.Token())
	if err != nil {
		logger.Log.Warn("profile fetch failed, dropping session", "error", err)
		s.Logout()
		return
	}

	s.mu.Lock()
	s.user = &user
	s.authenticated = true
	s.mu.Unlock()
}

// Logout clears the in-memory session and the persisted credential. Safe to
// call when already logged out.
func (s *Session) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.authenticated = false
	s.mu.Unlock()

	if err := s.creds.Clear(); err != nil {
		logger.Log.Warn("failed to clear persisted credential", "error", err)
	}
}

// Initialize restores a previously persisted credential, if any, and
// validates it with a profile fetch. An empty store just leaves the session
// logged out.
func (s *Session) Initialize(ctx context.Context) {
	token, err := s.creds.Token()
	if err != nil {
		logger.Log.Warn("failed to read persisted credential", "error", err)
		return
	}
	if token == "" {
		return
	}

	s.mu.Lock()
	s.token = token
	s.authenticated = true
	s.mu.Unlock()

	s.FetchProfile(ctx)
}

// FetchStats loads the authenticated user's post/comment counters.
func (s *Session) FetchStats(ctx context.Context) (api.StatsResponse, error) {
	return s.client.ProfileStats(ctx, s.Token())
}

// ChangePassword rotates the account password. The credential stays as-is;
// the backend keeps issued tokens valid.
func (s *Session) ChangePassword(ctx context.Context, current, newPassword string) error {
	return s.client.ChangePassword(ctx, s.Token(), current, newPassword)
}

// adopt installs a fresh credential in memory and in the durable store.
func (s *Session) adopt(token string) {
	s.mu.Lock()
	s.token = token
	s.authenticated = true
	s.mu.Unlock()

	if err := s.creds.Save(token); err != nil {
		logger.Log.Warn("failed to persist credential", "error", err)
	}
}
