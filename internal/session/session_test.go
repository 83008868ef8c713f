package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillboard/quill/internal/api"
	"github.com/quillboard/quill/internal/apiclient"
	"github.com/quillboard/quill/internal/credstore"
	"github.com/quillboard/quill/internal/domain"
	internal_errors "github.com/quillboard/quill/internal/errors"
)

// fakeBackend serves /login, /register and /profile the way the forum
// backend does.
type fakeBackend struct {
	token         string
	user          domain.User
	rejectLogin   bool
	rejectProfile bool
	profileAuth   []string // Authorization headers seen on /profile
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		if f.rejectLogin {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(api.TokenResponse{Token: f.token})
	})
	mux.HandleFunc("/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(api.TokenResponse{Token: f.token})
	})
	mux.HandleFunc("/profile", func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		f.profileAuth = append(f.profileAuth, auth)
		if f.rejectProfile {
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
		if auth != "Bearer "+f.token {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(f.user)
	})
	return mux
}

func newTestSession(t *testing.T, backend *fakeBackend) (*Session, *credstore.Store) {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	creds, err := credstore.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { creds.Close() })

	client := apiclient.New(srv.URL, 2*time.Second)
	return New(client, creds), creds
}

func TestLoginSuccess(t *testing.T) {
	backend := &fakeBackend{
		token: "tok-1",
		user:  domain.User{Id: 1, Username: "alice", Email: "a@b.com", Role: "user"},
	}
	sess, creds := newTestSession(t, backend)

	ok, err := sess.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, sess.Authenticated())
	assert.Equal(t, "tok-1", sess.Token())
	require.NotNil(t, sess.User())
	assert.Equal(t, "alice", sess.User().Username)

	// credential persisted
	persisted, err := creds.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", persisted)

	// profile fetch used the fresh credential
	require.NotEmpty(t, backend.profileAuth)
	assert.Equal(t, "Bearer tok-1", backend.profileAuth[0])
}

func TestLoginRejected(t *testing.T) {
	backend := &fakeBackend{token: "tok-1", rejectLogin: true}
	sess, creds := newTestSession(t, backend)

	ok, err := sess.Login(context.Background(), "a@b.com", "bad")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, internal_errors.StatusCode(err))

	assert.False(t, sess.Authenticated())
	assert.Empty(t, sess.Token())

	persisted, err := creds.Token()
	require.NoError(t, err)
	assert.Empty(t, persisted, "rejected login must leave durable storage unchanged")
}

func TestLoginProfileFetchFails(t *testing.T) {
	backend := &fakeBackend{token: "tok-1", rejectProfile: true}
	sess, creds := newTestSession(t, backend)

	ok, err := sess.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	assert.True(t, ok, "the backend did issue a credential")

	// the failed profile fetch tears the session down again
	assert.False(t, sess.Authenticated())
	assert.Nil(t, sess.User())
	assert.Empty(t, sess.Token())

	persisted, err := creds.Token()
	require.NoError(t, err)
	assert.Empty(t, persisted, "teardown must purge the persisted credential")
}

func TestRegisterBehavesLikeLogin(t *testing.T) {
	backend := &fakeBackend{
		token: "tok-reg",
		user:  domain.User{Id: 2, Username: "bob", Role: "user"},
	}
	sess, _ := newTestSession(t, backend)

	ok, err := sess.Register(context.Background(), "bob", "b@c.com", "secret6")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, sess.Authenticated())
	assert.Equal(t, "bob", sess.User().Username)
}

func TestLogoutClearsEverything(t *testing.T) {
	backend := &fakeBackend{token: "tok-1", user: domain.User{Id: 1}}
	sess, creds := newTestSession(t, backend)

	ok, err := sess.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	require.True(t, ok)

	sess.Logout()

	assert.False(t, sess.Authenticated())
	assert.Empty(t, sess.Token())
	assert.Nil(t, sess.User())
	persisted, err := creds.Token()
	require.NoError(t, err)
	assert.Empty(t, persisted)

	// idempotent
	sess.Logout()
	assert.False(t, sess.Authenticated())
}

func TestInitializeRestoresPersistedCredential(t *testing.T) {
	backend := &fakeBackend{token: "tok-old", user: domain.User{Id: 1, Username: "alice"}}
	sess, creds := newTestSession(t, backend)

	require.NoError(t, creds.Save("tok-old"))
	sess.Initialize(context.Background())

	assert.True(t, sess.Authenticated())
	assert.Equal(t, "tok-old", sess.Token())
	require.NotNil(t, sess.User())
	assert.Equal(t, "alice", sess.User().Username)
}

func TestInitializeWithInvalidCredentialLogsOut(t *testing.T) {
	backend := &fakeBackend{token: "tok-valid", user: domain.User{Id: 1}}
	sess, creds := newTestSession(t, backend)

	require.NoError(t, creds.Save("tok-expired"))
	sess.Initialize(context.Background())

	assert.False(t, sess.Authenticated())
	assert.Empty(t, sess.Token())
	persisted, err := creds.Token()
	require.NoError(t, err)
	assert.Empty(t, persisted, "invalid restored credential must be purged")
}

func TestInitializeWithEmptyStoreStaysLoggedOut(t *testing.T) {
	backend := &fakeBackend{token: "tok-1"}
	sess, _ := newTestSession(t, backend)

	sess.Initialize(context.Background())

	assert.False(t, sess.Authenticated())
	assert.Empty(t, backend.profileAuth, "no profile call without a credential")
}
