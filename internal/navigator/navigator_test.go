package navigator

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
	"github.com/quillboard/quill/internal/session"
)

// sessionWithRole returns a logged-out session for role "", otherwise one
// authenticated against a fake backend as a user with that role.
func sessionWithRole(t *testing.T, role string) *session.Session {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.TokenResponse{Token: "tok"})
	})
	mux.HandleFunc("/profile", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(domain.User{Id: 1, Username: "u", Role: role})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	creds, err := credstore.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { creds.Close() })

	sess := session.New(apiclient.New(srv.URL, 2*time.Second), creds)
	if role != "" {
		ok, err := sess.Login(context.Background(), "u@example.com", "secret")
		require.NoError(t, err)
		require.True(t, ok)
	}
	return sess
}

func TestGuard(t *testing.T) {
	tests := []struct {
		name         string
		role         string // "" = unauthenticated
		path         string
		wantRedirect string
		wantRoute    string
	}{
		{"public home always allowed", "", "/", "", "Home"},
		{"login reachable while logged out", "", "/login", "", "Login"},
		{"post list is public", "", "/posts", "", "Posts"},
		{"post detail is public", "", "/posts/42", "", "PostDetail"},
		{"profile gated", "", "/profile", LoginPath, "Profile"},
		{"create post gated", "", "/posts/create", LoginPath, "CreatePost"},
		{"chat gated", "", "/chat", LoginPath, "Chat"},
		{"admin gated for anonymous", "", "/admin", LoginPath, "AdminDashboard"},
		{"profile allowed for user", "user", "/profile", "", "Profile"},
		{"create post allowed for user", "user", "/posts/create", "", "CreatePost"},
		{"admin denied for plain user", "user", "/admin", LoginPath, "AdminDashboard"},
		{"admin users denied for plain user", "user", "/admin/users", LoginPath, "AdminUsers"},
		{"admin allowed for admin", "admin", "/admin", "", "AdminDashboard"},
		{"admin comments allowed for admin", "admin", "/admin/comments", "", "AdminComments"},
		{"profile allowed for admin", "admin", "/profile", "", "Profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := New(sessionWithRole(t, tt.role))
			res := nav.Resolve(tt.path)

			require.True(t, res.Matched)
			assert.Equal(t, tt.wantRoute, res.Route.Name)
			assert.Equal(t, tt.wantRedirect, res.Redirect)
			assert.Equal(t, tt.wantRedirect == "", res.Allowed())
		})
	}
}

func TestGuardAfterLogout(t *testing.T) {
	sess := sessionWithRole(t, "admin")
	nav := New(sess)

	require.True(t, nav.Resolve("/admin").Allowed())

	sess.Logout()
	res := nav.Resolve("/admin")
	assert.Equal(t, LoginPath, res.Redirect, "guard re-evaluates on every navigation")
}

func TestResolveUnknownPath(t *testing.T) {
	nav := New(sessionWithRole(t, ""))

	res := nav.Resolve("/no/such/view")
	assert.False(t, res.Matched)
	assert.False(t, res.Allowed())
}

func TestPostDetailParams(t *testing.T) {
	nav := New(sessionWithRole(t, ""))

	res := nav.Resolve("/posts/42")
	require.True(t, res.Matched)
	assert.Equal(t, "42", res.Params["id"])

	res = nav.Resolve("/posts/create")
	assert.Equal(t, "CreatePost", res.Route.Name, "literal route wins over {id}")
}
