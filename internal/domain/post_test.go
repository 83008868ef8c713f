package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostKeepsUnknownServerFields(t *testing.T) {
	raw := `{"id":7,"title":"hello","content":"body","author_id":3,
		"created_at":"2025-01-02T03:04:05Z","updated_at":"2025-01-02T03:04:05Z",
		"likes":12,"tags":["go","forum"]}`

	var p Post
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, int64(7), p.Id)
	assert.Equal(t, "hello", p.Title)
	assert.Contains(t, p.Extra, "likes")
	assert.Contains(t, p.Extra, "tags")
	assert.NotContains(t, p.Extra, "id")

	out, err := json.Marshal(p)
	require.NoError(t, err)
	var roundTrip map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &roundTrip))
	assert.Equal(t, json.RawMessage("12"), roundTrip["likes"])
}

func TestCommentNoExtraFields(t *testing.T) {
	raw := `{"id":1,"post_id":42,"content":"hi","author_id":2,
		"created_at":"2025-01-02T03:04:05Z","updated_at":"2025-01-02T03:04:05Z"}`

	var c Comment
	require.NoError(t, json.Unmarshal([]byte(raw), &c))
	assert.Equal(t, int64(42), c.PostId)
	assert.Nil(t, c.Extra)
}

func TestUserIsAdmin(t *testing.T) {
	assert.False(t, (*User)(nil).IsAdmin())
	assert.False(t, (&User{Role: "user"}).IsAdmin())
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
}
