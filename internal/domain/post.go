package domain

import (
	"encoding/json"
	"time"
)

// Post is a single entry in the blog feed. Only Id is load-bearing on the
// client; the rest is displayed as-is.
type Post struct {
	Id            int64     `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	AuthorId      int64     `json:"author_id"`
	Author        *User     `json:"author,omitempty"`
	CommentsCount int       `json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Extra holds server fields the client has no declared slot for.
	Extra map[string]json.RawMessage `json:"-"`
}

var postKnownFields = []string{
	"id", "title", "content", "author_id", "author",
	"comments_count", "created_at", "updated_at",
}

func (p *Post) UnmarshalJSON(data []byte) error {
	type alias Post
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*p = Post(a)
	p.Extra = extraFields(data, postKnownFields...)
	return nil
}

func (p Post) MarshalJSON() ([]byte, error) {
	type alias Post
	base, err := json.Marshal(alias(p))
	if err != nil {
		return nil, err
	}
	return mergeExtra(base, p.Extra)
}
