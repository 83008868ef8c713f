package domain

import (
	"encoding/json"
	"time"
)

// Comment belongs to a Post through PostId. The client never checks that
// relationship; it only scopes fetches by the post id the caller supplies.
type Comment struct {
	Id        int64     `json:"id"`
	PostId    int64     `json:"post_id"`
	Content   string    `json:"content"`
	AuthorId  int64     `json:"author_id"`
	Author    *User     `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Extra map[string]json.RawMessage `json:"-"`
}

var commentKnownFields = []string{
	"id", "post_id", "content", "author_id", "author",
	"created_at", "updated_at",
}

func (c *Comment) UnmarshalJSON(data []byte) error {
	type alias Comment
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = Comment(a)
	c.Extra = extraFields(data, commentKnownFields...)
	return nil
}

func (c Comment) MarshalJSON() ([]byte, error) {
	type alias Comment
	base, err := json.Marshal(alias(c))
	if err != nil {
		return nil, err
	}
	return mergeExtra(base, c.Extra)
}
