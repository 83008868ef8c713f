package domain

import "time"

type ChatMessage struct {
	Id        int64     `json:"id"`
	Content   string    `json:"content"`
	UserId    int64     `json:"user_id"`
	Username  string    `json:"username"`
	ReplyToId *int64    `json:"reply_to_id,omitempty"`
	ReplyTo   *ReplyTo  `json:"reply_to,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ReplyTo struct {
	Id       int64  `json:"id"`
	Content  string `json:"content"`
	Username string `json:"username"`
}
