package domain

import "time"

const RoleAdmin = "admin"

// User is the profile record the backend returns for the authenticated user
// and for post/comment authors.
type User struct {
	Id        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
