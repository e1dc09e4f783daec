package domain

import "time"

// User is a staff account allowed to publish news, manage causes and review
// donations. Public endpoints never require one.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}
