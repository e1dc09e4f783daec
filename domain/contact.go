package domain

import "time"

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Website   string    `json:"website,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
