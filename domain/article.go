package domain

import "time"

// Article is a news post shown on the public site.
type Article struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ImagePath   string    `json:"image_path,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}
