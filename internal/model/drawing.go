package model

import "time"

// Drawing is a gallery entry for hand-drawn designs. Same lifecycle as
// Image, without a category.
type Drawing struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl"`
	PublicID    string    `json:"publicId"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
