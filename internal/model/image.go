package model

import "time"

// Portfolio image categories. The set is fixed; the API rejects anything else.
const (
	CategoryTraditional = "traditional"
	CategoryRealism     = "realism"
	CategoryGeometric   = "geometric"
	CategoryBlackwork   = "blackwork"
	CategoryColor       = "color"
)

// ValidCategory reports whether c is one of the known portfolio categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryTraditional, CategoryRealism, CategoryGeometric, CategoryBlackwork, CategoryColor:
		return true
	}
	return false
}

// Image is a portfolio entry. ImageURL is the public retrieval path of the
// uploaded blob; PublicID is the storage key used to delete it.
type Image struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	PublicID    string    `json:"publicId"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
