package model

import "time"

// Message statuses. New messages always start UNREAD; any status may be
// changed to any other, including reopening an ARCHIVED message.
const (
	StatusUnread   = "UNREAD"
	StatusRead     = "READ"
	StatusArchived = "ARCHIVED"
)

// ValidStatus reports whether s is one of the three message statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusUnread, StatusRead, StatusArchived:
		return true
	}
	return false
}

// Message represents a contact form submission.
type Message struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone,omitempty"`
	Message   string       `json:"message"`
	Status    string       `json:"status"`
	UserID    *string      `json:"user_id,omitempty"`
	User      *UserSummary `json:"user,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
