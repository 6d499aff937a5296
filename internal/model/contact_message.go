package model

import "time"

// ContactMessage is a contact form submission. Content fields are immutable
// once created; only IsRead is ever mutated.
type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	IPAddress string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateContactRequest is the public contact form payload.
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,notblank,max=100"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Message string `json:"message" binding:"required,notblank,max=2000"`
}

// ContactStats are the admin inbox counters. RecentWeek counts messages
// created within the trailing 7 days of the call.
type ContactStats struct {
	Total      int `json:"total"`
	Unread     int `json:"unread"`
	Read       int `json:"read"`
	RecentWeek int `json:"recentWeek"`
}
