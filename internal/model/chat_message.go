package model

import "time"

// ChatMessage is one chat turn: one user message plus one bot response in a
// single row. SessionID is a client-generated opaque string correlating turns
// into a conversation; there is no server-side session object behind it.
// Rows are immutable after creation.
type ChatMessage struct {
	ID          int       `json:"id"`
	SessionID   string    `json:"sessionId"`
	UserMessage string    `json:"userMessage"`
	BotResponse string    `json:"botResponse"`
	IPAddress   string    `json:"ipAddress,omitempty"`
	UserAgent   string    `json:"userAgent,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SendChatRequest is the public chat widget payload. The 1000 character cap
// mirrors the user_message column size.
type SendChatRequest struct {
	Message   string `json:"message" binding:"required,notblank,max=1000"`
	SessionID string `json:"sessionId" binding:"required,notblank,max=100"`
}

// ChatStats are the admin chat usage counters.
type ChatStats struct {
	TotalMessages             int `json:"totalMessages"`
	UniqueSessions            int `json:"uniqueSessions"`
	RecentWeek                int `json:"recentWeek"`
	AverageMessagesPerSession int `json:"averageMessagesPerSession"`
}
