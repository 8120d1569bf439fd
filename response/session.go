package response

import "time"

type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Title     string    `json:"title"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GetSessionsResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}

type MessageResponse struct {
	CreatedAt time.Time `json:"created_at"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
}

type GetSessionMessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
}
