package model

import "time"

const (
	DefaultSessionTitle = "Cuộc trò chuyện mới"

	RoleUser      = "user"
	RoleAssistant = "assistant"

	LanguageVI = "VI"
	LanguageEN = "EN"
)

type ChatSession struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 匿名会话没有所属用户
	UserID    *string `gorm:"type:uuid;index" json:"user_id"`
	SessionID string  `gorm:"not null;uniqueIndex" json:"session_id"`
	Title     string  `json:"title"`
	Language  string  `gorm:"default:VI" json:"language"`
}

func (ChatSession) TableName() string {
	return "chat_session"
}

// ChatMessage 建立联合索引 (session_id, created_at)
type ChatMessage struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index:idx_session_created" json:"created_at"`
	SessionID string    `gorm:"not null;index:idx_session_created" json:"session_id"`
	Role      string    `gorm:"not null" json:"role"`
	Content   string    `gorm:"type:text" json:"content"`
}

func (ChatMessage) TableName() string {
	return "chat_message"
}
