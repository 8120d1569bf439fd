package chat

import (
	"context"
	"time"

	"joigo-tour-backend/dao"
	"joigo-tour-backend/model"
)

// Turn 对话中的一条消息
type Turn struct {
	Role      string
	Content   string
	CreatedAt time.Time
}

// SessionStore 会话与消息的存储。PostgresSessionStore 以消息插入为原子边界，
// 可跨多实例使用；MemorySessionStore 仅限单实例，进程退出即丢失。
type SessionStore interface {
	// CreateSession sessionID 为空时由存储生成
	CreateSession(ctx context.Context, sessionID string, userID *string, title, language string) (*model.ChatSession, error)

	// GetSession 会话不存在时返回 (nil, nil)
	GetSession(ctx context.Context, sessionID string) (*model.ChatSession, error)

	// LatestSession 用户最近更新的会话，没有则返回 (nil, nil)
	LatestSession(ctx context.Context, userID string) (*model.ChatSession, error)

	// SessionsByUser 用户的全部会话，按更新时间降序
	SessionsByUser(ctx context.Context, userID string) ([]model.ChatSession, error)

	// RecentTurns 最近 limit 条消息，按时间升序
	RecentTurns(ctx context.Context, sessionID string, limit int) ([]Turn, error)

	// Turns 全量消息，按时间升序
	Turns(ctx context.Context, sessionID string) ([]Turn, error)

	AppendTurn(ctx context.Context, sessionID, role, content string) error

	UpdateTitle(ctx context.Context, sessionID, title string) error

	// DeleteSession 删除会话并级联删除其消息
	DeleteSession(ctx context.Context, sessionID string) error
}

// PostgresSessionStore 持久化会话存储
type PostgresSessionStore struct{}

var _ SessionStore = &PostgresSessionStore{}

func NewPostgresSessionStore() *PostgresSessionStore {
	return &PostgresSessionStore{}
}

func (s *PostgresSessionStore) CreateSession(ctx context.Context, sessionID string, userID *string, title, language string) (*model.ChatSession, error) {
	if sessionID == "" {
		sessionID = newSessionID()
	}
	session := &model.ChatSession{
		SessionID: sessionID,
		UserID:    userID,
		Title:     title,
		Language:  language,
	}
	if err := dao.CreateChatSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *PostgresSessionStore) GetSession(ctx context.Context, sessionID string) (*model.ChatSession, error) {
	return dao.GetChatSession(ctx, sessionID)
}

func (s *PostgresSessionStore) LatestSession(ctx context.Context, userID string) (*model.ChatSession, error) {
	return dao.GetLatestChatSession(ctx, userID)
}

func (s *PostgresSessionStore) SessionsByUser(ctx context.Context, userID string) ([]model.ChatSession, error) {
	return dao.GetChatSessionsByUser(ctx, userID)
}

func (s *PostgresSessionStore) RecentTurns(ctx context.Context, sessionID string, limit int) ([]Turn, error) {
	messages, err := dao.GetRecentMessages(ctx, sessionID, limit)
	if err != nil {
		return nil, err
	}
	return toTurns(messages), nil
}

func (s *PostgresSessionStore) Turns(ctx context.Context, sessionID string) ([]Turn, error) {
	messages, err := dao.GetMessagesBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toTurns(messages), nil
}

func toTurns(messages []model.ChatMessage) []Turn {
	turns := make([]Turn, 0, len(messages))
	for _, m := range messages {
		turns = append(turns, Turn{
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return turns
}

func (s *PostgresSessionStore) AppendTurn(ctx context.Context, sessionID, role, content string) error {
	return dao.AppendChatMessage(ctx, &model.ChatMessage{
		SessionID: sessionID,
		Role:      role,
		Content:   content,
	})
}

func (s *PostgresSessionStore) UpdateTitle(ctx context.Context, sessionID, title string) error {
	return dao.UpdateChatSessionTitle(ctx, sessionID, title)
}

func (s *PostgresSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	return dao.DeleteChatSession(ctx, sessionID)
}
