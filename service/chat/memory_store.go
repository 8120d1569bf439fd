package chat

import (
	"context"
	"sort"
	"sync"
	"time"

	"joigo-tour-backend/model"
)

// MemorySessionStore 进程内会话存储，仅限单实例部署，不做持久化
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.ChatSession
	messages map[string][]Turn
}

var _ SessionStore = &MemorySessionStore{}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*model.ChatSession),
		messages: make(map[string][]Turn),
	}
}

func (s *MemorySessionStore) CreateSession(ctx context.Context, sessionID string, userID *string, title, language string) (*model.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionID == "" {
		sessionID = newSessionID()
	}
	now := time.Now()
	session := &model.ChatSession{
		SessionID: sessionID,
		UserID:    userID,
		Title:     title,
		Language:  language,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sessions[sessionID] = session

	copied := *session
	return &copied, nil
}

func (s *MemorySessionStore) GetSession(ctx context.Context, sessionID string) (*model.ChatSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (s *MemorySessionStore) LatestSession(ctx context.Context, userID string) (*model.ChatSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *model.ChatSession
	for _, session := range s.sessions {
		if session.UserID == nil || *session.UserID != userID {
			continue
		}
		if latest == nil || session.UpdatedAt.After(latest.UpdatedAt) {
			latest = session
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (s *MemorySessionStore) SessionsByUser(ctx context.Context, userID string) ([]model.ChatSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.ChatSession
	for _, session := range s.sessions {
		if session.UserID == nil || *session.UserID != userID {
			continue
		}
		out = append(out, *session)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (s *MemorySessionStore) RecentTurns(ctx context.Context, sessionID string, limit int) ([]Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.messages[sessionID]
	if limit > 0 && len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}

	out := make([]Turn, len(turns))
	copy(out, turns)
	return out, nil
}

func (s *MemorySessionStore) AppendTurn(ctx context.Context, sessionID, role, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages[sessionID] = append(s.messages[sessionID], Turn{
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	})
	if session, ok := s.sessions[sessionID]; ok {
		session.UpdatedAt = time.Now()
	}
	return nil
}

func (s *MemorySessionStore) Turns(ctx context.Context, sessionID string) ([]Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.messages[sessionID]
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out, nil
}

func (s *MemorySessionStore) UpdateTitle(ctx context.Context, sessionID, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[sessionID]; ok {
		session.Title = title
		session.UpdatedAt = time.Now()
	}
	return nil
}

func (s *MemorySessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	delete(s.messages, sessionID)
	return nil
}
