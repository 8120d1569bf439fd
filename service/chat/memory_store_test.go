package chat

import (
	"context"
	"fmt"
	"testing"

	"joigo-tour-backend/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessionStore()
	userID := "user-1"

	created, err := s.CreateSession(ctx, "", &userID, "Tour Đà Nẵng", model.LanguageVI)
	require.NoError(t, err)
	assert.NotEmpty(t, created.SessionID)

	got, err := s.GetSession(ctx, created.SessionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Tour Đà Nẵng", got.Title)

	missing, err := s.GetSession(ctx, "no-such-session")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, s.UpdateTitle(ctx, created.SessionID, "Đổi tên"))
	got, err = s.GetSession(ctx, created.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "Đổi tên", got.Title)

	require.NoError(t, s.DeleteSession(ctx, created.SessionID))
	got, err = s.GetSession(ctx, created.SessionID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreLatestAndListByUser(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessionStore()
	userID := "user-1"

	first, err := s.CreateSession(ctx, "", &userID, "first", model.LanguageVI)
	require.NoError(t, err)
	second, err := s.CreateSession(ctx, "", &userID, "second", model.LanguageVI)
	require.NoError(t, err)

	// 匿名会话不参与用户列表
	_, err = s.CreateSession(ctx, "", nil, "anonymous", model.LanguageVI)
	require.NoError(t, err)

	// 追加消息后 first 变为最近更新
	require.NoError(t, s.AppendTurn(ctx, first.SessionID, model.RoleUser, "hi"))

	latest, err := s.LatestSession(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, first.SessionID, latest.SessionID)

	sessions, err := s.SessionsByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, first.SessionID, sessions[0].SessionID)
	assert.Equal(t, second.SessionID, sessions[1].SessionID)
}

func TestMemoryStoreRecentTurnsWindow(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessionStore()

	session, err := s.CreateSession(ctx, "", nil, "title", model.LanguageVI)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		role := model.RoleUser
		if i%2 == 1 {
			role = model.RoleAssistant
		}
		require.NoError(t, s.AppendTurn(ctx, session.SessionID, role, fmt.Sprintf("msg-%d", i)))
	}

	turns, err := s.RecentTurns(ctx, session.SessionID, 3)
	require.NoError(t, err)
	require.Len(t, turns, 3)
	// 窗口取最近三条，时间升序
	assert.Equal(t, "msg-2", turns[0].Content)
	assert.Equal(t, "msg-3", turns[1].Content)
	assert.Equal(t, "msg-4", turns[2].Content)

	all, err := s.Turns(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
