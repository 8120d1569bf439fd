package dao

import (
	"context"
	"errors"
	"time"

	"joigo-tour-backend/model"

	"gorm.io/gorm"
)

func CreateChatSession(ctx context.Context, session *model.ChatSession) error {
	return DB.WithContext(ctx).Create(session).Error
}

// GetChatSession 会话不存在时返回 (nil, nil)
func GetChatSession(ctx context.Context, sessionID string) (*model.ChatSession, error) {
	var session model.ChatSession
	err := DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func GetChatSessionsByUser(ctx context.Context, userID string) ([]model.ChatSession, error) {
	var sessions []model.ChatSession
	if err := DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetLatestChatSession 用户最近更新的会话，没有则返回 (nil, nil)
func GetLatestChatSession(ctx context.Context, userID string) (*model.ChatSession, error) {
	var session model.ChatSession
	err := DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// DeleteChatSession 删除会话并级联删除其消息
func DeleteChatSession(ctx context.Context, sessionID string) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).
			Delete(&model.ChatSession{}).Error; err != nil {
			return err
		}
		return tx.Where("session_id = ?", sessionID).
			Delete(&model.ChatMessage{}).Error
	})
}

func GetMessagesBySessionID(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	if err := DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// GetRecentMessages 返回最近 limit 条消息，按时间升序
func GetRecentMessages(ctx context.Context, sessionID string, limit int) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	if err := DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// AppendChatMessage 插入消息并刷新会话的 updated_at
func AppendChatMessage(ctx context.Context, message *model.ChatMessage) error {
	if err := DB.WithContext(ctx).Create(message).Error; err != nil {
		return err
	}

	return DB.WithContext(ctx).Model(&model.ChatSession{}).
		Where("session_id = ?", message.SessionID).
		Update("updated_at", time.Now()).Error
}

func UpdateChatSessionTitle(ctx context.Context, sessionID, title string) error {
	return DB.WithContext(ctx).Model(&model.ChatSession{}).
		Where("session_id = ?", sessionID).
		Update("title", title).Error
}
