package controller

import (
	"log/slog"
	"net/http"

	"joigo-tour-backend/middleware"
	"joigo-tour-backend/model"
	"joigo-tour-backend/request"
	"joigo-tour-backend/response"
	"joigo-tour-backend/service/chat"

	"github.com/gin-gonic/gin"
)

// CreateSession 显式创建一个新会话（首页"新对话"按钮）
func CreateSession(c *gin.Context) {
	var req request.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
			Msg: ErrParseRequest.Error(),
		})
		return
	}

	title := req.Title
	if title == "" {
		title = model.DefaultSessionTitle
	}

	userID := middleware.UserIDFrom(c)
	session, err := chat.DefaultPipeline.Store.CreateSession(
		c.Request.Context(), "", userID, title, chat.NormalizeLanguage(req.Language))
	if err != nil {
		slog.Error(ErrCreateSession.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrCreateSession.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{
		Data: toSessionResponse(session),
	})
}

// GetSessions 当前用户的会话列表，按更新时间降序
func GetSessions(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	sessions, err := chat.DefaultPipeline.Store.SessionsByUser(c.Request.Context(), userID)
	if err != nil {
		slog.Error(ErrGetSessions.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGetSessions.Error(),
		})
		return
	}

	out := make([]response.SessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, toSessionResponse(&sessions[i]))
	}
	c.JSON(http.StatusOK, response.Response{
		Data: response.GetSessionsResponse{Sessions: out},
	})
}

// GetSessionMessages 会话的全量消息，按时间升序
func GetSessionMessages(c *gin.Context) {
	sessionID := c.Param("session_id")
	if !authorizeSession(c, sessionID) {
		return
	}

	turns, err := chat.DefaultPipeline.Store.Turns(c.Request.Context(), sessionID)
	if err != nil {
		slog.Error(ErrGetSessionMessages.Error(), "session_id", sessionID, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGetSessionMessages.Error(),
		})
		return
	}

	messages := make([]response.MessageResponse, 0, len(turns))
	for _, t := range turns {
		messages = append(messages, response.MessageResponse{
			CreatedAt: t.CreatedAt,
			Role:      t.Role,
			Content:   t.Content,
		})
	}
	c.JSON(http.StatusOK, response.Response{
		Data: response.GetSessionMessagesResponse{Messages: messages},
	})
}

// UpdateSessionTitle 重命名会话
func UpdateSessionTitle(c *gin.Context) {
	var req request.UpdateSessionTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
			Msg: ErrParseRequest.Error(),
		})
		return
	}

	if !authorizeSession(c, req.SessionID) {
		return
	}

	if err := chat.DefaultPipeline.Store.UpdateTitle(c.Request.Context(), req.SessionID, req.Title); err != nil {
		slog.Error(ErrUpdateSessionTitle.Error(), "session_id", req.SessionID, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrUpdateSessionTitle.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{})
}

// DeleteSession 删除会话及其全部消息
func DeleteSession(c *gin.Context) {
	sessionID := c.Param("session_id")
	if !authorizeSession(c, sessionID) {
		return
	}

	if err := chat.DefaultPipeline.Store.DeleteSession(c.Request.Context(), sessionID); err != nil {
		slog.Error(ErrDeleteSession.Error(), "session_id", sessionID, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrDeleteSession.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{})
}

// authorizeSession 不存在返回 404；归属其他用户返回 403；匿名会话凭 session_id 即可访问。
// 校验不通过时已写入响应，调用方直接 return
func authorizeSession(c *gin.Context, sessionID string) bool {
	session, err := chat.DefaultPipeline.Store.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		slog.Error(ErrGetSessions.Error(), "session_id", sessionID, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGetSessions.Error(),
		})
		return false
	}
	if session == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, response.Response{
			Msg: ErrSessionNotFound.Error(),
		})
		return false
	}

	if session.UserID != nil {
		userID := middleware.UserIDFrom(c)
		if userID == nil || *userID != *session.UserID {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Response{
				Msg: ErrSessionForbidden.Error(),
			})
			return false
		}
	}
	return true
}

func toSessionResponse(session *model.ChatSession) response.SessionResponse {
	return response.SessionResponse{
		SessionID: session.SessionID,
		Title:     session.Title,
		Language:  session.Language,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
}
