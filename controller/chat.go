package controller

import (
	"log/slog"
	"net/http"

	"joigo-tour-backend/middleware"
	"joigo-tour-backend/request"
	"joigo-tour-backend/response"
	"joigo-tour-backend/service/chat"

	"github.com/gin-gonic/gin"
)

// Chat 一轮对话。生成失败不返回错误码，degraded 标记 + 致歉文案
func Chat(c *gin.Context) {
	var req request.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
			Msg: ErrParseRequest.Error(),
		})
		return
	}

	userID := middleware.UserIDFrom(c)
	result, err := chat.DefaultPipeline.Handle(c.Request.Context(), userID, req.SessionID, req.Language, req.Message)
	if err != nil {
		slog.Error(ErrChat.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrChat.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{
		Data: response.ChatResponse{
			Response:           result.Reply,
			SessionID:          result.SessionID,
			RewrittenQuery:     result.RewrittenQuery,
			RelevantToursCount: result.RelevantTours,
			Degraded:           result.Degraded,
		},
	})
}
