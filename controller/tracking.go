package controller

import (
	"log/slog"
	"net/http"
	"time"

	"joigo-tour-backend/dao"
	"joigo-tour-backend/model"
	"joigo-tour-backend/request"
	"joigo-tour-backend/response"

	"github.com/gin-gonic/gin"
)

// TrackVisitor 访问埋点。写库失败只记日志，永远返回 200，
// 统计丢点不应该影响前端页面
func TrackVisitor(c *gin.Context) {
	var req request.TrackVisitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, response.Response{})
		return
	}

	visitor := &model.Visitor{
		VisitedAt: time.Now(),
		IPAddress: req.IPAddress,
		UserAgent: req.UserAgent,
		PagePath:  req.PagePath,
	}
	if visitor.IPAddress == "" {
		visitor.IPAddress = c.ClientIP()
	}
	if visitor.UserAgent == "" {
		visitor.UserAgent = c.Request.UserAgent()
	}

	if err := dao.CreateVisitor(c.Request.Context(), visitor); err != nil {
		slog.Warn("failed to record visitor", "err", err)
	}

	c.JSON(http.StatusOK, response.Response{})
}

// TrackTourView tour 详情页浏览埋点，同样不向前端暴露失败
func TrackTourView(c *gin.Context) {
	var req request.TrackTourViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, response.Response{})
		return
	}

	view := &model.TourView{
		ViewedAt:  time.Now(),
		TourID:    req.TourID,
		UserID:    req.UserID,
		IPAddress: req.IPAddress,
	}
	if view.IPAddress == "" {
		view.IPAddress = c.ClientIP()
	}

	if err := dao.CreateTourView(c.Request.Context(), view); err != nil {
		slog.Warn("failed to record tour view", "tour_id", req.TourID, "err", err)
	}

	c.JSON(http.StatusOK, response.Response{})
}
