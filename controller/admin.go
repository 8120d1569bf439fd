package controller

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"joigo-tour-backend/dao"
	"joigo-tour-backend/model"
	"joigo-tour-backend/request"
	"joigo-tour-backend/response"

	"github.com/gin-gonic/gin"
)

const topToursLimit = 5

// GetDashboardStats 管理后台首页统计
func GetDashboardStats(c *gin.Context) {
	ctx := c.Request.Context()

	stats := response.DashboardStatsResponse{}
	var err error

	if stats.Consultations.Total, err = dao.CountConsultations(ctx, ""); err == nil {
		if stats.Consultations.Pending, err = dao.CountConsultations(ctx, model.StatusPending); err == nil {
			stats.Consultations.Done, err = dao.CountConsultations(ctx, model.StatusCompleted)
		}
	}
	if err == nil {
		if stats.Bookings.Total, err = dao.CountBookings(ctx, ""); err == nil {
			if stats.Bookings.Pending, err = dao.CountBookings(ctx, model.StatusPending); err == nil {
				stats.Bookings.Done, err = dao.CountBookings(ctx, model.StatusCompleted)
			}
		}
	}
	if err == nil {
		if stats.Visitors.Total, err = dao.CountVisitors(ctx); err == nil {
			today := time.Now().Truncate(24 * time.Hour)
			stats.Visitors.Today, err = dao.CountVisitorsSince(ctx, today)
		}
	}
	if err == nil {
		if stats.TourViews, err = dao.CountTourViews(ctx); err == nil {
			stats.TopTours, err = dao.GetTopViewedTours(ctx, topToursLimit)
		}
	}
	if err != nil {
		slog.Error(ErrGetDashboardStats.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGetDashboardStats.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{Data: stats})
}

// GetAllBookings 按 status 查询参数过滤，为空则返回全部
func GetAllBookings(c *gin.Context) {
	bookings, err := dao.GetBookings(c.Request.Context(), c.Query("status"))
	if err != nil {
		slog.Error(ErrGetBookings.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGetBookings.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{Data: bookings})
}

func GetAllConsultations(c *gin.Context) {
	consultations, err := dao.GetConsultations(c.Request.Context(), c.Query("status"))
	if err != nil {
		slog.Error(ErrGetConsultations.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGetConsultations.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{Data: consultations})
}

func UpdateBookingStatus(c *gin.Context) {
	id, req, ok := bindStatusUpdate(c)
	if !ok {
		return
	}

	if err := dao.UpdateBookingStatus(c.Request.Context(), id, req.Status); err != nil {
		slog.Error(ErrUpdateStatus.Error(), "booking_id", id, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrUpdateStatus.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{})
}

func UpdateConsultationStatus(c *gin.Context) {
	id, req, ok := bindStatusUpdate(c)
	if !ok {
		return
	}

	if err := dao.UpdateConsultationStatus(c.Request.Context(), id, req.Status); err != nil {
		slog.Error(ErrUpdateStatus.Error(), "consultation_id", id, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrUpdateStatus.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{})
}

func UpdateUserRole(c *gin.Context) {
	var req request.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
			Msg: ErrParseRequest.Error(),
		})
		return
	}

	userID := c.Param("user_id")
	if err := dao.UpdateProfileRole(c.Request.Context(), userID, req.Role); err != nil {
		slog.Error(ErrUpdateRole.Error(), "user_id", userID, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrUpdateRole.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{})
}

func bindStatusUpdate(c *gin.Context) (uint, request.UpdateStatusRequest, bool) {
	var req request.UpdateStatusRequest

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
			Msg: ErrParseRequest.Error(),
		})
		return 0, req, false
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
			Msg: ErrParseRequest.Error(),
		})
		return 0, req, false
	}
	return uint(id), req, true
}
