package controller

import (
	"log/slog"
	"net/http"

	"joigo-tour-backend/dao"
	"joigo-tour-backend/middleware"
	"joigo-tour-backend/model"
	"joigo-tour-backend/request"
	"joigo-tour-backend/response"

	"github.com/gin-gonic/gin"
)

func CreateBooking(c *gin.Context) {
	var req request.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
			Msg: ErrParseRequest.Error(),
		})
		return
	}

	tour, err := dao.GetTourByID(c.Request.Context(), req.TourID)
	if err != nil {
		slog.Error(ErrCreateBooking.Error(), "tour_id", req.TourID, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrCreateBooking.Error(),
		})
		return
	}
	if tour == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, response.Response{
			Msg: ErrTourNotFound.Error(),
		})
		return
	}

	booking := &model.Booking{
		UserID:   c.GetString(middleware.ContextUserID),
		TourID:   req.TourID,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Message:  req.Message,
		Status:   model.StatusPending,
	}
	if err := dao.CreateBooking(c.Request.Context(), booking); err != nil {
		slog.Error(ErrCreateBooking.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrCreateBooking.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{Data: booking})
}

// GetMyBookings 当前用户的预订列表，带 tour 展示字段
func GetMyBookings(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	bookings, err := dao.GetBookingsByUser(c.Request.Context(), userID)
	if err != nil {
		slog.Error(ErrGetBookings.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGetBookings.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{Data: bookings})
}
