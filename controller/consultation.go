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

// CreateConsultation 咨询表单，无需登录
func CreateConsultation(c *gin.Context) {
	var req request.CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
			Msg: ErrParseRequest.Error(),
		})
		return
	}

	consultation := &model.Consultation{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Message:  req.Message,
		UserID:   middleware.UserIDFrom(c),
		TourID:   req.TourID,
		Status:   model.StatusPending,
	}
	if err := dao.CreateConsultation(c.Request.Context(), consultation); err != nil {
		slog.Error(ErrCreateConsultation.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrCreateConsultation.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{Data: consultation})
}
