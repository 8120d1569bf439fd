package controller

import (
	"log/slog"
	"net/http"

	"joigo-tour-backend/dao"
	"joigo-tour-backend/middleware"
	"joigo-tour-backend/request"
	"joigo-tour-backend/response"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	profile, err := dao.GetProfileByID(c.Request.Context(), userID)
	if err != nil {
		slog.Error(ErrGetProfile.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGetProfile.Error(),
		})
		return
	}
	if profile == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, response.Response{
			Msg: ErrProfileNotFound.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{Data: profile})
}

func UpdateProfile(c *gin.Context) {
	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
			Msg: ErrParseRequest.Error(),
		})
		return
	}

	fields := make(map[string]any)
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.Birthdate != nil {
		fields["birthdate"] = *req.Birthdate
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.MobileNumber != nil {
		fields["mobile_number"] = *req.MobileNumber
	}
	if len(fields) == 0 {
		c.JSON(http.StatusOK, response.Response{})
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	if err := dao.UpdateProfile(c.Request.Context(), userID, fields); err != nil {
		slog.Error(ErrUpdateProfile.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrUpdateProfile.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{})
}
