package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"joigo-tour-backend/middleware"
	"joigo-tour-backend/model"
	"joigo-tour-backend/request"
	"joigo-tour-backend/response"
	"joigo-tour-backend/service/auth"

	"github.com/gin-gonic/gin"
)

func Register(c *gin.Context) {
	var req request.UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
			Msg: ErrParseRequest.Error(),
		})
		return
	}

	profile, err := auth.UserRegister(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			c.AbortWithStatusJSON(http.StatusConflict, response.Response{
				Msg: auth.ErrEmailTaken.Error(),
			})
			return
		}
		slog.Error(ErrUserRegister.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrUserRegister.Error(),
		})
		return
	}

	respondWithToken(c, profile)
}

func Login(c *gin.Context) {
	var req request.UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
			Msg: ErrParseRequest.Error(),
		})
		return
	}

	profile, err := auth.UserLogin(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{
				Msg: auth.ErrInvalidCredentials.Error(),
			})
			return
		}
		slog.Error(ErrUserLogin.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrUserLogin.Error(),
		})
		return
	}

	respondWithToken(c, profile)
}

func respondWithToken(c *gin.Context, profile *model.Profile) {
	token, err := middleware.GenerateToken(profile.ID, profile.Role)
	if err != nil {
		slog.Error(ErrGenerateToken.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGenerateToken.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{
		Data: response.UserAuthResponse{
			UserID: profile.ID,
			Email:  profile.Email,
			Name:   profile.Name,
			Role:   profile.Role,
			Token:  token,
		},
	})
}
