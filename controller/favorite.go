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

// AddFavorite 重复收藏视为成功
func AddFavorite(c *gin.Context) {
	var req request.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
			Msg: ErrParseRequest.Error(),
		})
		return
	}

	userID := c.GetString(middleware.ContextUserID)

	existing, err := dao.GetFavorite(c.Request.Context(), userID, req.TourID)
	if err != nil {
		slog.Error(ErrAddFavorite.Error(), "tour_id", req.TourID, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrAddFavorite.Error(),
		})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, response.Response{})
		return
	}

	favorite := &model.Favorite{
		UserID: userID,
		TourID: req.TourID,
	}
	if err := dao.CreateFavorite(c.Request.Context(), favorite); err != nil {
		slog.Error(ErrAddFavorite.Error(), "tour_id", req.TourID, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrAddFavorite.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{})
}

func RemoveFavorite(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	tourID := c.Param("tour_id")

	if err := dao.DeleteFavorite(c.Request.Context(), userID, tourID); err != nil {
		slog.Error(ErrRemoveFavorite.Error(), "tour_id", tourID, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrRemoveFavorite.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{})
}

// CheckFavorite 单个 tour 是否已收藏，详情页用
func CheckFavorite(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	tourID := c.Param("tour_id")

	favorite, err := dao.GetFavorite(c.Request.Context(), userID, tourID)
	if err != nil {
		slog.Error(ErrGetFavorites.Error(), "tour_id", tourID, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGetFavorites.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{
		Data: gin.H{"favorited": favorite != nil},
	})
}

func GetFavorites(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	tours, err := dao.GetFavoriteTours(c.Request.Context(), userID)
	if err != nil {
		slog.Error(ErrGetFavorites.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGetFavorites.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{Data: tours})
}
