package controller

import (
	"log/slog"
	"net/http"
	"path"

	"joigo-tour-backend/response"
	"joigo-tour-backend/service/media"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUploadURL 为 tour 图片直传签发地址，对象名由服务端生成避免覆盖
func GetUploadURL(c *gin.Context) {
	filename := c.Query("filename")
	objectName := "tours/" + uuid.New().String() + path.Ext(filename)

	url, err := media.GenerateUploadURL(c.Request.Context(), objectName)
	if err != nil {
		slog.Error(ErrPresignURL.Error(), "object_name", objectName, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrPresignURL.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{
		Data: response.PresignedURLResponse{
			URL:        url,
			ObjectName: objectName,
		},
	})
}

func GetDownloadURL(c *gin.Context) {
	objectName := c.Query("object_name")
	if objectName == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
			Msg: ErrParseRequest.Error(),
		})
		return
	}

	url, err := media.GenerateDownloadURL(c.Request.Context(), objectName)
	if err != nil {
		slog.Error(ErrPresignURL.Error(), "object_name", objectName, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrPresignURL.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{
		Data: response.PresignedURLResponse{
			URL:        url,
			ObjectName: objectName,
		},
	})
}
