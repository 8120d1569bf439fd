package controller

import (
	"context"
	"log/slog"
	"net/http"

	"joigo-tour-backend/config"
	"joigo-tour-backend/dao"
	"joigo-tour-backend/model"
	"joigo-tour-backend/request"
	"joigo-tour-backend/response"
	"joigo-tour-backend/service/indexer"
	"joigo-tour-backend/service/mq"

	"github.com/gin-gonic/gin"
)

func GetTours(c *gin.Context) {
	tours, err := dao.GetTours(c.Request.Context())
	if err != nil {
		slog.Error(ErrGetTours.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGetTours.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{Data: tours})
}

func GetTour(c *gin.Context) {
	tourID := c.Param("tour_id")

	tour, err := dao.GetTourByID(c.Request.Context(), tourID)
	if err != nil {
		slog.Error(ErrGetTours.Error(), "tour_id", tourID, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGetTours.Error(),
		})
		return
	}
	if tour == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, response.Response{
			Msg: ErrTourNotFound.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{Data: tour})
}

func CreateTour(c *gin.Context) {
	var req request.CreateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
			Msg: ErrParseRequest.Error(),
		})
		return
	}

	tour := &model.Tour{
		Title:         req.Title,
		TitleEN:       req.TitleEN,
		Description:   req.Description,
		DescriptionEN: req.DescriptionEN,
		Price:         req.Price,
		Image:         req.Image,
		Departure:     req.Departure,
		Destination:   req.Destination,
	}
	if err := dao.CreateTour(c.Request.Context(), tour); err != nil {
		slog.Error(ErrCreateTour.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrCreateTour.Error(),
		})
		return
	}

	scheduleIndex(c.Request.Context(), tour.ID)

	c.JSON(http.StatusOK, response.Response{Data: tour})
}

func UpdateTour(c *gin.Context) {
	tourID := c.Param("tour_id")

	var req request.UpdateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
			Msg: ErrParseRequest.Error(),
		})
		return
	}

	tour, err := dao.GetTourByID(c.Request.Context(), tourID)
	if err != nil {
		slog.Error(ErrUpdateTour.Error(), "tour_id", tourID, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrUpdateTour.Error(),
		})
		return
	}
	if tour == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, response.Response{
			Msg: ErrTourNotFound.Error(),
		})
		return
	}

	fields := make(map[string]any)
	reindex := false
	if req.Title != nil {
		fields["title"] = *req.Title
		reindex = true
	}
	if req.TitleEN != nil {
		fields["title_en"] = *req.TitleEN
	}
	if req.Description != nil {
		fields["description"] = *req.Description
		reindex = true
	}
	if req.DescriptionEN != nil {
		fields["description_en"] = *req.DescriptionEN
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Departure != nil {
		fields["departure"] = *req.Departure
	}
	if req.Destination != nil {
		fields["destination"] = *req.Destination
	}
	if len(fields) == 0 {
		c.JSON(http.StatusOK, response.Response{Data: tour})
		return
	}

	if err := dao.UpdateTour(c.Request.Context(), tourID, fields); err != nil {
		slog.Error(ErrUpdateTour.Error(), "tour_id", tourID, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrUpdateTour.Error(),
		})
		return
	}

	// 标题或描述变更后向量已失效，触发重建
	if reindex {
		scheduleIndex(c.Request.Context(), tourID)
	}

	c.JSON(http.StatusOK, response.Response{})
}

func DeleteTour(c *gin.Context) {
	tourID := c.Param("tour_id")

	if err := dao.DeleteTour(c.Request.Context(), tourID); err != nil {
		slog.Error(ErrDeleteTour.Error(), "tour_id", tourID, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrDeleteTour.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{})
}

// scheduleIndex MQ 可用时投递向量化任务，否则同步重建。
// 任何失败只记日志，不影响 tour 写入本身
func scheduleIndex(ctx context.Context, tourID string) {
	if config.Cfg.MQ.Enabled {
		err := mq.SendMessage(ctx, &mq.Message{
			Topic:   mq.TopicTourIndex,
			Tag:     mq.TagEmbed,
			Payload: indexer.IndexMessage{TourID: tourID},
		})
		if err != nil {
			slog.Error(ErrEnqueueReindex.Error(), "tour_id", tourID, "err", err)
		}
		return
	}

	if err := indexer.IndexTour(ctx, tourID); err != nil {
		slog.Error(ErrEnqueueReindex.Error(), "tour_id", tourID, "err", err)
	}
}
