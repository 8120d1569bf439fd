package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"joigo-tour-backend/dao"
	"joigo-tour-backend/model"
	"joigo-tour-backend/service/chat"

	"github.com/apache/rocketmq-client-go/v2/primitive"
)

// IndexMessage tour 向量化任务
type IndexMessage struct {
	TourID string `json:"tour_id"`
}

var (
	providerOnce sync.Once
	provider     chat.EmbeddingProvider
	providerErr  error
)

func embeddingProvider() (chat.EmbeddingProvider, error) {
	providerOnce.Do(func() {
		provider, providerErr = chat.NewOpenAIEmbeddingProvider()
	})
	return provider, providerErr
}

// HandleIndexMessage 消费 tour 向量化任务：取 tour，向量化 title + description，
// 写回 embedding 列
func HandleIndexMessage(ctx context.Context, msg *primitive.MessageExt) error {
	var indexMessage IndexMessage
	if err := json.Unmarshal(msg.Body, &indexMessage); err != nil {
		return fmt.Errorf("failed to unmarshal message body: %v", err)
	}

	if err := IndexTour(ctx, indexMessage.TourID); err != nil {
		return fmt.Errorf("failed to index tour %s: %v", indexMessage.TourID, err)
	}
	return nil
}

// IndexTour 重新计算并写回单个 tour 的向量
func IndexTour(ctx context.Context, tourID string) error {
	tour, err := dao.GetTourByID(ctx, tourID)
	if err != nil {
		return fmt.Errorf("failed to load tour: %v", err)
	}
	if tour == nil {
		// tour 已删除，任务作废
		slog.Info("tour no longer exists, skipping index", "tour_id", tourID)
		return nil
	}

	p, err := embeddingProvider()
	if err != nil {
		return fmt.Errorf("failed to create embedding provider: %v", err)
	}

	vector, err := p.Embed(ctx, embeddingText(tour))
	if err != nil {
		return fmt.Errorf("failed to embed tour: %v", err)
	}

	if err := dao.UpdateTourEmbedding(ctx, tour.ID, vector); err != nil {
		return fmt.Errorf("failed to store tour embedding: %v", err)
	}

	slog.Info("tour embedding updated", "tour_id", tour.ID)
	return nil
}

// embeddingText 与检索时的语义保持一致：标题 + 描述
func embeddingText(tour *model.Tour) string {
	return tour.Title + ". " + tour.Description
}
