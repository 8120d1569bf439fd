package dao

import (
	"context"
	"errors"
	"fmt"

	"joigo-tour-backend/config"
	"joigo-tour-backend/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// ErrEmbeddingDimMismatch 查询向量维度与索引列不一致，禁止执行检索
var ErrEmbeddingDimMismatch = errors.New("query embedding dimension does not match indexed tour vectors")

func GetTours(ctx context.Context) ([]model.Tour, error) {
	var tours []model.Tour
	if err := DB.WithContext(ctx).
		Order("created_at DESC").
		Find(&tours).Error; err != nil {
		return nil, err
	}
	return tours, nil
}

// GetTourByID 不存在时返回 (nil, nil)
func GetTourByID(ctx context.Context, tourID string) (*model.Tour, error) {
	var tour model.Tour
	err := DB.WithContext(ctx).
		Where("id = ?", tourID).
		First(&tour).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tour, nil
}

func CreateTour(ctx context.Context, tour *model.Tour) error {
	return DB.WithContext(ctx).Create(tour).Error
}

func UpdateTour(ctx context.Context, tourID string, fields map[string]any) error {
	return DB.WithContext(ctx).Model(&model.Tour{}).
		Where("id = ?", tourID).
		Updates(fields).Error
}

func DeleteTour(ctx context.Context, tourID string) error {
	return DB.WithContext(ctx).
		Where("id = ?", tourID).
		Delete(&model.Tour{}).Error
}

func UpdateTourEmbedding(ctx context.Context, tourID string, vector []float32) error {
	if len(vector) != config.Cfg.Model.EmbeddingDim {
		return ErrEmbeddingDimMismatch
	}

	v := pgvector.NewVector(vector)
	return DB.WithContext(ctx).Model(&model.Tour{}).
		Where("id = ?", tourID).
		Update("embedding", &v).Error
}

// MatchTours 调用 match_tours 函数做向量相似度检索，结果按相似度降序
func MatchTours(ctx context.Context, vector []float32, threshold float64, count int) ([]model.TourMatch, error) {
	if len(vector) != config.Cfg.Model.EmbeddingDim {
		return nil, fmt.Errorf("%w: got %d, want %d",
			ErrEmbeddingDimMismatch, len(vector), config.Cfg.Model.EmbeddingDim)
	}

	var matches []model.TourMatch
	err := DB.WithContext(ctx).
		Raw("SELECT id, title, price, description, similarity FROM match_tours(?, ?, ?)",
			pgvector.NewVector(vector), threshold, count).
		Scan(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}
