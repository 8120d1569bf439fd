package dao

import (
	"context"
	"errors"

	"joigo-tour-backend/model"

	"gorm.io/gorm"
)

func CreateFavorite(ctx context.Context, favorite *model.Favorite) error {
	return DB.WithContext(ctx).Create(favorite).Error
}

func DeleteFavorite(ctx context.Context, userID, tourID string) error {
	return DB.WithContext(ctx).
		Where("user_id = ? AND tour_id = ?", userID, tourID).
		Delete(&model.Favorite{}).Error
}

// GetFavorite 未收藏时返回 (nil, nil)
func GetFavorite(ctx context.Context, userID, tourID string) (*model.Favorite, error) {
	var favorite model.Favorite
	err := DB.WithContext(ctx).
		Where("user_id = ? AND tour_id = ?", userID, tourID).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}

// GetFavoriteTours 用户收藏的 tour 列表
func GetFavoriteTours(ctx context.Context, userID string) ([]model.Tour, error) {
	var tours []model.Tour
	err := DB.WithContext(ctx).
		Table("tours").
		Joins("JOIN favorites ON favorites.tour_id = tours.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Find(&tours).Error
	if err != nil {
		return nil, err
	}
	return tours, nil
}
