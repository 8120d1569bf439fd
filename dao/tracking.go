package dao

import (
	"context"
	"time"

	"joigo-tour-backend/model"
)

func CreateVisitor(ctx context.Context, visitor *model.Visitor) error {
	return DB.WithContext(ctx).Create(visitor).Error
}

func CreateTourView(ctx context.Context, view *model.TourView) error {
	return DB.WithContext(ctx).Create(view).Error
}

func CountVisitors(ctx context.Context) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Visitor{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func CountVisitorsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Visitor{}).
		Where("visited_at >= ?", since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func CountTourViews(ctx context.Context) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.TourView{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// TopTourView 浏览量前列的 tour
type TopTourView struct {
	TourID string `json:"tour_id"`
	Title  string `json:"title"`
	Image  string `json:"image"`
	Views  int64  `json:"views"`
}

func GetTopViewedTours(ctx context.Context, limit int) ([]TopTourView, error) {
	var tops []TopTourView
	err := DB.WithContext(ctx).
		Table("tour_views").
		Select("tour_views.tour_id, tours.title, tours.image, COUNT(*) AS views").
		Joins("JOIN tours ON tours.id = tour_views.tour_id").
		Group("tour_views.tour_id, tours.title, tours.image").
		Order("views DESC").
		Limit(limit).
		Scan(&tops).Error
	if err != nil {
		return nil, err
	}
	return tops, nil
}
