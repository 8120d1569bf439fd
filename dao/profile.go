package dao

import (
	"context"
	"errors"

	"joigo-tour-backend/model"

	"gorm.io/gorm"
)

func CreateProfile(ctx context.Context, profile *model.Profile) error {
	return DB.WithContext(ctx).Create(profile).Error
}

// GetProfileByID 不存在时返回 (nil, nil)
func GetProfileByID(ctx context.Context, userID string) (*model.Profile, error) {
	var profile model.Profile
	err := DB.WithContext(ctx).
		Where("id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func GetProfileByEmail(ctx context.Context, email string) (*model.Profile, error) {
	var profile model.Profile
	err := DB.WithContext(ctx).
		Where("email = ?", email).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func UpdateProfile(ctx context.Context, userID string, fields map[string]any) error {
	return DB.WithContext(ctx).Model(&model.Profile{}).
		Where("id = ?", userID).
		Updates(fields).Error
}

func UpdateProfileRole(ctx context.Context, userID, role string) error {
	return DB.WithContext(ctx).Model(&model.Profile{}).
		Where("id = ?", userID).
		Update("role", role).Error
}
