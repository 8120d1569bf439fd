package dao

import (
	"context"

	"joigo-tour-backend/model"
)

func CreateConsultation(ctx context.Context, consultation *model.Consultation) error {
	return DB.WithContext(ctx).Create(consultation).Error
}

func GetConsultations(ctx context.Context, status string) ([]model.Consultation, error) {
	var consultations []model.Consultation
	query := DB.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&consultations).Error; err != nil {
		return nil, err
	}
	return consultations, nil
}

func UpdateConsultationStatus(ctx context.Context, consultationID uint, status string) error {
	return DB.WithContext(ctx).Model(&model.Consultation{}).
		Where("id = ?", consultationID).
		Update("status", status).Error
}

func CountConsultations(ctx context.Context, status string) (int64, error) {
	var count int64
	query := DB.WithContext(ctx).Model(&model.Consultation{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
