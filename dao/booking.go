package dao

import (
	"context"

	"joigo-tour-backend/model"
)

func CreateBooking(ctx context.Context, booking *model.Booking) error {
	return DB.WithContext(ctx).Create(booking).Error
}

// BookingWithTour 预订记录连同所属 tour 的展示字段
type BookingWithTour struct {
	model.Booking
	TourTitle   string  `json:"tour_title"`
	TourTitleEN string  `json:"tour_title_en"`
	TourImage   string  `json:"tour_image"`
	TourPrice   float64 `json:"tour_price"`
	Departure   string  `json:"departure"`
	Destination string  `json:"destination"`
}

func GetBookingsByUser(ctx context.Context, userID string) ([]BookingWithTour, error) {
	var bookings []BookingWithTour
	err := DB.WithContext(ctx).
		Table("bookings").
		Select(`bookings.*,
			tours.title AS tour_title,
			tours.title_en AS tour_title_en,
			tours.image AS tour_image,
			tours.price AS tour_price,
			tours.departure,
			tours.destination`).
		Joins("LEFT JOIN tours ON tours.id = bookings.tour_id").
		Where("bookings.user_id = ?", userID).
		Order("bookings.created_at DESC").
		Scan(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func GetBookings(ctx context.Context, status string) ([]model.Booking, error) {
	var bookings []model.Booking
	query := DB.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func UpdateBookingStatus(ctx context.Context, bookingID uint, status string) error {
	return DB.WithContext(ctx).Model(&model.Booking{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}

func CountBookings(ctx context.Context, status string) (int64, error) {
	var count int64
	query := DB.WithContext(ctx).Model(&model.Booking{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
