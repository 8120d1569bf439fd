package model

import "time"

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusConfirmed  = "confirmed"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

type Booking struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID   string `gorm:"type:uuid;not null;index" json:"user_id"`
	TourID   string `gorm:"type:uuid;not null" json:"tour_id"`
	FullName string `gorm:"not null" json:"full_name"`
	Email    string `gorm:"not null" json:"email"`
	Phone    string `gorm:"not null" json:"phone"`
	Message  string `gorm:"type:text" json:"message"`
	Status   string `gorm:"not null;default:pending" json:"status"`
}

func (Booking) TableName() string {
	return "bookings"
}

type Consultation struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FullName string  `gorm:"not null" json:"full_name"`
	Email    string  `gorm:"not null" json:"email"`
	Phone    string  `gorm:"not null" json:"phone"`
	Message  string  `gorm:"type:text" json:"message"`
	UserID   *string `gorm:"type:uuid" json:"user_id"`
	TourID   *string `gorm:"type:uuid" json:"tour_id"`
	Status   string  `gorm:"not null;default:pending" json:"status"`
}

func (Consultation) TableName() string {
	return "consultations"
}
