package model

import "time"

type Visitor struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	VisitedAt time.Time `gorm:"index" json:"visited_at"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	PagePath  string    `json:"page_path"`
}

func (Visitor) TableName() string {
	return "visitors"
}

type TourView struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ViewedAt  time.Time `gorm:"index" json:"viewed_at"`
	TourID    string    `gorm:"type:uuid;not null;index" json:"tour_id"`
	UserID    *string   `gorm:"type:uuid" json:"user_id"`
	IPAddress string    `json:"ip_address"`
}

func (TourView) TableName() string {
	return "tour_views"
}
