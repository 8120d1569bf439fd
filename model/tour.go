package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// Tour 价格以 USD 存储，VND 价格在展示层按固定汇率换算
type Tour struct {
	ID        string    `gorm:"type:uuid;primarykey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title         string  `gorm:"not null" json:"title"`
	TitleEN       string  `json:"title_en"`
	Description   string  `gorm:"type:text" json:"description"`
	DescriptionEN string  `gorm:"type:text" json:"description_en"`
	Price         float64 `gorm:"not null" json:"price"`
	Image         string  `json:"image"`
	Departure     string  `json:"departure"`
	Destination   string  `json:"destination"`

	// 由 title + description 预计算的向量，维度必须与查询向量一致
	Embedding *pgvector.Vector `gorm:"type:vector(768)" json:"-"`
}

func (Tour) TableName() string {
	return "tours"
}

// TourMatch match_tours 函数返回的单条结果
type TourMatch struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Similarity  float64 `json:"similarity"`
}

type Favorite struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_tour" json:"user_id"`
	TourID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_tour" json:"tour_id"`
}

func (Favorite) TableName() string {
	return "favorites"
}
