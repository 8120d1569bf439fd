package model

import "time"

const (
	RoleAdmin  = "admin"
	RoleMember = "user"
)

type Profile struct {
	ID        string    `gorm:"type:uuid;primarykey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email        string `gorm:"not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Name         string `json:"name"`
	Gender       string `json:"gender"`
	Birthdate    string `json:"birthdate"`
	City         string `json:"city"`
	MobileNumber string `json:"mobile_number"`
	Role         string `gorm:"not null;default:user" json:"role"`
}

func (Profile) TableName() string {
	return "profiles"
}
