package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleStudent  = "STUDENT"
	RoleExternal = "EXTERNAL"
	RoleFaculty  = "FACULTY"
)

type User struct {
	ID           uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt    time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt    time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `json:"name" example:"John Doe"`
	Email        string         `gorm:"unique" json:"email" example:"john.doe@example.com"`
	Password     string         `json:"-"`
	Role         string         `json:"role" example:"EXTERNAL"`
	ReferralCode *string        `json:"referral_code,omitempty" example:"MBR-2024"`
}
