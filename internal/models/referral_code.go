package models

import (
	"time"

	"gorm.io/gorm"
)

type ReferralCode struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Code      string         `gorm:"unique" json:"code" example:"MBR-2024"`
	Valid     bool           `gorm:"default:true" json:"valid" example:"true"`
}
