package models

import (
	"time"

	"gorm.io/gorm"
)

type AcademyStudent struct {
	ID          uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	AdmissionNo string         `gorm:"unique" json:"admission_no" binding:"required" example:"MB-2024-017"`
	Name        string         `json:"name" binding:"required" example:"Jane Doe"`
}
