package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusPending     = "PENDING"
	StatusShortlisted = "SHORTLISTED"
	StatusRejected    = "REJECTED"
	StatusAccepted    = "ACCEPTED"
)

// Application links a user to a job. The (job_id, user_id) unique index is the
// source of truth for double-apply prevention; the pre-create existence check
// in the controller is only a fast path.
type Application struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	JobID     uint           `gorm:"uniqueIndex:idx_job_user" json:"job_id" example:"1"`
	UserID    uint           `gorm:"uniqueIndex:idx_job_user" json:"user_id" example:"2"`
	Status    string         `gorm:"default:PENDING" json:"status" example:"PENDING"`
	AppliedAt time.Time      `gorm:"autoCreateTime" json:"applied_at" example:"2023-01-01T00:00:00Z"`
	Job       *Job           `gorm:"foreignKey:JobID" json:"job,omitempty"`
	User      *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func ValidApplicationStatus(s string) bool {
	switch s {
	case StatusPending, StatusShortlisted, StatusRejected, StatusAccepted:
		return true
	}
	return false
}
