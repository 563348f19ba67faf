package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	EligibilityMedibridgeOnly = "MEDIBRIDGE_ONLY"
	EligibilityExternalOnly   = "EXTERNAL_ONLY"
	EligibilityBoth           = "BOTH"
)

type Job struct {
	ID             uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt      time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt      time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	Title          string         `json:"title" example:"Staff Nurse"`
	Description    string         `json:"description" example:"Full-time ward position"`
	Eligibility    string         `json:"eligibility" example:"BOTH"`
	RecruiterEmail *string        `json:"recruiter_email,omitempty" example:"hr@hospital.com"`
	Phone          *string        `json:"phone,omitempty" example:"9876543210"`
	PostedByID     uint           `json:"posted_by_id" example:"1"`
	PostedBy       *User          `gorm:"foreignKey:PostedByID" json:"posted_by,omitempty"`
}

func ValidEligibility(e string) bool {
	switch e {
	case EligibilityMedibridgeOnly, EligibilityExternalOnly, EligibilityBoth:
		return true
	}
	return false
}

// EligibilitiesForRole maps a caller role to the eligibility tags it may see.
// FACULTY is not restricted by eligibility and has no entry here.
func EligibilitiesForRole(role string) []string {
	switch role {
	case RoleStudent:
		return []string{EligibilityMedibridgeOnly, EligibilityBoth}
	case RoleExternal:
		return []string{EligibilityExternalOnly, EligibilityBoth}
	}
	return nil
}
