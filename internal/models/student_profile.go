package models

import (
	"time"

	"gorm.io/gorm"
)

type StudentProfile struct {
	ID            uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt     time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	UserID        uint           `gorm:"unique" json:"user_id" example:"1"`
	Phone         string         `json:"phone" example:"9876543210"`
	Address       string         `json:"address" example:"12 College Road"`
	Age           *int           `json:"age" example:"22"`
	Sex           string         `json:"sex" example:"FEMALE"`
	Qualification string         `json:"qualification" example:"BSc Nursing"`
	University    string         `json:"university" example:"State University"`
	CvURL         string         `gorm:"column:cv_url" json:"cv_url" example:"https://res.example.com/cv_uploads/cv.pdf"`
	CvPublicID    string         `gorm:"column:cv_public_id" json:"cv_public_id" example:"cv_uploads/cv-1a2b3c"`
}

// RequiredProfileFields gates job applications for students.
var RequiredProfileFields = []string{
	"phone",
	"address",
	"age",
	"sex",
	"qualification",
	"university",
	"cvUrl",
}

// MissingFields returns the names of required fields that are still unset,
// in the order of RequiredProfileFields.
func (p *StudentProfile) MissingFields() []string {
	missing := []string{}
	for _, field := range RequiredProfileFields {
		switch field {
		case "phone":
			if p.Phone == "" {
				missing = append(missing, field)
			}
		case "address":
			if p.Address == "" {
				missing = append(missing, field)
			}
		case "age":
			if p.Age == nil || *p.Age == 0 {
				missing = append(missing, field)
			}
		case "sex":
			if p.Sex == "" {
				missing = append(missing, field)
			}
		case "qualification":
			if p.Qualification == "" {
				missing = append(missing, field)
			}
		case "university":
			if p.University == "" {
				missing = append(missing, field)
			}
		case "cvUrl":
			if p.CvURL == "" {
				missing = append(missing, field)
			}
		}
	}
	return missing
}

func (p *StudentProfile) IsComplete() bool {
	return len(p.MissingFields()) == 0
}
