package repository

import (
	"medibridge/internal/models"

	"gorm.io/gorm"
)

type StudentProfileRepository interface {
	FindByUserID(userID uint) (*models.StudentProfile, error)
	Upsert(profile *models.StudentProfile) error
}

type studentProfileRepository struct {
	db *gorm.DB
}

func NewStudentProfileRepository(db *gorm.DB) StudentProfileRepository {
	return &studentProfileRepository{db: db}
}

func (r *studentProfileRepository) FindByUserID(userID uint) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert saves the profile, reusing the existing row for the user when one
// exists so the one-to-one invariant holds.
func (r *studentProfileRepository) Upsert(profile *models.StudentProfile) error {
	var existing models.StudentProfile
	err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error
	if err == nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		return r.db.Save(profile).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.Create(profile).Error
}
