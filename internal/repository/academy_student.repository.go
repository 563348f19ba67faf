package repository

import (
	"medibridge/internal/models"

	"gorm.io/gorm"
)

type AcademyStudentRepository interface {
	Create(student *models.AcademyStudent) error
	FindAll() ([]models.AcademyStudent, error)
	FindByID(id uint) (*models.AcademyStudent, error)
	Update(student *models.AcademyStudent) error
	Delete(id uint) error
}

type academyStudentRepository struct {
	db *gorm.DB
}

func NewAcademyStudentRepository(db *gorm.DB) AcademyStudentRepository {
	return &academyStudentRepository{db: db}
}

func (r *academyStudentRepository) Create(student *models.AcademyStudent) error {
	return r.db.Create(student).Error
}

func (r *academyStudentRepository) FindAll() ([]models.AcademyStudent, error) {
	var students []models.AcademyStudent
	err := r.db.Order("created_at DESC").Find(&students).Error
	return students, err
}

func (r *academyStudentRepository) FindByID(id uint) (*models.AcademyStudent, error) {
	var student models.AcademyStudent
	err := r.db.First(&student, id).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *academyStudentRepository) Update(student *models.AcademyStudent) error {
	return r.db.Save(student).Error
}

func (r *academyStudentRepository) Delete(id uint) error {
	result := r.db.Unscoped().Delete(&models.AcademyStudent{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
