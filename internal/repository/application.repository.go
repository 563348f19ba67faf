package repository

import (
	"medibridge/internal/models"

	"gorm.io/gorm"
)

type ApplicationRepository interface {
	CreateApplication(application *models.Application) error
	FindByJobAndUser(jobID, userID uint) (*models.Application, error)
	FindByJobID(jobID uint) ([]models.Application, error)
	GetApplicationWithJob(id uint) (*models.Application, error)
	UpdateStatus(id uint, status string) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (ar *applicationRepository) CreateApplication(application *models.Application) error {
	return ar.db.Create(application).Error
}

func (ar *applicationRepository) FindByJobAndUser(jobID, userID uint) (*models.Application, error) {
	var application models.Application
	err := ar.db.Where("job_id = ? AND user_id = ?", jobID, userID).First(&application).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (ar *applicationRepository) FindByJobID(jobID uint) ([]models.Application, error) {
	var applications []models.Application
	err := ar.db.Preload("User").
		Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&applications).Error
	return applications, err
}

func (ar *applicationRepository) GetApplicationWithJob(id uint) (*models.Application, error) {
	var application models.Application
	err := ar.db.Preload("Job").Preload("User").First(&application, id).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (ar *applicationRepository) UpdateStatus(id uint, status string) error {
	return ar.db.Model(&models.Application{}).Where("id = ?", id).Update("status", status).Error
}
