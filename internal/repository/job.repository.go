package repository

import (
	"medibridge/internal/models"

	"gorm.io/gorm"
)

type JobRepository interface {
	CreateJob(job *models.Job) error
	GetJobByID(id uint) (*models.Job, error)
	UpdateJob(job *models.Job) error
	DeleteJobByOwner(id, ownerID uint) error
	FindAll() ([]models.Job, error)
	FindByEligibility(eligibilities []string) ([]models.Job, error)
	FindPublic(eligibilities []string, titleSearch string) ([]models.Job, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (jr *jobRepository) CreateJob(job *models.Job) error {
	return jr.db.Create(job).Error
}

func (jr *jobRepository) GetJobByID(id uint) (*models.Job, error) {
	var job models.Job
	err := jr.db.First(&job, id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (jr *jobRepository) UpdateJob(job *models.Job) error {
	return jr.db.Save(job).Error
}

// DeleteJobByOwner removes the job only when ownerID posted it, then cascades
// to its applications in the same transaction. An ownership mismatch is
// reported as ErrRecordNotFound, indistinguishable from a missing job.
func (jr *jobRepository) DeleteJobByOwner(id, ownerID uint) error {
	return jr.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Unscoped().Where("id = ? AND posted_by_id = ?", id, ownerID).Delete(&models.Job{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Unscoped().Where("job_id = ?", id).Delete(&models.Application{}).Error
	})
}

func (jr *jobRepository) FindAll() ([]models.Job, error) {
	var jobs []models.Job
	err := jr.db.Preload("PostedBy").Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (jr *jobRepository) FindByEligibility(eligibilities []string) ([]models.Job, error) {
	var jobs []models.Job
	err := jr.db.Preload("PostedBy").
		Where("eligibility IN ?", eligibilities).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (jr *jobRepository) FindPublic(eligibilities []string, titleSearch string) ([]models.Job, error) {
	query := jr.db.Preload("PostedBy").Where("eligibility IN ?", eligibilities)
	if titleSearch != "" {
		query = query.Where("title ILIKE ?", "%"+titleSearch+"%")
	}
	var jobs []models.Job
	err := query.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}
