package repository

import (
	"medibridge/internal/models"

	"gorm.io/gorm"
)

type ReferralRepository interface {
	FindByCode(code string) (*models.ReferralCode, error)
	Create(code *models.ReferralCode) error
	FindAll() ([]models.ReferralCode, error)
	Save(code *models.ReferralCode) error
	DeleteByCode(code string) error
}

type referralRepository struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) ReferralRepository {
	return &referralRepository{db: db}
}

func (rr *referralRepository) FindByCode(code string) (*models.ReferralCode, error) {
	var referral models.ReferralCode
	err := rr.db.Where("code = ?", code).First(&referral).Error
	if err != nil {
		return nil, err
	}
	return &referral, nil
}

func (rr *referralRepository) Create(code *models.ReferralCode) error {
	return rr.db.Create(code).Error
}

func (rr *referralRepository) FindAll() ([]models.ReferralCode, error) {
	var codes []models.ReferralCode
	err := rr.db.Order("created_at DESC").Find(&codes).Error
	return codes, err
}

func (rr *referralRepository) Save(code *models.ReferralCode) error {
	return rr.db.Save(code).Error
}

func (rr *referralRepository) DeleteByCode(code string) error {
	result := rr.db.Unscoped().Where("code = ?", code).Delete(&models.ReferralCode{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
