package repository

import (
	"medibridge/internal/models"

	"gorm.io/gorm"
)

type OtpRepository interface {
	CreateOtp(otp *models.Otp) error
	FindLatestByEmail(email string) (*models.Otp, error)
}

type otpRepository struct {
	db *gorm.DB
}

func NewOtpRepository(db *gorm.DB) OtpRepository {
	return &otpRepository{db: db}
}

func (or *otpRepository) CreateOtp(otp *models.Otp) error {
	return or.db.Create(otp).Error
}

// FindLatestByEmail returns the newest code issued for email. Older rows are
// kept as history and never consulted.
func (or *otpRepository) FindLatestByEmail(email string) (*models.Otp, error) {
	var otp models.Otp
	err := or.db.Where("email = ?", email).Order("created_at DESC").First(&otp).Error
	if err != nil {
		return nil, err
	}
	return &otp, nil
}
