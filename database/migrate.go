package database

import (
	"log"

	"medibridge/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.ReferralCode{},
		&models.Otp{},
		&models.StudentProfile{},
		&models.Job{},
		&models.Application{},
		&models.AcademyStudent{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
