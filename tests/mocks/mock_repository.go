package mocks

import (
	"context"
	"mime/multipart"

	"medibridge/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(email, passwordHash string) error {
	args := m.Called(email, passwordHash)
	return args.Error(0)
}

// Shared MockReferralRepository
type MockReferralRepository struct {
	mock.Mock
}

func (m *MockReferralRepository) FindByCode(code string) (*models.ReferralCode, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReferralCode), args.Error(1)
}

func (m *MockReferralRepository) Create(code *models.ReferralCode) error {
	args := m.Called(code)
	return args.Error(0)
}

func (m *MockReferralRepository) FindAll() ([]models.ReferralCode, error) {
	args := m.Called()
	return args.Get(0).([]models.ReferralCode), args.Error(1)
}

func (m *MockReferralRepository) Save(code *models.ReferralCode) error {
	args := m.Called(code)
	return args.Error(0)
}

func (m *MockReferralRepository) DeleteByCode(code string) error {
	args := m.Called(code)
	return args.Error(0)
}

// Shared MockOtpRepository
type MockOtpRepository struct {
	mock.Mock
}

func (m *MockOtpRepository) CreateOtp(otp *models.Otp) error {
	args := m.Called(otp)
	return args.Error(0)
}

func (m *MockOtpRepository) FindLatestByEmail(email string) (*models.Otp, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Otp), args.Error(1)
}

// Shared MockStudentProfileRepository
type MockStudentProfileRepository struct {
	mock.Mock
}

func (m *MockStudentProfileRepository) FindByUserID(userID uint) (*models.StudentProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudentProfile), args.Error(1)
}

func (m *MockStudentProfileRepository) Upsert(profile *models.StudentProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

// Shared MockJobRepository
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) CreateJob(job *models.Job) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockJobRepository) GetJobByID(id uint) (*models.Job, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) UpdateJob(job *models.Job) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockJobRepository) DeleteJobByOwner(id, ownerID uint) error {
	args := m.Called(id, ownerID)
	return args.Error(0)
}

func (m *MockJobRepository) FindAll() ([]models.Job, error) {
	args := m.Called()
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobRepository) FindByEligibility(eligibilities []string) ([]models.Job, error) {
	args := m.Called(eligibilities)
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobRepository) FindPublic(eligibilities []string, titleSearch string) ([]models.Job, error) {
	args := m.Called(eligibilities, titleSearch)
	return args.Get(0).([]models.Job), args.Error(1)
}

// Shared MockApplicationRepository
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) CreateApplication(application *models.Application) error {
	args := m.Called(application)
	return args.Error(0)
}

func (m *MockApplicationRepository) FindByJobAndUser(jobID, userID uint) (*models.Application, error) {
	args := m.Called(jobID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) FindByJobID(jobID uint) ([]models.Application, error) {
	args := m.Called(jobID)
	return args.Get(0).([]models.Application), args.Error(1)
}

func (m *MockApplicationRepository) GetApplicationWithJob(id uint) (*models.Application, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) UpdateStatus(id uint, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// Shared MockAcademyStudentRepository
type MockAcademyStudentRepository struct {
	mock.Mock
}

func (m *MockAcademyStudentRepository) Create(student *models.AcademyStudent) error {
	args := m.Called(student)
	return args.Error(0)
}

func (m *MockAcademyStudentRepository) FindAll() ([]models.AcademyStudent, error) {
	args := m.Called()
	return args.Get(0).([]models.AcademyStudent), args.Error(1)
}

func (m *MockAcademyStudentRepository) FindByID(id uint) (*models.AcademyStudent, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AcademyStudent), args.Error(1)
}

func (m *MockAcademyStudentRepository) Update(student *models.AcademyStudent) error {
	args := m.Called(student)
	return args.Error(0)
}

func (m *MockAcademyStudentRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockMailer stands in for the SMTP collaborator.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(recipient, subject, message string) error {
	args := m.Called(recipient, subject, message)
	return args.Error(0)
}

// MockResumeStore stands in for the Cloudinary collaborator.
type MockResumeStore struct {
	mock.Mock
}

func (m *MockResumeStore) UploadResume(ctx context.Context, file *multipart.FileHeader) (string, string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.String(1), args.Error(2)
}
