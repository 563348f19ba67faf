package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"medibridge/internal/controllers"
	"medibridge/internal/models"
	"medibridge/internal/utils"
	"medibridge/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Test helper functions
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func setupAuthControllerWithMocks() (*controllers.AuthController, *mocks.MockUserRepository, *mocks.MockReferralRepository, *mocks.MockOtpRepository, *mocks.MockMailer) {
	mockUserRepo := new(mocks.MockUserRepository)
	mockReferralRepo := new(mocks.MockReferralRepository)
	mockOtpRepo := new(mocks.MockOtpRepository)
	mockMailer := new(mocks.MockMailer)
	controller := controllers.NewAuthController(mockUserRepo, mockReferralRepo, mockOtpRepo, mockMailer)
	return controller, mockUserRepo, mockReferralRepo, mockOtpRepo, mockMailer
}

func addAuthContext(userID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}

func performJSONRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	return response
}

func TestRegister(t *testing.T) {
	os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	defer os.Unsetenv("JWT_SECRET_KEY")

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockUserRepository, *mocks.MockReferralRepository)
		expectedStatus int
		expectedRole   string
	}{
		{
			name: "register without referral code defaults to EXTERNAL",
			requestBody: map[string]interface{}{
				"name":     "John Doe",
				"email":    "john@example.com",
				"password": "password123",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, referralRepo *mocks.MockReferralRepository) {
				userRepo.On("GetUserByEmail", "john@example.com").Return(nil, gorm.ErrRecordNotFound)
				userRepo.On("CreateUser", mock.MatchedBy(func(u *models.User) bool {
					return u.Role == models.RoleExternal
				})).Return(nil).Run(func(args mock.Arguments) {
					args.Get(0).(*models.User).ID = 1
				})
			},
			expectedStatus: http.StatusCreated,
			expectedRole:   models.RoleExternal,
		},
		{
			name: "register with valid referral code becomes STUDENT",
			requestBody: map[string]interface{}{
				"name":          "Jane Doe",
				"email":         "jane@example.com",
				"password":      "password123",
				"referral_code": "MBR-2024",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, referralRepo *mocks.MockReferralRepository) {
				userRepo.On("GetUserByEmail", "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
				referralRepo.On("FindByCode", "MBR-2024").Return(&models.ReferralCode{Code: "MBR-2024", Valid: true}, nil)
				userRepo.On("CreateUser", mock.MatchedBy(func(u *models.User) bool {
					return u.Role == models.RoleStudent
				})).Return(nil).Run(func(args mock.Arguments) {
					args.Get(0).(*models.User).ID = 2
				})
			},
			expectedStatus: http.StatusCreated,
			expectedRole:   models.RoleStudent,
		},
		{
			name: "register with unknown referral code is rejected",
			requestBody: map[string]interface{}{
				"name":          "Jane Doe",
				"email":         "jane@example.com",
				"password":      "password123",
				"referral_code": "NOPE",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, referralRepo *mocks.MockReferralRepository) {
				userRepo.On("GetUserByEmail", "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
				referralRepo.On("FindByCode", "NOPE").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "register with disabled referral code is rejected",
			requestBody: map[string]interface{}{
				"name":          "Jane Doe",
				"email":         "jane@example.com",
				"password":      "password123",
				"referral_code": "OLD-CODE",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, referralRepo *mocks.MockReferralRepository) {
				userRepo.On("GetUserByEmail", "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
				referralRepo.On("FindByCode", "OLD-CODE").Return(&models.ReferralCode{Code: "OLD-CODE", Valid: false}, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "register with existing email is rejected",
			requestBody: map[string]interface{}{
				"name":     "John Doe",
				"email":    "taken@example.com",
				"password": "password123",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, referralRepo *mocks.MockReferralRepository) {
				userRepo.On("GetUserByEmail", "taken@example.com").Return(&models.User{ID: 9, Email: "taken@example.com"}, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate key from concurrent registration is a conflict",
			requestBody: map[string]interface{}{
				"name":     "John Doe",
				"email":    "racy@example.com",
				"password": "password123",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, referralRepo *mocks.MockReferralRepository) {
				userRepo.On("GetUserByEmail", "racy@example.com").Return(nil, gorm.ErrRecordNotFound)
				userRepo.On("CreateUser", mock.Anything).Return(gorm.ErrDuplicatedKey)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockUserRepo, mockReferralRepo, _, _ := setupAuthControllerWithMocks()
			tt.setupMocks(mockUserRepo, mockReferralRepo)

			router := setupTestRouter()
			router.POST("/api/auth/register", controller.Register)

			w := performJSONRequest(router, http.MethodPost, "/api/auth/register", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				response := parseResponse(t, w)
				data := response["data"].(map[string]interface{})
				user := data["user"].(map[string]interface{})
				assert.Equal(t, tt.expectedRole, user["role"])
				assert.NotEmpty(t, data["token"])
			} else {
				mockUserRepo.AssertNotCalled(t, "CreateUser", mock.MatchedBy(func(u *models.User) bool {
					return u.Role == models.RoleStudent
				}))
			}

			mockUserRepo.AssertExpectations(t)
			mockReferralRepo.AssertExpectations(t)
		})
	}
}

func TestLogin(t *testing.T) {
	os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	defer os.Unsetenv("JWT_SECRET_KEY")

	passwordHash, err := utils.HashPassword("password123")
	assert.NoError(t, err)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful login",
			requestBody: map[string]interface{}{
				"email":    "john@example.com",
				"password": "password123",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("GetUserByEmail", "john@example.com").Return(&models.User{
					ID:       1,
					Email:    "john@example.com",
					Password: passwordHash,
					Role:     models.RoleExternal,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "User logged in successfully",
		},
		{
			name: "unknown email",
			requestBody: map[string]interface{}{
				"email":    "nobody@example.com",
				"password": "password123",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("GetUserByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid credentials",
		},
		{
			name: "wrong password",
			requestBody: map[string]interface{}{
				"email":    "john@example.com",
				"password": "wrongpassword",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("GetUserByEmail", "john@example.com").Return(&models.User{
					ID:       1,
					Email:    "john@example.com",
					Password: passwordHash,
					Role:     models.RoleExternal,
				}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockUserRepo, _, _, _ := setupAuthControllerWithMocks()
			tt.setupMocks(mockUserRepo)

			router := setupTestRouter()
			router.POST("/api/auth/login", controller.Login)

			w := performJSONRequest(router, http.MethodPost, "/api/auth/login", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			response := parseResponse(t, w)
			assert.Equal(t, tt.expectedMsg, response["message"])

			mockUserRepo.AssertExpectations(t)
		})
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLoginDoesNotLeakAccountExistence(t *testing.T) {
	os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	defer os.Unsetenv("JWT_SECRET_KEY")

	passwordHash, _ := utils.HashPassword("password123")

	controller, mockUserRepo, _, _, _ := setupAuthControllerWithMocks()
	mockUserRepo.On("GetUserByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("GetUserByEmail", "john@example.com").Return(&models.User{
		ID: 1, Email: "john@example.com", Password: passwordHash, Role: models.RoleExternal,
	}, nil)

	router := setupTestRouter()
	router.POST("/api/auth/login", controller.Login)

	unknown := performJSONRequest(router, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email": "nobody@example.com", "password": "password123",
	})
	wrongPass := performJSONRequest(router, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email": "john@example.com", "password": "nope-nope",
	})

	assert.Equal(t, unknown.Code, wrongPass.Code)
	assert.Equal(t, parseResponse(t, unknown)["message"], parseResponse(t, wrongPass)["message"])
}

func TestCreateStudentForcesStudentRole(t *testing.T) {
	controller, mockUserRepo, _, _, _ := setupAuthControllerWithMocks()
	mockUserRepo.On("GetUserByEmail", "new.student@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("CreateUser", mock.MatchedBy(func(u *models.User) bool {
		return u.Role == models.RoleStudent
	})).Return(nil)

	router := setupTestRouter()
	router.POST("/api/faculty/students", addAuthContext(1, models.RoleFaculty), controller.CreateStudent)

	w := performJSONRequest(router, http.MethodPost, "/api/faculty/students", map[string]interface{}{
		"name":     "New Student",
		"email":    "new.student@example.com",
		"password": "password123",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	response := parseResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, models.RoleStudent, data["role"])
	mockUserRepo.AssertExpectations(t)
}

func TestResetPassword(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockUserRepository)
		expectedStatus int
	}{
		{
			name: "successful reset",
			requestBody: map[string]interface{}{
				"email":        "john@example.com",
				"new_password": "newpassword123",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("UpdatePassword", "john@example.com", mock.AnythingOfType("string")).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown email",
			requestBody: map[string]interface{}{
				"email":        "nobody@example.com",
				"new_password": "newpassword123",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("UpdatePassword", "nobody@example.com", mock.AnythingOfType("string")).Return(gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "persistence failure",
			requestBody: map[string]interface{}{
				"email":        "john@example.com",
				"new_password": "newpassword123",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("UpdatePassword", "john@example.com", mock.AnythingOfType("string")).Return(errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockUserRepo, _, _, _ := setupAuthControllerWithMocks()
			tt.setupMocks(mockUserRepo)

			router := setupTestRouter()
			router.POST("/api/auth/reset-password", controller.ResetPassword)

			w := performJSONRequest(router, http.MethodPost, "/api/auth/reset-password", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestForgotPasswordRequiresAccount(t *testing.T) {
	controller, mockUserRepo, _, mockOtpRepo, mockMailer := setupAuthControllerWithMocks()
	mockUserRepo.On("GetUserByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	router := setupTestRouter()
	router.POST("/api/auth/forgot-password", controller.ForgotPassword)

	w := performJSONRequest(router, http.MethodPost, "/api/auth/forgot-password", map[string]interface{}{
		"email": "nobody@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockOtpRepo.AssertNotCalled(t, "CreateOtp", mock.Anything)
	mockMailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}
