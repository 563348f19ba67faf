package tests

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"medibridge/internal/controllers"
	"medibridge/internal/models"
	"medibridge/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupProfileControllerWithMocks() (*controllers.StudentProfileController, *mocks.MockStudentProfileRepository, *mocks.MockResumeStore) {
	mockProfileRepo := new(mocks.MockStudentProfileRepository)
	mockResumeStore := new(mocks.MockResumeStore)
	controller := controllers.NewStudentProfileController(mockProfileRepo, mockResumeStore)
	return controller, mockProfileRepo, mockResumeStore
}

func performFormRequest(router *gin.Engine, method, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetProfileReturnsEmptyObjectWhenMissing(t *testing.T) {
	controller, mockProfileRepo, _ := setupProfileControllerWithMocks()
	mockProfileRepo.On("FindByUserID", uint(5)).Return(nil, gorm.ErrRecordNotFound)

	router := setupTestRouter()
	router.GET("/api/student/profile", addAuthContext(5, models.RoleStudent), controller.GetProfile)

	w := performJSONRequest(router, http.MethodGet, "/api/student/profile", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := parseResponse(t, w)
	assert.Empty(t, response["data"])
}

func TestUpdateProfileUpsertsFormFields(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*mocks.MockStudentProfileRepository)
		form       url.Values
	}{
		{
			name: "creates profile on first write",
			setupMocks: func(repo *mocks.MockStudentProfileRepository) {
				repo.On("FindByUserID", uint(5)).Return(nil, gorm.ErrRecordNotFound)
				repo.On("Upsert", mock.MatchedBy(func(p *models.StudentProfile) bool {
					return p.UserID == 5 && p.Phone == "9876543210" && p.Age != nil && *p.Age == 22
				})).Return(nil)
			},
			form: url.Values{
				"phone": {"9876543210"},
				"age":   {"22"},
			},
		},
		{
			name: "merges into existing profile",
			setupMocks: func(repo *mocks.MockStudentProfileRepository) {
				repo.On("FindByUserID", uint(5)).Return(&models.StudentProfile{
					ID: 3, UserID: 5, Phone: "9876543210", Address: "12 College Road",
				}, nil)
				repo.On("Upsert", mock.MatchedBy(func(p *models.StudentProfile) bool {
					return p.ID == 3 && p.Phone == "9876543210" && p.University == "State University"
				})).Return(nil)
			},
			form: url.Values{
				"university": {"State University"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockProfileRepo, _ := setupProfileControllerWithMocks()
			tt.setupMocks(mockProfileRepo)

			router := setupTestRouter()
			router.PUT("/api/student/profile", addAuthContext(5, models.RoleStudent), controller.UpdateProfile)

			w := performFormRequest(router, http.MethodPut, "/api/student/profile", tt.form)

			assert.Equal(t, http.StatusOK, w.Code)
			mockProfileRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateProfileRejectsBadAge(t *testing.T) {
	controller, mockProfileRepo, _ := setupProfileControllerWithMocks()
	mockProfileRepo.On("FindByUserID", uint(5)).Return(nil, gorm.ErrRecordNotFound)

	router := setupTestRouter()
	router.PUT("/api/student/profile", addAuthContext(5, models.RoleStudent), controller.UpdateProfile)

	w := performFormRequest(router, http.MethodPut, "/api/student/profile", url.Values{
		"age": {"twenty-two"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockProfileRepo.AssertNotCalled(t, "Upsert", mock.Anything)
}

func TestCheckCompletion(t *testing.T) {
	tests := []struct {
		name             string
		setupMocks       func(*mocks.MockStudentProfileRepository)
		expectedComplete bool
	}{
		{
			name: "no profile is incomplete",
			setupMocks: func(repo *mocks.MockStudentProfileRepository) {
				repo.On("FindByUserID", uint(5)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedComplete: false,
		},
		{
			name: "partial profile is incomplete",
			setupMocks: func(repo *mocks.MockStudentProfileRepository) {
				partial := completeProfile(5)
				partial.CvURL = ""
				repo.On("FindByUserID", uint(5)).Return(partial, nil)
			},
			expectedComplete: false,
		},
		{
			name: "all required fields set is complete",
			setupMocks: func(repo *mocks.MockStudentProfileRepository) {
				repo.On("FindByUserID", uint(5)).Return(completeProfile(5), nil)
			},
			expectedComplete: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockProfileRepo, _ := setupProfileControllerWithMocks()
			tt.setupMocks(mockProfileRepo)

			router := setupTestRouter()
			router.GET("/api/student/profile/check", addAuthContext(5, models.RoleStudent), controller.CheckCompletion)

			w := performJSONRequest(router, http.MethodGet, "/api/student/profile/check", nil)

			assert.Equal(t, http.StatusOK, w.Code)
			data := parseResponse(t, w)["data"].(map[string]interface{})
			assert.Equal(t, tt.expectedComplete, data["complete"])
			mockProfileRepo.AssertExpectations(t)
		})
	}
}
