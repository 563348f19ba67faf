package controllers

import (
	"net/http"
	"strconv"

	"medibridge/internal/models"
	"medibridge/internal/repository"
	"medibridge/internal/storage"

	"github.com/gin-gonic/gin"
)

type StudentProfileController struct {
	profileRepo repository.StudentProfileRepository
	resumeStore storage.ResumeStore
}

func NewStudentProfileController(profileRepo repository.StudentProfileRepository, resumeStore storage.ResumeStore) *StudentProfileController {
	return &StudentProfileController{
		profileRepo: profileRepo,
		resumeStore: resumeStore,
	}
}

func (pc *StudentProfileController) GetProfile(c *gin.Context) {
	userID, _ := c.Get("user_id")

	profile, err := pc.profileRepo.FindByUserID(userID.(uint))
	if err != nil {
		// No profile yet is not an error for this read; the client sees an
		// empty object, matching the upsert-on-write lifecycle.
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "No profile yet",
			"data":    gin.H{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data":    profile,
	})
}

// UpdateProfile upserts the caller's profile from multipart form fields. A
// "cv" file, when present, is pushed to the resume store first and its URL
// and public id land on the profile.
func (pc *StudentProfileController) UpdateProfile(c *gin.Context) {
	userID, _ := c.Get("user_id")

	existing, err := pc.profileRepo.FindByUserID(userID.(uint))
	profile := &models.StudentProfile{UserID: userID.(uint)}
	if err == nil {
		profile = existing
	}

	if v := c.PostForm("phone"); v != "" {
		profile.Phone = v
	}
	if v := c.PostForm("address"); v != "" {
		profile.Address = v
	}
	if v := c.PostForm("age"); v != "" {
		age, convErr := strconv.Atoi(v)
		if convErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid age",
				"error":   "Age must be a number",
			})
			return
		}
		profile.Age = &age
	}
	if v := c.PostForm("sex"); v != "" {
		profile.Sex = v
	}
	if v := c.PostForm("qualification"); v != "" {
		profile.Qualification = v
	}
	if v := c.PostForm("university"); v != "" {
		profile.University = v
	}

	if file, fileErr := c.FormFile("cv"); fileErr == nil {
		url, publicID, uploadErr := pc.resumeStore.UploadResume(c.Request.Context(), file)
		if uploadErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to upload CV",
				"error":   uploadErr.Error(),
			})
			return
		}
		profile.CvURL = url
		profile.CvPublicID = publicID
	}

	if err := pc.profileRepo.Upsert(profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update profile",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully",
		"data":    profile,
	})
}

// CheckCompletion reports whether every field required before applying is
// populated.
func (pc *StudentProfileController) CheckCompletion(c *gin.Context) {
	userID, _ := c.Get("user_id")

	profile, err := pc.profileRepo.FindByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Profile completion checked",
			"data":    gin.H{"complete": false},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile completion checked",
		"data":    gin.H{"complete": profile.IsComplete()},
	})
}
