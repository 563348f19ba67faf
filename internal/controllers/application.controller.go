package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"medibridge/internal/models"
	"medibridge/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ApplicationController struct {
	applicationRepo repository.ApplicationRepository
	jobRepo         repository.JobRepository
	profileRepo     repository.StudentProfileRepository
}

func NewApplicationController(applicationRepo repository.ApplicationRepository, jobRepo repository.JobRepository, profileRepo repository.StudentProfileRepository) *ApplicationController {
	return &ApplicationController{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		profileRepo:     profileRepo,
	}
}

// Apply runs the gating pipeline: job exists, student profile complete,
// eligibility matches the caller's role, then an idempotent create. A second
// apply for the same (job, user) succeeds with already_applied instead of
// erroring.
func (ac *ApplicationController) Apply(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.Param("jobId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid job ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	userID, _ := c.Get("user_id")
	role, _ := c.Get("role")

	job, err := ac.jobRepo.GetJobByID(uint(jobID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Job not found",
			"error":   "No job exists with the provided ID",
		})
		return
	}

	if role == models.RoleStudent {
		profile, err := ac.profileRepo.FindByUserID(userID.(uint))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Complete your profile before applying",
				"missing": models.RequiredProfileFields,
			})
			return
		}
		if missing := profile.MissingFields(); len(missing) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Your profile is incomplete",
				"missing": missing,
			})
			return
		}
	}

	if role == models.RoleStudent && job.Eligibility == models.EligibilityExternalOnly {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "This job is for external candidates only",
			"error":   "Eligibility mismatch",
		})
		return
	}
	if role == models.RoleExternal && job.Eligibility == models.EligibilityMedibridgeOnly {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "This job is for Medibridge students only",
			"error":   "Eligibility mismatch",
		})
		return
	}

	if existing, err := ac.applicationRepo.FindByJobAndUser(uint(jobID), userID.(uint)); err == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":          "success",
			"message":         "Application already exists",
			"already_applied": true,
			"data":            existing,
		})
		return
	}

	application := &models.Application{
		JobID:  uint(jobID),
		UserID: userID.(uint),
		Status: models.StatusPending,
	}

	if err := ac.applicationRepo.CreateApplication(application); err != nil {
		// A concurrent apply can slip past the existence check; the unique
		// (job_id, user_id) index decides, and losing that race still means
		// "already applied".
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusOK, gin.H{
				"status":          "success",
				"message":         "Application already exists",
				"already_applied": true,
				"data":            nil,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to apply",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":          "success",
		"message":         "Applied successfully!",
		"already_applied": false,
		"data":            application,
	})
}

// GetApplicationsForJob is faculty-gated generically, not per-owner; any
// faculty caller may view any job's applicants. See DESIGN.md.
func (ac *ApplicationController) GetApplicationsForJob(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid job ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := ac.jobRepo.GetJobByID(uint(jobID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Job not found",
			"error":   "No job exists with the provided ID",
		})
		return
	}

	applications, err := ac.applicationRepo.FindByJobID(uint(jobID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch applications",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Applications retrieved successfully",
		"data":    applications,
	})
}

// UpdateStatus overwrites the application status. Only the owner of the
// parent job may do so; no transition order is enforced between statuses.
func (ac *ApplicationController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid application ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Status is required",
			"error":   err.Error(),
		})
		return
	}

	if !models.ValidApplicationStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid status",
			"error":   "Status must be PENDING, SHORTLISTED, REJECTED or ACCEPTED",
		})
		return
	}

	application, err := ac.applicationRepo.GetApplicationWithJob(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Application not found",
			"error":   "No application exists with the provided ID",
		})
		return
	}

	userID, _ := c.Get("user_id")
	if application.Job == nil || application.Job.PostedByID != userID.(uint) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Not authorized",
			"error":   "Only the job owner may update application status",
		})
		return
	}

	if err := ac.applicationRepo.UpdateStatus(uint(id), req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update status",
			"error":   "Database error",
		})
		return
	}

	application.Status = req.Status

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Status updated",
		"data":    application,
	})
}
