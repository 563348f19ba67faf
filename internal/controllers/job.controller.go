package controllers

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"medibridge/internal/cache"
	"medibridge/internal/models"
	"medibridge/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	recruiterEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	jobPhoneRegex       = regexp.MustCompile(`^[0-9]{7,15}$`)
)

const publicJobsCacheTTL = time.Minute

type JobRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Eligibility    string `json:"eligibility"`
	RecruiterEmail string `json:"recruiter_email"`
	Phone          string `json:"phone"`
}

// JobUpdateRequest enumerates exactly the mutable fields; anything else in
// the body is ignored. Phone and ownership are not mutable.
type JobUpdateRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	Eligibility    *string `json:"eligibility"`
	RecruiterEmail *string `json:"recruiter_email"`
}

type BulkJobsRequest struct {
	Jobs []JobRequest `json:"jobs" binding:"required,min=1"`
}

type JobController struct {
	jobRepo repository.JobRepository
	cache   *cache.RedisClient
}

func NewJobController(jobRepo repository.JobRepository, jobCache *cache.RedisClient) *JobController {
	return &JobController{jobRepo: jobRepo, cache: jobCache}
}

// validateJobRequest applies the posting rules; the returned string is the
// reason reported to the caller, empty when the request is acceptable.
func validateJobRequest(req JobRequest) string {
	if req.Title == "" || req.Description == "" || req.Eligibility == "" {
		return "Missing required fields: title, description, eligibility"
	}
	if !models.ValidEligibility(req.Eligibility) {
		return "Eligibility must be MEDIBRIDGE_ONLY, EXTERNAL_ONLY or BOTH"
	}
	if req.RecruiterEmail == "" && req.Phone == "" {
		return "Either recruiterEmail or phone is required"
	}
	if req.RecruiterEmail != "" && !recruiterEmailRegex.MatchString(req.RecruiterEmail) {
		return "Invalid recruiter email format"
	}
	if req.Phone != "" && !jobPhoneRegex.MatchString(req.Phone) {
		return "Invalid phone number format"
	}
	return ""
}

func jobFromRequest(req JobRequest, ownerID uint) *models.Job {
	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		Eligibility: req.Eligibility,
		PostedByID:  ownerID,
	}
	if req.RecruiterEmail != "" {
		job.RecruiterEmail = &req.RecruiterEmail
	}
	if req.Phone != "" {
		job.Phone = &req.Phone
	}
	return job
}

func (jc *JobController) invalidatePublicCache() {
	if jc.cache == nil {
		return
	}
	if err := jc.cache.InvalidatePublicJobs(); err != nil {
		// Stale listings age out with the TTL; nothing else to do here.
		return
	}
}

func (jc *JobController) CreateJob(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if reason := validateJobRequest(req); reason != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": reason,
			"error":   reason,
		})
		return
	}

	userID, _ := c.Get("user_id")
	job := jobFromRequest(req, userID.(uint))

	if err := jc.jobRepo.CreateJob(job); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create job",
			"error":   "Database error",
		})
		return
	}

	jc.invalidatePublicCache()

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Job created successfully",
		"data":    job,
	})
}

// BulkCreateJobs processes each entry independently; one bad entry is
// recorded under failed and does not abort the batch.
func (jc *JobController) BulkCreateJobs(c *gin.Context) {
	var req BulkJobsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Jobs must be a non-empty array",
			"error":   err.Error(),
		})
		return
	}

	userID, _ := c.Get("user_id")
	ownerID := userID.(uint)

	added := []models.Job{}
	failed := []gin.H{}

	for _, entry := range req.Jobs {
		if reason := validateJobRequest(entry); reason != "" {
			failed = append(failed, gin.H{"job": entry, "reason": reason})
			continue
		}

		job := jobFromRequest(entry, ownerID)
		if err := jc.jobRepo.CreateJob(job); err != nil {
			failed = append(failed, gin.H{"job": entry, "reason": err.Error()})
			continue
		}
		added = append(added, *job)
	}

	jc.invalidatePublicCache()

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Bulk job processing complete",
		"results": gin.H{
			"added":  added,
			"failed": failed,
		},
	})
}

// UpdateJob is faculty-gated but deliberately not owner-scoped; only the
// delete path checks ownership. See DESIGN.md.
func (jc *JobController) UpdateJob(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid job ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	job, err := jc.jobRepo.GetJobByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Job not found",
			"error":   "No job exists with the provided ID",
		})
		return
	}

	if req.RecruiterEmail != nil && !recruiterEmailRegex.MatchString(*req.RecruiterEmail) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recruiter email format",
			"error":   "Invalid recruiter email format",
		})
		return
	}
	if req.Eligibility != nil && !models.ValidEligibility(*req.Eligibility) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Eligibility must be MEDIBRIDGE_ONLY, EXTERNAL_ONLY or BOTH",
			"error":   "Invalid eligibility value",
		})
		return
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Eligibility != nil {
		job.Eligibility = *req.Eligibility
	}
	if req.RecruiterEmail != nil {
		job.RecruiterEmail = req.RecruiterEmail
	}

	if err := jc.jobRepo.UpdateJob(job); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update job",
			"error":   "Database error",
		})
		return
	}

	jc.invalidatePublicCache()

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Job updated successfully",
		"data":    job,
	})
}

// DeleteJob removes the job and every application referencing it. An
// ownership mismatch reads the same as a missing job.
func (jc *JobController) DeleteJob(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid job ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	userID, _ := c.Get("user_id")

	if err := jc.jobRepo.DeleteJobByOwner(uint(id), userID.(uint)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Job not found or not yours",
				"error":   "No job matches",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete job",
			"error":   "Database error",
		})
		return
	}

	jc.invalidatePublicCache()

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Job deleted successfully",
		"data":    nil,
	})
}

func (jc *JobController) GetJobsForFaculty(c *gin.Context) {
	jobs, err := jc.jobRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch jobs",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Jobs retrieved successfully",
		"data":    jobs,
	})
}

// GetJobsForStudentOrExternal filters the catalog by the caller's role.
func (jc *JobController) GetJobsForStudentOrExternal(c *gin.Context) {
	role, _ := c.Get("role")

	eligibilities := models.EligibilitiesForRole(role.(string))
	if eligibilities == nil {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Unauthorized role",
			"error":   "Role may not browse jobs",
		})
		return
	}

	jobs, err := jc.jobRepo.FindByEligibility(eligibilities)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch jobs",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Jobs retrieved successfully",
		"data":    jobs,
	})
}

// GetJobsPublic serves the unauthenticated listing, restricted to
// EXTERNAL_ONLY and BOTH, with an optional case-insensitive title search.
func (jc *JobController) GetJobsPublic(c *gin.Context) {
	search := c.Query("search")

	if jc.cache != nil {
		if jobs, found, err := jc.cache.GetPublicJobs(search); err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Jobs retrieved successfully",
				"data":    jobs,
			})
			return
		}
	}

	eligibilities := []string{models.EligibilityExternalOnly, models.EligibilityBoth}
	jobs, err := jc.jobRepo.FindPublic(eligibilities, search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch jobs",
			"error":   "Database error",
		})
		return
	}

	if jc.cache != nil {
		_ = jc.cache.StorePublicJobs(search, jobs, publicJobsCacheTTL)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Jobs retrieved successfully",
		"data":    jobs,
	})
}
