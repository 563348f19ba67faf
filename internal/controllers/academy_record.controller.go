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

// AcademyRecordController is plain CRUD over the academy's own student
// roster, unrelated to portal accounts.
type AcademyRecordController struct {
	repo repository.AcademyStudentRepository
}

func NewAcademyRecordController(repo repository.AcademyStudentRepository) *AcademyRecordController {
	return &AcademyRecordController{repo: repo}
}

func (rc *AcademyRecordController) CreateStudent(c *gin.Context) {
	var student models.AcademyStudent
	if err := c.ShouldBindJSON(&student); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := rc.repo.Create(&student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Admission number already exists",
				"error":   "Duplicate admission number",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create student record",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Student record created successfully",
		"data":    student,
	})
}

func (rc *AcademyRecordController) GetStudents(c *gin.Context) {
	students, err := rc.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch student records",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Student records retrieved successfully",
		"data":    students,
	})
}

func (rc *AcademyRecordController) GetStudentByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid student ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	student, err := rc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Student not found",
			"error":   "No student record exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Student record retrieved successfully",
		"data":    student,
	})
}

func (rc *AcademyRecordController) UpdateStudent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid student ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	student, err := rc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Student not found",
			"error":   "No student record exists with the provided ID",
		})
		return
	}

	var update models.AcademyStudent
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	student.AdmissionNo = update.AdmissionNo
	student.Name = update.Name

	if err := rc.repo.Update(student); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update student record",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Student record updated successfully",
		"data":    student,
	})
}

func (rc *AcademyRecordController) DeleteStudent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid student ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := rc.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Student not found",
				"error":   "No student record exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete student record",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Student record deleted successfully",
		"data":    nil,
	})
}
