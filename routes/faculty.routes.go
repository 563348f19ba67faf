package routes

import (
	"medibridge/internal/controllers"
	"medibridge/internal/middleware"
	"medibridge/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterFacultyRoutes(
	router *gin.Engine,
	authController *controllers.AuthController,
	jobController *controllers.JobController,
	applicationController *controllers.ApplicationController,
	referralController *controllers.ReferralController,
	academyRecordController *controllers.AcademyRecordController,
) {
	facultyRoutes := router.Group("/api/faculty")
	facultyRoutes.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleFaculty))
	{
		facultyRoutes.POST("/jobs", jobController.CreateJob)
		facultyRoutes.GET("/jobs", jobController.GetJobsForFaculty)
		// Update is faculty-gated but not owner-scoped; only delete checks
		// ownership. Documented policy, see DESIGN.md.
		facultyRoutes.PUT("/jobs/:id", jobController.UpdateJob)
		facultyRoutes.DELETE("/jobs/:id", jobController.DeleteJob)
		facultyRoutes.POST("/jobs/bulk", jobController.BulkCreateJobs)

		facultyRoutes.GET("/jobs/:id/applications", applicationController.GetApplicationsForJob)
		facultyRoutes.PATCH("/applications/:id/status", applicationController.UpdateStatus)

		facultyRoutes.POST("/students", authController.CreateStudent)

		facultyRoutes.POST("/referral/add", referralController.AddReferralCodes)
		facultyRoutes.GET("/referral/all", referralController.GetReferralCodes)
		facultyRoutes.DELETE("/referral/:code", referralController.DeleteReferralCode)
		facultyRoutes.PATCH("/referral/:code/toggle", referralController.ToggleReferralStatus)

		facultyRoutes.POST("/records", academyRecordController.CreateStudent)
		facultyRoutes.GET("/records", academyRecordController.GetStudents)
		facultyRoutes.GET("/records/:id", academyRecordController.GetStudentByID)
		facultyRoutes.PUT("/records/:id", academyRecordController.UpdateStudent)
		facultyRoutes.DELETE("/records/:id", academyRecordController.DeleteStudent)
	}
}
