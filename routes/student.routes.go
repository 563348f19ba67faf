package routes

import (
	"medibridge/internal/controllers"
	"medibridge/internal/middleware"
	"medibridge/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterStudentRoutes(
	router *gin.Engine,
	jobController *controllers.JobController,
	applicationController *controllers.ApplicationController,
	profileController *controllers.StudentProfileController,
) {
	studentRoutes := router.Group("/api/student")
	studentRoutes.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleStudent, models.RoleExternal))
	{
		studentRoutes.GET("/jobs", jobController.GetJobsForStudentOrExternal)
		studentRoutes.POST("/apply/:jobId", applicationController.Apply)

		studentRoutes.GET("/profile", profileController.GetProfile)
		studentRoutes.PUT("/profile", profileController.UpdateProfile)
		studentRoutes.GET("/profile/check", profileController.CheckCompletion)
	}
}
