package routes

import (
	"medibridge/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPublicRoutes(router *gin.Engine, jobController *controllers.JobController) {
	publicRoutes := router.Group("/api/public")
	{
		publicRoutes.GET("/all", jobController.GetJobsPublic)
	}
}
