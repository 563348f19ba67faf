package routes

import (
	"medibridge/internal/controllers"
	"medibridge/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.Engine, authController *controllers.AuthController) {
	authRoutesPublic := router.Group("/api/auth")
	{
		authRoutesPublic.POST("/register", authController.Register)
		authRoutesPublic.POST("/login", authController.Login)
		authRoutesPublic.POST("/forgot-password", authController.ForgotPassword)
		authRoutesPublic.POST("/forgot-password/verify", authController.ForgotPasswordVerify)
		authRoutesPublic.POST("/reset-password", authController.ResetPassword)
	}

	authRoutesPrivate := router.Group("/api/auth")
	authRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		authRoutesPrivate.GET("/profile", authController.GetProfile)
	}
}
