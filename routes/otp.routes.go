package routes

import (
	"medibridge/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterOtpRoutes(router *gin.Engine, otpController *controllers.OtpController) {
	otpRoutes := router.Group("/api/otp")
	{
		otpRoutes.POST("/send", otpController.SendOtp)
		otpRoutes.POST("/verify", otpController.VerifyOtp)
	}
}
