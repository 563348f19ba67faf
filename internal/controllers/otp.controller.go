package controllers

import (
	"errors"
	"net/http"
	"time"

	"medibridge/internal/models"
	"medibridge/internal/repository"
	"medibridge/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const otpLifetime = 5 * time.Minute

type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type OtpVerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type OtpController struct {
	otpRepo  repository.OtpRepository
	userRepo repository.UserRepository
	mailer   utils.Mailer
}

func NewOtpController(otpRepo repository.OtpRepository, userRepo repository.UserRepository, mailer utils.Mailer) *OtpController {
	return &OtpController{
		otpRepo:  otpRepo,
		userRepo: userRepo,
		mailer:   mailer,
	}
}

// verifyOtpEntry applies the shared verification rule: newest row for the
// email, exact code match, not yet expired. Checked in that order so the
// caller learns which rule failed.
func verifyOtpEntry(otpRepo repository.OtpRepository, email, code string) (int, string) {
	otp, err := otpRepo.FindLatestByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return http.StatusNotFound, "OTP not found"
		}
		return http.StatusInternalServerError, "Failed to look up OTP"
	}

	if otp.Code != code {
		return http.StatusBadRequest, "Incorrect OTP"
	}

	if time.Now().After(otp.ExpiresAt) {
		return http.StatusBadRequest, "OTP expired"
	}

	return http.StatusOK, ""
}

// SendOtp issues a signup verification code. Refused when the email already
// has an account; no row is persisted in that case.
func (oc *OtpController) SendOtp(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Email required",
			"error":   err.Error(),
		})
		return
	}

	if _, err := oc.userRepo.GetUserByEmail(req.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "This email is already registered. Please log in",
			"error":   "Email already has an account",
		})
		return
	}

	code := utils.GenerateOtpCode()
	otp := &models.Otp{
		Email:     req.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(otpLifetime),
	}

	if err := oc.otpRepo.CreateOtp(otp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create OTP",
			"error":   "Database error",
		})
		return
	}

	if err := oc.mailer.Send(req.Email, "Your OTP Code", "Your OTP is "+code+". It expires in 5 minutes."); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to send OTP. Please try again later",
			"error":   "Mail delivery failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "OTP sent to email",
		"data":    nil,
	})
}

// VerifyOtp has no side effect on the stored row; a verified code can be
// replayed until it expires. Callers needing single-use must enforce it.
func (oc *OtpController) VerifyOtp(c *gin.Context) {
	var req OtpVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Email and code required",
			"error":   err.Error(),
		})
		return
	}

	status, message := verifyOtpEntry(oc.otpRepo, req.Email, req.Code)
	if status != http.StatusOK {
		c.JSON(status, gin.H{
			"status":  "error",
			"message": message,
			"error":   message,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "OTP verified",
		"data":    nil,
	})
}
