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

type RegisterRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
	ReferralCode string `json:"referral_code"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateStudentRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"new_password" binding:"required"`
}

type AuthController struct {
	userRepo     repository.UserRepository
	referralRepo repository.ReferralRepository
	otpRepo      repository.OtpRepository
	mailer       utils.Mailer
}

func NewAuthController(userRepo repository.UserRepository, referralRepo repository.ReferralRepository, otpRepo repository.OtpRepository, mailer utils.Mailer) *AuthController {
	return &AuthController{
		userRepo:     userRepo,
		referralRepo: referralRepo,
		otpRepo:      otpRepo,
		mailer:       mailer,
	}
}

func publicUser(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
}

// Register creates an account. The role defaults to EXTERNAL; a valid
// referral code upgrades it to STUDENT at creation time. There is no
// promotion path afterwards.
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Name, email, and password are required",
			"error":   err.Error(),
		})
		return
	}

	if _, err := ac.userRepo.GetUserByEmail(req.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Email already registered",
			"error":   "An account with this email already exists",
		})
		return
	}

	role := models.RoleExternal
	var referralCode *string
	if req.ReferralCode != "" {
		referral, err := ac.referralRepo.FindByCode(req.ReferralCode)
		if err != nil || !referral.Valid {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid referral code",
				"error":   "Referral code is unknown or disabled",
			})
			return
		}
		role = models.RoleStudent
		referralCode = &req.ReferralCode
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create account",
			"error":   "Password hashing failed",
		})
		return
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Password:     passwordHash,
		Role:         role,
		ReferralCode: referralCode,
	}

	if err := ac.userRepo.CreateUser(user); err != nil {
		// The unique index on email is authoritative; a concurrent
		// registration loses here, not above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Email already registered",
				"error":   "An account with this email already exists",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create account",
			"error":   "Database error",
		})
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Could not generate token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Account created successfully",
		"data": gin.H{
			"token": token,
			"user":  publicUser(user),
		},
	})
}

// Login deliberately reports the same message for an unknown email and a
// wrong password, so accounts cannot be enumerated.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Email and password are required",
			"error":   err.Error(),
		})
		return
	}

	user, err := ac.userRepo.GetUserByEmail(req.Email)
	if err != nil || !utils.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid credentials",
			"error":   "Email or password is incorrect",
		})
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Could not generate token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User logged in successfully",
		"data": gin.H{
			"token": token,
			"user":  publicUser(user),
		},
	})
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	user, err := ac.userRepo.GetUserByID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User retrieved successfully",
		"data":    publicUser(user),
	})
}

// CreateStudent lets faculty add a student account directly, bypassing the
// referral-code gate. The role is always STUDENT regardless of input.
func (ac *AuthController) CreateStudent(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Name, email, and password are required",
			"error":   err.Error(),
		})
		return
	}

	if _, err := ac.userRepo.GetUserByEmail(req.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Email already in use",
			"error":   "An account with this email already exists",
		})
		return
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create student",
			"error":   "Password hashing failed",
		})
		return
	}

	student := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: passwordHash,
		Role:     models.RoleStudent,
	}

	if err := ac.userRepo.CreateUser(student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Email already in use",
				"error":   "An account with this email already exists",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create student",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Medibridge student created successfully",
		"data":    publicUser(student),
	})
}

// ForgotPassword issues a reset OTP. Unlike the signup OTP, the account must
// already exist.
func (ac *AuthController) ForgotPassword(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Email is required",
			"error":   err.Error(),
		})
		return
	}

	if _, err := ac.userRepo.GetUserByEmail(req.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "No account found with this email",
			"error":   "Email is not registered",
		})
		return
	}

	code := utils.GenerateOtpCode()
	otp := &models.Otp{
		Email:     req.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(otpLifetime),
	}

	if err := ac.otpRepo.CreateOtp(otp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create reset code",
			"error":   "Database error",
		})
		return
	}

	if err := ac.mailer.Send(req.Email, "Password Reset OTP", "Your OTP is "+code+". It expires in 5 minutes."); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to send OTP. Please try again later",
			"error":   "Mail delivery failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Password reset OTP sent",
		"data":    nil,
	})
}

// ForgotPasswordVerify checks the newest reset code. Verification leaves the
// stored row untouched; the code stays valid until it expires.
func (ac *AuthController) ForgotPasswordVerify(c *gin.Context) {
	var req OtpVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Email and OTP required",
			"error":   err.Error(),
		})
		return
	}

	status, message := verifyOtpEntry(ac.otpRepo, req.Email, req.Code)
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

// ResetPassword overwrites the password for the given email. Nothing binds
// this call to a prior successful verify; the caller is trusted to have
// sequenced the two.
func (ac *AuthController) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Email and new password are required",
			"error":   err.Error(),
		})
		return
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to reset password",
			"error":   "Password hashing failed",
		})
		return
	}

	if err := ac.userRepo.UpdatePassword(req.Email, passwordHash); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "User not found",
				"error":   "Email is not registered",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to reset password",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Password reset successfully. Please log in",
		"data":    nil,
	})
}
