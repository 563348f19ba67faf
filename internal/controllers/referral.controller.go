package controllers

import (
	"errors"
	"net/http"

	"medibridge/internal/models"
	"medibridge/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddReferralCodesRequest struct {
	Codes []string `json:"codes" binding:"required,min=1"`
}

type ReferralController struct {
	referralRepo repository.ReferralRepository
}

func NewReferralController(referralRepo repository.ReferralRepository) *ReferralController {
	return &ReferralController{referralRepo: referralRepo}
}

// AddReferralCodes is an idempotent bulk insert: codes that already exist are
// skipped, never errors.
func (rc *ReferralController) AddReferralCodes(c *gin.Context) {
	var req AddReferralCodesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Codes must be a non-empty array",
			"error":   err.Error(),
		})
		return
	}

	added := []string{}
	skipped := []string{}

	for _, code := range req.Codes {
		if _, err := rc.referralRepo.FindByCode(code); err == nil {
			skipped = append(skipped, code)
			continue
		}

		referral := &models.ReferralCode{Code: code, Valid: true}
		if err := rc.referralRepo.Create(referral); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				skipped = append(skipped, code)
				continue
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to create referral code",
				"error":   "Database error",
			})
			return
		}
		added = append(added, code)
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Referral codes processed",
		"results": gin.H{
			"added":   added,
			"skipped": skipped,
		},
	})
}

func (rc *ReferralController) GetReferralCodes(c *gin.Context) {
	codes, err := rc.referralRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch referral codes",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Referral codes retrieved successfully",
		"data":    codes,
	})
}

func (rc *ReferralController) ToggleReferralStatus(c *gin.Context) {
	code := c.Param("code")

	referral, err := rc.referralRepo.FindByCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Code not found",
			"error":   "No referral code matches",
		})
		return
	}

	referral.Valid = !referral.Valid
	if err := rc.referralRepo.Save(referral); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update referral code",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Status updated",
		"data":    referral,
	})
}

func (rc *ReferralController) DeleteReferralCode(c *gin.Context) {
	code := c.Param("code")

	if err := rc.referralRepo.DeleteByCode(code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Code not found",
				"error":   "No referral code matches",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete referral code",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Referral code removed",
		"data":    nil,
	})
}
