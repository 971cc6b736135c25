package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/supperclub-dev/supperclub/db"
	"github.com/supperclub-dev/supperclub/internal/models"
	"github.com/supperclub-dev/supperclub/internal/types"
	"github.com/supperclub-dev/supperclub/internal/utils"
	"gorm.io/gorm"
)

func GetMyReferralCode(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var user models.User

	if err := db.DB.First(&user, currentUser.ID).Error; err != nil {
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"referral_code":   user.ReferralCode,
		"referral_points": user.ReferralPoints,
	})
}

func GetReferralStats(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var user models.User

	if err := db.DB.First(&user, currentUser.ID).Error; err != nil {
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var referrals []models.Referral

	if err := db.DB.Preload("ReferredUser").
		Where("referrer_id = ?", user.ID).
		Order("created_at DESC").
		Find(&referrals).Error; err != nil {
		log.Printf("Failed to list referrals: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	totalPoints := 0
	response := make([]types.ReferralResponse, 0, len(referrals))
	for _, r := range referrals {
		if r.BonusAwarded {
			totalPoints += r.BonusAmount
		}
		response = append(response, types.ReferralResponse{
			ID:               r.ID,
			ReferredUserID:   r.ReferredUserID,
			ReferredUsername: r.ReferredUser.Username,
			ReferralCodeUsed: r.ReferralCodeUsed,
			BonusAwarded:     r.BonusAwarded,
			BonusAmount:      r.BonusAmount,
			CreatedAt:        r.CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, types.ReferralStatsResponse{
		ReferralCode:      user.ReferralCode,
		TotalReferrals:    len(referrals),
		TotalPointsEarned: totalPoints,
		Referrals:         response,
	})
}

// ValidateReferralCode is public so the signup form can check codes up front.
func ValidateReferralCode(ctx *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(ctx.Param("code")))

	var referrer models.User

	err := db.DB.Where("referral_code = ?", code).First(&referrer).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusOK, gin.H{"valid": false, "message": "Invalid referral code"})
			return
		}
		log.Printf("Failed to validate referral code: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"valid":             true,
		"referrer_username": referrer.Username,
	})
}
