package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/supperclub-dev/supperclub/db"
	"github.com/supperclub-dev/supperclub/internal/engine"
	"github.com/supperclub-dev/supperclub/internal/models"
	"github.com/supperclub-dev/supperclub/internal/types"
	"github.com/supperclub-dev/supperclub/internal/utils"
	"gorm.io/gorm"
)

type UpdateProfileRequest struct {
	Email    string  `json:"email" binding:"omitempty,email"`
	FullName *string `json:"full_name"`
}

func UpdateMyProfile(ctx *gin.Context) {
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

	var req UpdateProfileRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updates := make(map[string]interface{})

	if req.Email != "" {
		newEmail := strings.ToLower(strings.TrimSpace(req.Email))

		if newEmail != user.Email {
			var existing models.User
			err := db.DB.Where("email = ? AND id != ?", newEmail, user.ID).First(&existing).Error
			if err == nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
				return
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("Database error when checking existing email: %v", err)
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
		}

		updates["email"] = newEmail
	}

	if req.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*req.FullName)
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("Failed to update user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := db.DB.First(&user, user.ID).Error; err != nil {
		log.Printf("Failed to refresh user data: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

func GetUserProfile(ctx *gin.Context) {
	userID, err := utils.GetUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User

	if err := db.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.PublicUserResponse{
		ID:                    user.ID,
		Username:              user.Username,
		FullName:              user.FullName,
		TrustScore:            user.TrustScore,
		EventsHosted:          user.EventsHosted,
		EventsAttended:        user.EventsAttended,
		ReliabilityPercentage: engine.ReliabilityPercentage(user),
	})
}
