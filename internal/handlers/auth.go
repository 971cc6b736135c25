package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/supperclub-dev/supperclub/db"
	"github.com/supperclub-dev/supperclub/internal/auth"
	"github.com/supperclub-dev/supperclub/internal/engine"
	"github.com/supperclub-dev/supperclub/internal/models"
	"github.com/supperclub-dev/supperclub/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Username     string `json:"username" binding:"required,min=3"`
	Password     string `json:"password" binding:"required,min=8"`
	FullName     string `json:"full_name"`
	ReferralCode string `json:"referral_code"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

var errInvalidReferralCode = errors.New("invalid referral code")

func Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Username = strings.TrimSpace(req.Username)
	req.ReferralCode = strings.ToUpper(strings.TrimSpace(req.ReferralCode))

	var existing models.User

	err := db.DB.Where("email = ?", req.Email).First(&existing).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing email: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	err = db.DB.Where("username = ?", req.Username).First(&existing).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing username: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	newUser := models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(passwordHash),
		FullName:     req.FullName,
		TrustScore:   cfg.DefaultTrustScore,
		ReferralCode: models.NewReferralCode(),
		IsActive:     true,
	}

	// The referral lookup, limit check and bonus award run in the same
	// transaction as the signup so the per-referrer limit holds under
	// concurrent registrations using the same code.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var referrer models.User
		hasReferrer := false

		if req.ReferralCode != "" {
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("referral_code = ?", req.ReferralCode).
				First(&referrer).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errInvalidReferralCode
			}
			if err != nil {
				return err
			}
			hasReferrer = true
			newUser.ReferredByID = &referrer.ID
		}

		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}

		if !hasReferrer {
			return nil
		}

		var existingReferrals int64
		if err := tx.Model(&models.Referral{}).
			Where("referrer_id = ?", referrer.ID).
			Count(&existingReferrals).Error; err != nil {
			return err
		}

		referral, err := engine.RegisterReferral(&referrer, newUser.ID, req.ReferralCode, int(existingReferrals), engineCfg, time.Now().UTC())
		if err != nil {
			return err
		}

		if err := tx.Create(referral).Error; err != nil {
			return err
		}

		return tx.Model(&referrer).Update("referral_points", referrer.ReferralPoints).Error
	})

	if err != nil {
		if errors.Is(err, errInvalidReferralCode) || errors.Is(err, engine.ErrReferralLimitExceeded) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to register user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := auth.GenerateJWT(newUser.ID, newUser.Email)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	setAuthCookie(ctx, token, 60*60*24*7)

	ctx.JSON(http.StatusCreated, gin.H{"user": toUserResponse(newUser)})
}

func Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User

	err := db.DB.Where("email = ?", req.Email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
			return
		}
		log.Printf("Database error when fetching user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
		return
	}

	if !user.IsActive {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Account is deactivated"})
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Email)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	setAuthCookie(ctx, token, 60*60*24*7)

	ctx.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

func Logout(ctx *gin.Context) {
	setAuthCookie(ctx, "", -1)

	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func Me(ctx *gin.Context) {
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

	ctx.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}
