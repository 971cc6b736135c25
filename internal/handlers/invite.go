package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/supperclub-dev/supperclub/db"
	"github.com/supperclub-dev/supperclub/internal/engine"
	"github.com/supperclub-dev/supperclub/internal/models"
	"github.com/supperclub-dev/supperclub/internal/types"
	"github.com/supperclub-dev/supperclub/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateInviteRequest struct {
	EventID  uint   `json:"event_id" binding:"required"`
	Username string `json:"username" binding:"required"`
}

func toInviteResponse(rsvp models.RSVP, username string) types.InviteResponse {
	invitedAt := rsvp.CreatedAt
	if rsvp.InvitedAt != nil {
		invitedAt = *rsvp.InvitedAt
	}

	return types.InviteResponse{
		ID:        rsvp.ID,
		UserID:    rsvp.UserID,
		EventID:   rsvp.EventID,
		Username:  username,
		Status:    rsvp.Status,
		InvitedAt: invitedAt,
	}
}

func CreateInvite(ctx *gin.Context) {
	var req CreateInviteRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var invitee models.User

	if err := db.DB.Where("username = ?", req.Username).First(&invitee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Failed to fetch invitee: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var invite *models.RSVP

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		event, err := lockEventAggregate(tx, req.EventID)
		if err != nil {
			return err
		}

		if event.HostID != userID {
			return errNotHost
		}

		invite, err = engine.CreateInvite(event, invitee, time.Now().UTC())
		if err != nil {
			return err
		}

		return tx.Create(invite).Error
	})

	if err != nil {
		respondTxError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toInviteResponse(*invite, invitee.Username))
}

func ListEventInvites(ctx *gin.Context) {
	eventID, err := utils.GetEventID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var event models.Event

	if err := db.DB.First(&event, eventID).Error; err != nil {
		respondTxError(ctx, err)
		return
	}

	if event.HostID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only the host can view invites"})
		return
	}

	var invites []models.RSVP

	if err := db.DB.Preload("User").
		Where("event_id = ? AND is_reserved = ?", eventID, true).
		Order("created_at ASC").
		Find(&invites).Error; err != nil {
		log.Printf("Failed to list invites: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.InviteResponse, 0, len(invites))
	for _, i := range invites {
		response = append(response, toInviteResponse(i, i.User.Username))
	}

	ctx.JSON(http.StatusOK, response)
}

func ListMyInvites(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var invites []models.RSVP

	if err := db.DB.Preload("Event").
		Where("user_id = ? AND is_reserved = ? AND status = ?", currentUser.ID, true, models.RSVPStatusPending).
		Order("created_at DESC").
		Find(&invites).Error; err != nil {
		log.Printf("Failed to list invites: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.InviteResponse, 0, len(invites))
	for _, i := range invites {
		response = append(response, toInviteResponse(i, currentUser.Username))
	}

	ctx.JSON(http.StatusOK, response)
}

func AcceptInvite(ctx *gin.Context) {
	inviteDecision(ctx, true)
}

func DeclineInvite(ctx *gin.Context) {
	inviteDecision(ctx, false)
}

func inviteDecision(ctx *gin.Context, accept bool) {
	inviteID, err := utils.GetInviteID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var invite models.RSVP

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&invite, inviteID).Error; err != nil {
			return err
		}

		if invite.UserID != userID {
			return errNotOwner
		}

		if accept {
			if err := engine.AcceptInvite(&invite, time.Now().UTC()); err != nil {
				return err
			}
		} else {
			if err := engine.DeclineInvite(&invite); err != nil {
				return err
			}
		}

		return tx.Model(&invite).Updates(map[string]interface{}{
			"status":       invite.Status,
			"confirmed_at": invite.ConfirmedAt,
		}).Error
	})

	if err != nil {
		respondTxError(ctx, err)
		return
	}

	if accept {
		ctx.JSON(http.StatusOK, gin.H{"message": "Invite accepted", "status": invite.Status})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Invite declined", "status": invite.Status})
}
