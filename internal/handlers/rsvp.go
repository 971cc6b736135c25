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

type CreateRSVPRequest struct {
	EventID          uint   `json:"event_id" binding:"required"`
	GuestCount       int    `json:"guest_count" binding:"required,min=1"`
	Message          string `json:"message"`
	FoodItemID       *uint  `json:"food_item_id"`
	BringingFoodItem string `json:"bringing_food_item"`
	FoodNotes        string `json:"food_notes"`
}

type UpdateRSVPRequest struct {
	Message          *string `json:"message"`
	BringingFoodItem *string `json:"bringing_food_item"`
	FoodNotes        *string `json:"food_notes"`
}

type RSVPStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func CreateRSVP(ctx *gin.Context) {
	var req CreateRSVPRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

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

	var rsvp *models.RSVP

	// The event row lock serializes concurrent sign-ups so the last seat (and
	// the last unit of a claimed food item) can only be taken once.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		event, err := lockEventAggregate(tx, req.EventID)
		if err != nil {
			return err
		}

		rsvp, err = engine.CreateRSVP(event, user, engine.CreateRSVPInput{
			GuestCount:       req.GuestCount,
			Message:          req.Message,
			FoodItemID:       req.FoodItemID,
			BringingFoodItem: req.BringingFoodItem,
			FoodNotes:        req.FoodNotes,
		}, time.Now().UTC())
		if err != nil {
			return err
		}

		if req.FoodItemID != nil {
			for i := range event.FoodItems {
				item := &event.FoodItems[i]
				if item.ID == *req.FoodItemID {
					if err := tx.Model(item).Update("quantity_claimed", item.QuantityClaimed).Error; err != nil {
						return err
					}
				}
			}
		}

		return tx.Create(rsvp).Error
	})

	if err != nil {
		respondTxError(ctx, err)
		return
	}

	response := toRSVPResponse(*rsvp)
	response.UserUsername = user.Username
	response.UserTrustScore = &user.TrustScore
	reliability := engine.ReliabilityPercentage(user)
	response.UserReliability = &reliability

	ctx.JSON(http.StatusCreated, response)
}

func ListMyRSVPs(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var rsvps []models.RSVP

	if err := db.DB.Preload("Event").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rsvps).Error; err != nil {
		log.Printf("Failed to list RSVPs: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.RSVPWithEventResponse, 0, len(rsvps))
	for _, r := range rsvps {
		response = append(response, types.RSVPWithEventResponse{
			RSVPResponse:  toRSVPResponse(r),
			EventTitle:    r.Event.Title,
			EventDate:     r.Event.EventDate,
			EventLocation: r.Event.LocationName,
			EventStatus:   r.Event.Status,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

func ListEventRSVPs(ctx *gin.Context) {
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

	var rsvps []models.RSVP

	if err := db.DB.Preload("User").
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&rsvps).Error; err != nil {
		log.Printf("Failed to list RSVPs: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	isHost := event.HostID == userID

	response := make([]types.RSVPResponse, 0, len(rsvps))
	for _, r := range rsvps {
		item := toRSVPResponse(r)
		item.UserUsername = r.User.Username
		if isHost {
			trustScore := r.User.TrustScore
			reliability := engine.ReliabilityPercentage(r.User)
			item.UserTrustScore = &trustScore
			item.UserReliability = &reliability
		} else {
			// Guests see who is coming, not the host-facing details.
			item.Message = ""
		}
		response = append(response, item)
	}

	ctx.JSON(http.StatusOK, response)
}

func UpdateRSVP(ctx *gin.Context) {
	rsvpID, err := utils.GetRSVPID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req UpdateRSVPRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var rsvp models.RSVP

	if err := db.DB.First(&rsvp, rsvpID).Error; err != nil {
		respondTxError(ctx, err)
		return
	}

	if rsvp.UserID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own RSVPs"})
		return
	}

	switch rsvp.Status {
	case models.RSVPStatusCancelled, models.RSVPStatusAttended, models.RSVPStatusNoShow:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "RSVP can no longer be updated"})
		return
	}

	updates := make(map[string]interface{})

	if req.Message != nil {
		updates["message"] = *req.Message
	}
	if req.BringingFoodItem != nil {
		updates["bringing_food_item"] = *req.BringingFoodItem
	}
	if req.FoodNotes != nil {
		updates["food_notes"] = *req.FoodNotes
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	if err := db.DB.Model(&rsvp).Updates(updates).Error; err != nil {
		log.Printf("Failed to update RSVP: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, toRSVPResponse(rsvp))
}

func CancelRSVP(ctx *gin.Context) {
	rsvpID, err := utils.GetRSVPID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var rsvp models.RSVP

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rsvp, rsvpID).Error; err != nil {
			return err
		}

		if rsvp.UserID != userID {
			return errNotOwner
		}

		// Lock the aggregate so the claim release does not race a concurrent
		// claim on the same item.
		event, err := lockEventAggregate(tx, rsvp.EventID)
		if err != nil {
			return err
		}

		if err := tx.First(&rsvp, rsvpID).Error; err != nil {
			return err
		}

		if rsvp.FoodItemID != nil {
			for i := range event.FoodItems {
				if event.FoodItems[i].ID == *rsvp.FoodItemID {
					rsvp.FoodItem = &event.FoodItems[i]
				}
			}
		}

		if err := engine.CancelRSVP(&rsvp); err != nil {
			return err
		}

		if err := tx.Model(&rsvp).Update("status", rsvp.Status).Error; err != nil {
			return err
		}

		if rsvp.FoodItem != nil {
			if err := tx.Model(rsvp.FoodItem).Update("quantity_claimed", rsvp.FoodItem.QuantityClaimed).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		respondTxError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toRSVPResponse(rsvp))
}

func UpdateRSVPStatus(ctx *gin.Context) {
	rsvpID, err := utils.GetRSVPID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req RSVPStatusRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	decision, ok := engine.ParseDecision(req.Status)

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be one of: confirmed, declined, attended, no_show"})
		return
	}

	var (
		rsvp  models.RSVP
		guest models.User
	)

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rsvp, rsvpID).Error; err != nil {
			return err
		}

		// Event row lock serializes this decision against concurrent guest
		// cancellation and repeated host decisions on the same RSVP.
		event, err := lockEventAggregate(tx, rsvp.EventID)
		if err != nil {
			return err
		}

		if event.HostID != userID {
			return errNotHost
		}

		if err := tx.First(&rsvp, rsvpID).Error; err != nil {
			return err
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&guest, rsvp.UserID).Error; err != nil {
			return err
		}

		if err := engine.HostDecision(&rsvp, &guest, decision, engineCfg, time.Now().UTC()); err != nil {
			return err
		}

		if err := tx.Model(&rsvp).Updates(map[string]interface{}{
			"status":       rsvp.Status,
			"confirmed_at": rsvp.ConfirmedAt,
			"attended_at":  rsvp.AttendedAt,
		}).Error; err != nil {
			return err
		}

		return tx.Model(&guest).Updates(map[string]interface{}{
			"events_attended": guest.EventsAttended,
			"flake_count":     guest.FlakeCount,
			"trust_score":     guest.TrustScore,
		}).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "RSVP not found"})
			return
		}
		respondTxError(ctx, err)
		return
	}

	response := toRSVPResponse(rsvp)
	response.UserUsername = guest.Username
	response.UserTrustScore = &guest.TrustScore
	reliability := engine.ReliabilityPercentage(guest)
	response.UserReliability = &reliability

	ctx.JSON(http.StatusOK, response)
}
