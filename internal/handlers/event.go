package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
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

type FoodItemRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	QuantityNeeded int    `json:"quantity_needed"`
}

type CreateEventRequest struct {
	Title           string            `json:"title" binding:"required"`
	Description     string            `json:"description"`
	EventDate       time.Time         `json:"event_date" binding:"required"`
	LocationName    string            `json:"location_name" binding:"required"`
	LocationAddress string            `json:"location_address"`
	LocationNotes   string            `json:"location_notes"`
	MaxGuests       int               `json:"max_guests" binding:"required,min=1"`
	ReservedSpots   int               `json:"reserved_spots"`
	MinGuests       int               `json:"min_guests"`
	RSVPDeadline    time.Time         `json:"rsvp_deadline" binding:"required"`
	IsPublic        *bool             `json:"is_public"`
	FoodItems       []FoodItemRequest `json:"food_items"`
}

type UpdateEventRequest struct {
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	LocationName    string  `json:"location_name"`
	LocationAddress *string `json:"location_address"`
	LocationNotes   *string `json:"location_notes"`
}

// lockEventAggregate acquires an exclusive row lock on the event and loads its
// RSVPs and food items under that lock. Every capacity- or claim-sensitive
// mutation goes through here so concurrent requests against the same event
// serialize on the row lock instead of racing.
func lockEventAggregate(tx *gorm.DB, eventID uint) (*models.Event, error) {
	var event models.Event

	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&event, eventID).Error; err != nil {
		return nil, err
	}

	if err := tx.Where("event_id = ?", event.ID).Order("created_at ASC").Find(&event.RSVPs).Error; err != nil {
		return nil, err
	}

	if err := tx.Where("event_id = ?", event.ID).Order("created_at ASC").Find(&event.FoodItems).Error; err != nil {
		return nil, err
	}

	return &event, nil
}

func CreateEvent(ctx *gin.Context) {
	var req CreateEventRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var host models.User

	if err := db.DB.First(&host, userID).Error; err != nil {
		log.Printf("Failed to fetch host: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	input := engine.CreateEventInput{
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		EventDate:       req.EventDate,
		LocationName:    strings.TrimSpace(req.LocationName),
		LocationAddress: req.LocationAddress,
		LocationNotes:   req.LocationNotes,
		MaxGuests:       req.MaxGuests,
		ReservedSpots:   req.ReservedSpots,
		MinGuests:       req.MinGuests,
		RSVPDeadline:    req.RSVPDeadline,
		IsPublic:        req.IsPublic == nil || *req.IsPublic,
	}
	for _, fi := range req.FoodItems {
		input.FoodItems = append(input.FoodItems, engine.FoodItemInput{
			Name:           fi.Name,
			Description:    fi.Description,
			QuantityNeeded: fi.QuantityNeeded,
		})
	}

	event, err := engine.CreateEvent(host, input, engineCfg, time.Now().UTC())

	if err != nil {
		respondTxError(ctx, err)
		return
	}

	if err := db.DB.Create(event).Error; err != nil {
		log.Printf("Failed to create event: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	event.Host = host

	ctx.JSON(http.StatusCreated, toEventResponse(*event))
}

func ListEvents(ctx *gin.Context) {
	query := db.DB.Preload("Host").Preload("RSVPs").Where("is_public = ?", true)

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	} else {
		query = query.Where("status IN ?", []models.EventStatus{models.EventStatusOpen, models.EventStatusConfirmed})
	}

	if ctx.DefaultQuery("upcoming_only", "true") == "true" {
		query = query.Where("event_date > ?", time.Now().UTC())
	}

	var events []models.Event

	if err := query.Order("event_date ASC").Find(&events).Error; err != nil {
		log.Printf("Failed to list events: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.EventListResponse, 0, len(events))
	for _, e := range events {
		response = append(response, toEventListResponse(e))
	}

	ctx.JSON(http.StatusOK, response)
}

func ListMyEvents(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var events []models.Event

	if err := db.DB.Preload("Host").Preload("RSVPs").
		Where("host_id = ?", userID).
		Order("event_date DESC").
		Find(&events).Error; err != nil {
		log.Printf("Failed to list events: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.EventListResponse, 0, len(events))
	for _, e := range events {
		response = append(response, toEventListResponse(e))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetEvent(ctx *gin.Context) {
	eventID, err := utils.GetEventID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var event models.Event

	if err := db.DB.Preload("Host").Preload("FoodItems").Preload("RSVPs").First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		log.Printf("Failed to fetch event: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, toEventResponse(event))
}

func UpdateEvent(ctx *gin.Context) {
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

	var req UpdateEventRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var event models.Event

	if err := db.DB.First(&event, eventID).Error; err != nil {
		respondTxError(ctx, err)
		return
	}

	if event.HostID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only the host can update this event"})
		return
	}

	if engine.EventIsTerminal(event.Status) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Cannot update a completed or cancelled event"})
		return
	}

	updates := make(map[string]interface{})

	if req.Title != "" {
		updates["title"] = strings.TrimSpace(req.Title)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.LocationName != "" {
		updates["location_name"] = strings.TrimSpace(req.LocationName)
	}
	if req.LocationAddress != nil {
		updates["location_address"] = *req.LocationAddress
	}
	if req.LocationNotes != nil {
		updates["location_notes"] = *req.LocationNotes
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	if err := db.DB.Model(&event).Updates(updates).Error; err != nil {
		log.Printf("Failed to update event: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := db.DB.Preload("Host").Preload("FoodItems").Preload("RSVPs").First(&event, event.ID).Error; err != nil {
		log.Printf("Failed to refresh event: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, toEventResponse(event))
}

func ConfirmEvent(ctx *gin.Context) {
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

	var event *models.Event

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		event, err = lockEventAggregate(tx, eventID)
		if err != nil {
			return err
		}

		if event.HostID != userID {
			return errNotHost
		}

		if err := engine.ConfirmEvent(event); err != nil {
			return err
		}

		return tx.Model(event).Update("status", event.Status).Error
	})

	if err != nil {
		respondTxError(ctx, err)
		return
	}

	respondWithEvent(ctx, event.ID)
}

func CancelEvent(ctx *gin.Context) {
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

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		event, err := lockEventAggregate(tx, eventID)
		if err != nil {
			return err
		}

		if event.HostID != userID {
			return errNotHost
		}

		cancelled, err := engine.CancelEvent(event)
		if err != nil {
			return err
		}

		if err := tx.Model(event).Update("status", event.Status).Error; err != nil {
			return err
		}

		for _, rsvp := range cancelled {
			if err := tx.Model(rsvp).Update("status", rsvp.Status).Error; err != nil {
				return err
			}
		}

		// Cascade-cancel releases food claims; write the adjusted counts back.
		for i := range event.FoodItems {
			item := &event.FoodItems[i]
			if err := tx.Model(item).Update("quantity_claimed", item.QuantityClaimed).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		respondTxError(ctx, err)
		return
	}

	respondWithEvent(ctx, eventID)
}

func CompleteEvent(ctx *gin.Context) {
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

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		event, err := lockEventAggregate(tx, eventID)
		if err != nil {
			return err
		}

		if event.HostID != userID {
			return errNotHost
		}

		var host models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&host, event.HostID).Error; err != nil {
			return err
		}

		if err := engine.CompleteEvent(event, &host, engineCfg); err != nil {
			return err
		}

		if err := tx.Model(event).Update("status", event.Status).Error; err != nil {
			return err
		}

		return tx.Model(&host).Updates(map[string]interface{}{
			"events_hosted":     host.EventsHosted,
			"successful_events": host.SuccessfulEvents,
			"trust_score":       host.TrustScore,
		}).Error
	})

	if err != nil {
		respondTxError(ctx, err)
		return
	}

	respondWithEvent(ctx, eventID)
}

func AddFoodItem(ctx *gin.Context) {
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

	var req FoodItemRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var event models.Event

	if err := db.DB.First(&event, eventID).Error; err != nil {
		respondTxError(ctx, err)
		return
	}

	if event.HostID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only the host can add food items"})
		return
	}

	item := engine.AddFoodItem(&event, engine.FoodItemInput{
		Name:           req.Name,
		Description:    req.Description,
		QuantityNeeded: req.QuantityNeeded,
	})

	if err := db.DB.Create(item).Error; err != nil {
		log.Printf("Failed to create food item: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, toFoodItemResponse(*item))
}

// respondWithEvent reloads the event with its relationships after a committed
// mutation and writes the standard event payload.
func respondWithEvent(ctx *gin.Context, eventID uint) {
	var event models.Event

	if err := db.DB.Preload("Host").Preload("FoodItems").Preload("RSVPs").First(&event, eventID).Error; err != nil {
		log.Printf("Failed to reload event: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, toEventResponse(event))
}
