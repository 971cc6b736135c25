// Package handlers wires HTTP requests to engine operations. Every mutating
// handler loads its aggregate inside a transaction with a row lock on the
// event (or user) row, invokes one engine operation, and persists the entities
// the engine mutated before committing.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supperclub-dev/supperclub/internal/config"
	"github.com/supperclub-dev/supperclub/internal/engine"
	"github.com/supperclub-dev/supperclub/internal/models"
	"github.com/supperclub-dev/supperclub/internal/types"
)

var (
	cfg       config.Config
	engineCfg engine.Config
)

// Configure injects the process configuration. Must be called before the
// router starts serving.
func Configure(c config.Config) {
	cfg = c
	engineCfg = c.Engine()
}

func setAuthCookie(ctx *gin.Context, token string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Domain:   cfg.Domain,
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}

func toUserResponse(user models.User) types.UserResponse {
	return types.UserResponse{
		ID:                    user.ID,
		Email:                 user.Email,
		Username:              user.Username,
		FullName:              user.FullName,
		TrustScore:            user.TrustScore,
		EventsHosted:          user.EventsHosted,
		EventsAttended:        user.EventsAttended,
		ReferralCode:          user.ReferralCode,
		ReferralPoints:        user.ReferralPoints,
		ReliabilityPercentage: engine.ReliabilityPercentage(user),
		CanHost:               engine.CanHost(user, engineCfg),
		IsVerified:            user.IsVerified,
		CreatedAt:             user.CreatedAt,
	}
}

func toFoodItemResponse(item models.FoodItem) types.FoodItemResponse {
	return types.FoodItemResponse{
		ID:              item.ID,
		Name:            item.Name,
		Description:     item.Description,
		QuantityNeeded:  item.QuantityNeeded,
		QuantityClaimed: item.QuantityClaimed,
		IsFullyClaimed:  engine.IsFullyClaimed(item),
		RemainingNeeded: engine.RemainingNeeded(item),
	}
}

// toEventResponse expects the event's Host, FoodItems and RSVPs to be loaded.
func toEventResponse(event models.Event) types.EventResponse {
	foodItems := make([]types.FoodItemResponse, 0, len(event.FoodItems))
	for _, fi := range event.FoodItems {
		foodItems = append(foodItems, toFoodItemResponse(fi))
	}

	return types.EventResponse{
		ID:                   event.ID,
		Title:                event.Title,
		Description:          event.Description,
		EventDate:            event.EventDate,
		LocationName:         event.LocationName,
		LocationAddress:      event.LocationAddress,
		LocationNotes:        event.LocationNotes,
		MaxGuests:            event.MaxGuests,
		ReservedSpots:        event.ReservedSpots,
		MinGuests:            event.MinGuests,
		RSVPDeadline:         event.RSVPDeadline,
		ConfirmationDeadline: event.ConfirmationDeadline,
		Status:               event.Status,
		IsPublic:             event.IsPublic,
		HostID:               event.HostID,
		HostUsername:         event.Host.Username,
		HostTrustScore:       event.Host.TrustScore,
		AvailableSpots:       engine.AvailableSpots(event, event.RSVPs),
		ConfirmedGuestCount:  engine.ConfirmedGuestCount(event.RSVPs),
		CanBeConfirmed:       engine.CanBeConfirmed(event, event.RSVPs),
		FoodItems:            foodItems,
		CreatedAt:            event.CreatedAt,
	}
}

func toEventListResponse(event models.Event) types.EventListResponse {
	return types.EventListResponse{
		ID:                  event.ID,
		Title:               event.Title,
		EventDate:           event.EventDate,
		LocationName:        event.LocationName,
		MaxGuests:           event.MaxGuests,
		AvailableSpots:      engine.AvailableSpots(event, event.RSVPs),
		ConfirmedGuestCount: engine.ConfirmedGuestCount(event.RSVPs),
		Status:              event.Status,
		HostUsername:        event.Host.Username,
		HostTrustScore:      event.Host.TrustScore,
	}
}

func toRSVPResponse(rsvp models.RSVP) types.RSVPResponse {
	return types.RSVPResponse{
		ID:               rsvp.ID,
		UserID:           rsvp.UserID,
		EventID:          rsvp.EventID,
		Status:           rsvp.Status,
		GuestCount:       rsvp.GuestCount,
		Message:          rsvp.Message,
		BringingFoodItem: rsvp.BringingFoodItem,
		FoodNotes:        rsvp.FoodNotes,
		FoodItemID:       rsvp.FoodItemID,
		IsReserved:       rsvp.IsReserved,
		CreatedAt:        rsvp.CreatedAt,
		ConfirmedAt:      rsvp.ConfirmedAt,
	}
}
