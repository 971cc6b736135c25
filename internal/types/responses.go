package types

import (
	"time"

	"github.com/supperclub-dev/supperclub/internal/models"
)

type UserResponse struct {
	ID                    uint      `json:"id"`
	Email                 string    `json:"email"`
	Username              string    `json:"username"`
	FullName              string    `json:"full_name"`
	TrustScore            int       `json:"trust_score"`
	EventsHosted          int       `json:"events_hosted"`
	EventsAttended        int       `json:"events_attended"`
	ReferralCode          string    `json:"referral_code"`
	ReferralPoints        int       `json:"referral_points"`
	ReliabilityPercentage float64   `json:"reliability_percentage"`
	CanHost               bool      `json:"can_host"`
	IsVerified            bool      `json:"is_verified"`
	CreatedAt             time.Time `json:"created_at"`
}

type PublicUserResponse struct {
	ID                    uint    `json:"id"`
	Username              string  `json:"username"`
	FullName              string  `json:"full_name"`
	TrustScore            int     `json:"trust_score"`
	EventsHosted          int     `json:"events_hosted"`
	EventsAttended        int     `json:"events_attended"`
	ReliabilityPercentage float64 `json:"reliability_percentage"`
}

type FoodItemResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	QuantityNeeded  int    `json:"quantity_needed"`
	QuantityClaimed int    `json:"quantity_claimed"`
	IsFullyClaimed  bool   `json:"is_fully_claimed"`
	RemainingNeeded int    `json:"remaining_needed"`
}

type EventResponse struct {
	ID                   uint               `json:"id"`
	Title                string             `json:"title"`
	Description          string             `json:"description"`
	EventDate            time.Time          `json:"event_date"`
	LocationName         string             `json:"location_name"`
	LocationAddress      string             `json:"location_address"`
	LocationNotes        string             `json:"location_notes"`
	MaxGuests            int                `json:"max_guests"`
	ReservedSpots        int                `json:"reserved_spots"`
	MinGuests            int                `json:"min_guests"`
	RSVPDeadline         time.Time          `json:"rsvp_deadline"`
	ConfirmationDeadline time.Time          `json:"confirmation_deadline"`
	Status               models.EventStatus `json:"status"`
	IsPublic             bool               `json:"is_public"`
	HostID               uint               `json:"host_id"`
	HostUsername         string             `json:"host_username"`
	HostTrustScore       int                `json:"host_trust_score"`
	AvailableSpots       int                `json:"available_spots"`
	ConfirmedGuestCount  int                `json:"confirmed_guest_count"`
	CanBeConfirmed       bool               `json:"can_be_confirmed"`
	FoodItems            []FoodItemResponse `json:"food_items"`
	CreatedAt            time.Time          `json:"created_at"`
}

type EventListResponse struct {
	ID                  uint               `json:"id"`
	Title               string             `json:"title"`
	EventDate           time.Time          `json:"event_date"`
	LocationName        string             `json:"location_name"`
	MaxGuests           int                `json:"max_guests"`
	AvailableSpots      int                `json:"available_spots"`
	ConfirmedGuestCount int                `json:"confirmed_guest_count"`
	Status              models.EventStatus `json:"status"`
	HostUsername        string             `json:"host_username"`
	HostTrustScore      int                `json:"host_trust_score"`
}

type RSVPResponse struct {
	ID               uint              `json:"id"`
	UserID           uint              `json:"user_id"`
	EventID          uint              `json:"event_id"`
	Status           models.RSVPStatus `json:"status"`
	GuestCount       int               `json:"guest_count"`
	Message          string            `json:"message,omitempty"`
	BringingFoodItem string            `json:"bringing_food_item"`
	FoodNotes        string            `json:"food_notes"`
	FoodItemID       *uint             `json:"food_item_id"`
	IsReserved       bool              `json:"is_reserved"`
	CreatedAt        time.Time         `json:"created_at"`
	ConfirmedAt      *time.Time        `json:"confirmed_at"`
	UserUsername     string            `json:"user_username,omitempty"`
	UserTrustScore   *int              `json:"user_trust_score,omitempty"`
	UserReliability  *float64          `json:"user_reliability,omitempty"`
}

type RSVPWithEventResponse struct {
	RSVPResponse
	EventTitle    string             `json:"event_title"`
	EventDate     time.Time          `json:"event_date"`
	EventLocation string             `json:"event_location"`
	EventStatus   models.EventStatus `json:"event_status"`
}

type InviteResponse struct {
	ID        uint              `json:"id"`
	UserID    uint              `json:"user_id"`
	EventID   uint              `json:"event_id"`
	Username  string            `json:"username"`
	Status    models.RSVPStatus `json:"status"`
	InvitedAt time.Time         `json:"invited_at"`
}

type ReferralResponse struct {
	ID               uint      `json:"id"`
	ReferredUserID   uint      `json:"referred_user_id"`
	ReferredUsername string    `json:"referred_username"`
	ReferralCodeUsed string    `json:"referral_code_used"`
	BonusAwarded     bool      `json:"bonus_awarded"`
	BonusAmount      int       `json:"bonus_amount"`
	CreatedAt        time.Time `json:"created_at"`
}

type ReferralStatsResponse struct {
	ReferralCode      string             `json:"referral_code"`
	TotalReferrals    int                `json:"total_referrals"`
	TotalPointsEarned int                `json:"total_points_earned"`
	Referrals         []ReferralResponse `json:"referrals"`
}
