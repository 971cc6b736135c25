package engine

import (
	"time"

	"github.com/supperclub-dev/supperclub/internal/models"
	"gorm.io/gorm"
)

func testConfig() Config {
	return Config{
		DefaultTrustScore:           100,
		MinTrustScoreToHost:         50,
		FlakePenalty:                25,
		SuccessfulEventBonus:        10,
		ReferralBonusPoints:         100,
		MaxReferralsPerUser:         5,
		MinDaysBeforeEventToConfirm: 3,
	}
}

func testUser(id uint, trustScore int) models.User {
	return models.User{
		Model:      gorm.Model{ID: id},
		Username:   "user",
		TrustScore: trustScore,
		IsActive:   true,
	}
}

// openEvent returns an Open event hosted by user 1, one week out, with the
// RSVP deadline the day before.
func openEvent(maxGuests, reservedSpots, minGuests int, now time.Time) models.Event {
	return models.Event{
		Model:                gorm.Model{ID: 10},
		Title:                "Dinner",
		EventDate:            now.AddDate(0, 0, 7),
		MaxGuests:            maxGuests,
		ReservedSpots:        reservedSpots,
		MinGuests:            minGuests,
		RSVPDeadline:         now.AddDate(0, 0, 6),
		ConfirmationDeadline: now.AddDate(0, 0, 4),
		Status:               models.EventStatusOpen,
		HostID:               1,
	}
}

func rsvpWith(id, userID uint, status models.RSVPStatus) models.RSVP {
	return models.RSVP{
		Model:      gorm.Model{ID: id},
		UserID:     userID,
		EventID:    10,
		Status:     status,
		GuestCount: 1,
	}
}

func foodItem(id uint, needed, claimed int) models.FoodItem {
	return models.FoodItem{
		Model:           gorm.Model{ID: id},
		EventID:         10,
		Name:            "Salad",
		QuantityNeeded:  needed,
		QuantityClaimed: claimed,
	}
}
