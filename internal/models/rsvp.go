package models

import (
	"time"

	"gorm.io/gorm"
)

// RSVPStatus is the lifecycle state of a single RSVP.
type RSVPStatus string

const (
	RSVPStatusPending   RSVPStatus = "pending"   // Submitted, waiting for host approval
	RSVPStatusConfirmed RSVPStatus = "confirmed" // Host approved
	RSVPStatusDeclined  RSVPStatus = "declined"  // Host declined
	RSVPStatusCancelled RSVPStatus = "cancelled" // Guest cancelled
	RSVPStatusAttended  RSVPStatus = "attended"  // Guest showed up
	RSVPStatusNoShow    RSVPStatus = "no_show"   // Guest flaked
)

type RSVP struct {
	gorm.Model

	UserID     uint  `gorm:"not null;index"`
	EventID    uint  `gorm:"not null;index"`
	FoodItemID *uint `gorm:"index"` // Claimed contribution, if any

	Status     RSVPStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	GuestCount int        `gorm:"not null;default:1"` // People attending, including the user
	Message    string

	// Food contribution
	BringingFoodItem string // Free-text contribution outside the claimed list
	FoodNotes        string

	// Reserved guest (invited directly by the host)
	IsReserved bool `gorm:"not null;default:false"`
	InvitedAt  *time.Time

	ConfirmedAt *time.Time
	AttendedAt  *time.Time

	// Relationships
	User     User      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Event    Event     `gorm:"foreignKey:EventID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID"`
}
