package models

import (
	"time"

	"gorm.io/gorm"
)

// EventStatus is the lifecycle state of an Event.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusOpen      EventStatus = "open"      // Accepting RSVPs
	EventStatusConfirmed EventStatus = "confirmed" // Host confirmed, event is happening
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

type Event struct {
	gorm.Model

	Title       string `gorm:"not null"`
	Description string

	// Event details
	EventDate       time.Time `gorm:"not null"`
	LocationName    string    `gorm:"not null"`
	LocationAddress string
	LocationNotes   string

	// Capacity
	MaxGuests     int `gorm:"not null"`
	ReservedSpots int `gorm:"not null;default:0"` // Seats held back for direct invites
	MinGuests     int `gorm:"not null;default:1"` // Quorum required to confirm

	// Deadlines
	RSVPDeadline         time.Time `gorm:"not null"`
	ConfirmationDeadline time.Time `gorm:"not null"`

	Status   EventStatus `gorm:"type:varchar(20);not null;default:'draft'"`
	IsPublic bool        `gorm:"not null;default:true"`

	HostID uint `gorm:"not null;index"`

	// Relationships
	Host      User       `gorm:"foreignKey:HostID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	FoodItems []FoodItem `gorm:"foreignKey:EventID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	RSVPs     []RSVP     `gorm:"foreignKey:EventID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

type FoodItem struct {
	gorm.Model

	EventID     uint   `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Description string

	QuantityNeeded  int `gorm:"not null;default:1"`
	QuantityClaimed int `gorm:"not null;default:0"`

	// Relationships
	Event  Event  `gorm:"foreignKey:EventID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Claims []RSVP `gorm:"foreignKey:FoodItemID"`
}
