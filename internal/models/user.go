package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	Email        string `gorm:"uniqueIndex;not null"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	FullName     string

	// Trust & reputation
	TrustScore       int `gorm:"not null;default:100"`
	EventsHosted     int `gorm:"not null;default:0"`
	EventsAttended   int `gorm:"not null;default:0"`
	FlakeCount       int `gorm:"not null;default:0"`
	SuccessfulEvents int `gorm:"not null;default:0"`

	// Referral program
	ReferralCode   string `gorm:"uniqueIndex;not null"`
	ReferredByID   *uint
	ReferralPoints int `gorm:"not null;default:0"`

	IsActive   bool `gorm:"not null;default:true"`
	IsVerified bool `gorm:"not null;default:false"`

	// Relationships
	HostedEvents  []Event    `gorm:"foreignKey:HostID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	RSVPs         []RSVP     `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	ReferralsMade []Referral `gorm:"foreignKey:ReferrerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// NewReferralCode generates a short shareable signup code.
func NewReferralCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(raw[:8])
}
