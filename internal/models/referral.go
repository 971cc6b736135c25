package models

import (
	"time"

	"gorm.io/gorm"
)

// Referral links a referrer to a user who signed up with their code.
// Rows are immutable after creation; the bonus fields are set exactly once.
type Referral struct {
	gorm.Model

	ReferrerID     uint `gorm:"not null;index"`
	ReferredUserID uint `gorm:"not null;index"`

	ReferralCodeUsed string `gorm:"not null"`
	BonusAwarded     bool   `gorm:"not null;default:false"`
	BonusAmount      int    `gorm:"not null;default:0"`
	BonusAwardedAt   *time.Time

	// Relationships
	Referrer     User `gorm:"foreignKey:ReferrerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	ReferredUser User `gorm:"foreignKey:ReferredUserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
