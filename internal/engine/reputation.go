package engine

import (
	"math"
	"time"

	"github.com/supperclub-dev/supperclub/internal/models"
)

// Reputation appliers mutate the user in place; idempotence against a given
// trigger is enforced by the status guards of the event and RSVP state
// machines, which only reach these calls once per transition.

// OnEventCompleted credits a host for a successfully completed event.
func OnEventCompleted(host *models.User, cfg Config) {
	host.EventsHosted++
	host.SuccessfulEvents++
	host.TrustScore += cfg.SuccessfulEventBonus
}

// OnAttended credits a guest marked as attended.
func OnAttended(user *models.User, cfg Config) {
	user.EventsAttended++
	user.TrustScore += cfg.SuccessfulEventBonus
}

// OnNoShow penalizes a flake. The trust score floors at zero.
func OnNoShow(user *models.User, cfg Config) {
	user.FlakeCount++
	user.TrustScore -= cfg.FlakePenalty
	if user.TrustScore < 0 {
		user.TrustScore = 0
	}
}

// ReliabilityPercentage returns attendance reliability rounded to one decimal.
// A user with no history is fully trusted, not fully distrusted.
func ReliabilityPercentage(user models.User) float64 {
	total := user.EventsAttended + user.FlakeCount
	if total == 0 {
		return 100.0
	}
	pct := float64(user.EventsAttended) / float64(total) * 100
	return math.Round(pct*10) / 10
}

// CanHost reports whether the user's trust score clears the hosting bar.
func CanHost(user models.User, cfg Config) bool {
	return user.TrustScore >= cfg.MinTrustScoreToHost
}

// RegisterReferral records that referredUserID signed up with the referrer's
// code, awards the bonus to the referrer, and returns the referral row for the
// caller to persist in the same transaction as the signup. existingReferrals
// is the referrer's current referral count, read under the caller's lock so
// the per-user limit is enforced exactly once.
func RegisterReferral(referrer *models.User, referredUserID uint, code string, existingReferrals int, cfg Config, now time.Time) (*models.Referral, error) {
	if existingReferrals >= cfg.MaxReferralsPerUser {
		return nil, ErrReferralLimitExceeded
	}

	awardedAt := now
	referral := &models.Referral{
		ReferrerID:       referrer.ID,
		ReferredUserID:   referredUserID,
		ReferralCodeUsed: code,
		BonusAwarded:     true,
		BonusAmount:      cfg.ReferralBonusPoints,
		BonusAwardedAt:   &awardedAt,
	}
	referrer.ReferralPoints += cfg.ReferralBonusPoints

	return referral, nil
}
