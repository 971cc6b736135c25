// Package engine implements the reservation and reputation core: event and RSVP
// state machines, capacity accounting, food-claim accounting, and trust-score
// bookkeeping. Operations work on aggregates already loaded by the caller
// (an Event together with its RSVPs and FoodItems) and never touch the database;
// the caller persists the mutated entities inside one transaction.
package engine

// Config carries the tunable constants consulted by engine operations. It is
// built once at process start and passed in explicitly; nothing in this package
// reads global state.
type Config struct {
	DefaultTrustScore           int
	MinTrustScoreToHost         int
	FlakePenalty                int
	SuccessfulEventBonus        int
	ReferralBonusPoints         int
	MaxReferralsPerUser         int
	MinDaysBeforeEventToConfirm int
}
