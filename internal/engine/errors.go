package engine

import "errors"

// Guard failures returned by engine operations. All are value returns; a failed
// operation leaves the aggregate untouched and the surrounding transaction rolls back.
var (
	ErrEventNotOpen          = errors.New("event is not open for RSVPs")
	ErrDeadlinePassed        = errors.New("RSVP deadline has passed")
	ErrDuplicateRSVP         = errors.New("user already has an active RSVP for this event")
	ErrHostCannotRSVP        = errors.New("hosts cannot RSVP to their own events")
	ErrInsufficientCapacity  = errors.New("not enough spots available")
	ErrFoodItemNotFound      = errors.New("food item not found for this event")
	ErrFoodItemFullyClaimed  = errors.New("food item has already been fully claimed")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrEventNotInvitable     = errors.New("cannot invite guests to this event")
	ErrAlreadyInvited        = errors.New("user is already invited or has RSVP'd")
	ErrNoReservedSpots       = errors.New("no more reserved spots available")
	ErrQuorumNotMet          = errors.New("not enough confirmed RSVPs to confirm the event")
	ErrHostTrustTooLow       = errors.New("trust score is too low to host events")
	ErrInvalidDates          = errors.New("invalid event dates or capacity bounds")
	ErrInvalidGuestCount     = errors.New("guest count must be at least 1")
	ErrReferralLimitExceeded = errors.New("referral code has reached its limit")
)
