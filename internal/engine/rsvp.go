package engine

import (
	"time"

	"github.com/supperclub-dev/supperclub/internal/models"
)

// rsvpTransitions is the single source of truth for RSVP status changes.
// Declined, Cancelled, Attended and NoShow are terminal: they have no entry,
// so no transition (including a repeated host decision) can leave them. This
// also makes the attendance reputation deltas apply at most once per RSVP.
var rsvpTransitions = map[models.RSVPStatus][]models.RSVPStatus{
	models.RSVPStatusPending: {
		models.RSVPStatusConfirmed,
		models.RSVPStatusDeclined,
		models.RSVPStatusCancelled,
	},
	models.RSVPStatusConfirmed: {
		models.RSVPStatusCancelled,
		models.RSVPStatusAttended,
		models.RSVPStatusNoShow,
	},
}

func canTransitionRSVP(from, to models.RSVPStatus) bool {
	for _, next := range rsvpTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Decision is a host's verdict on a guest's RSVP.
type Decision string

const (
	DecisionConfirmed Decision = "confirmed"
	DecisionDeclined  Decision = "declined"
	DecisionAttended  Decision = "attended"
	DecisionNoShow    Decision = "no_show"
)

var decisionStatus = map[Decision]models.RSVPStatus{
	DecisionConfirmed: models.RSVPStatusConfirmed,
	DecisionDeclined:  models.RSVPStatusDeclined,
	DecisionAttended:  models.RSVPStatusAttended,
	DecisionNoShow:    models.RSVPStatusNoShow,
}

// ParseDecision maps a request value onto a known host decision.
func ParseDecision(s string) (Decision, bool) {
	d := Decision(s)
	_, ok := decisionStatus[d]
	return d, ok
}

// CreateRSVPInput carries a guest's self-service sign-up request.
type CreateRSVPInput struct {
	GuestCount       int
	Message          string
	FoodItemID       *uint
	BringingFoodItem string
	FoodNotes        string
}

// CreateRSVP signs user up for the event. The event must be loaded with its
// RSVPs and FoodItems; a successful claim mutates the matching item in
// event.FoodItems, and the caller persists both it and the returned RSVP.
func CreateRSVP(event *models.Event, user models.User, input CreateRSVPInput, now time.Time) (*models.RSVP, error) {
	if input.GuestCount < 1 {
		return nil, ErrInvalidGuestCount
	}
	if event.Status != models.EventStatusOpen {
		return nil, ErrEventNotOpen
	}
	if now.After(event.RSVPDeadline) {
		return nil, ErrDeadlinePassed
	}
	for _, r := range event.RSVPs {
		if r.UserID == user.ID && r.Status != models.RSVPStatusCancelled && r.Status != models.RSVPStatusDeclined {
			return nil, ErrDuplicateRSVP
		}
	}
	if event.HostID == user.ID {
		return nil, ErrHostCannotRSVP
	}
	if AvailableSpots(*event, event.RSVPs) < input.GuestCount {
		return nil, ErrInsufficientCapacity
	}

	if input.FoodItemID != nil {
		item := findFoodItem(event, *input.FoodItemID)
		if item == nil {
			return nil, ErrFoodItemNotFound
		}
		if err := ClaimFoodItem(item); err != nil {
			return nil, err
		}
	}

	return &models.RSVP{
		UserID:           user.ID,
		EventID:          event.ID,
		FoodItemID:       input.FoodItemID,
		Status:           models.RSVPStatusPending,
		GuestCount:       input.GuestCount,
		Message:          input.Message,
		BringingFoodItem: input.BringingFoodItem,
		FoodNotes:        input.FoodNotes,
	}, nil
}

// CancelRSVP withdraws a guest's RSVP and releases their food claim, if any.
// rsvp.FoodItem must be preloaded when FoodItemID is set.
func CancelRSVP(rsvp *models.RSVP) error {
	if !canTransitionRSVP(rsvp.Status, models.RSVPStatusCancelled) {
		return ErrInvalidTransition
	}
	rsvp.Status = models.RSVPStatusCancelled
	if rsvp.FoodItem != nil {
		ReleaseFoodItem(rsvp.FoodItem)
	}
	return nil
}

// HostDecision applies the host's verdict to an RSVP, updating the guest's
// reputation on attendance outcomes. The transition table rejects decisions
// on terminal RSVPs, so attended/no-show deltas cannot be applied twice.
func HostDecision(rsvp *models.RSVP, guest *models.User, decision Decision, cfg Config, now time.Time) error {
	target, ok := decisionStatus[decision]
	if !ok {
		return ErrInvalidTransition
	}
	if !canTransitionRSVP(rsvp.Status, target) {
		return ErrInvalidTransition
	}

	rsvp.Status = target
	switch decision {
	case DecisionConfirmed:
		confirmedAt := now
		rsvp.ConfirmedAt = &confirmedAt
	case DecisionAttended:
		attendedAt := now
		rsvp.AttendedAt = &attendedAt
		OnAttended(guest, cfg)
	case DecisionNoShow:
		OnNoShow(guest, cfg)
	}
	return nil
}

// CreateInvite reserves a seat for invitee out of the event's reserved pool.
// Host-only; authorization is checked by the caller.
func CreateInvite(event *models.Event, invitee models.User, now time.Time) (*models.RSVP, error) {
	if event.Status != models.EventStatusDraft && event.Status != models.EventStatusOpen {
		return nil, ErrEventNotInvitable
	}
	for _, r := range event.RSVPs {
		if r.UserID == invitee.ID && r.Status != models.RSVPStatusCancelled && r.Status != models.RSVPStatusDeclined {
			return nil, ErrAlreadyInvited
		}
	}
	if ReservedSlotUsage(event.RSVPs) >= event.ReservedSpots {
		return nil, ErrNoReservedSpots
	}

	invitedAt := now
	return &models.RSVP{
		UserID:     invitee.ID,
		EventID:    event.ID,
		Status:     models.RSVPStatusPending,
		GuestCount: 1,
		IsReserved: true,
		InvitedAt:  &invitedAt,
	}, nil
}

// AcceptInvite confirms a pending invite on the invitee's behalf.
func AcceptInvite(rsvp *models.RSVP, now time.Time) error {
	if rsvp.Status != models.RSVPStatusPending {
		return ErrInvalidTransition
	}
	rsvp.Status = models.RSVPStatusConfirmed
	confirmedAt := now
	rsvp.ConfirmedAt = &confirmedAt
	return nil
}

// DeclineInvite declines a pending invite, freeing its reserved seat.
func DeclineInvite(rsvp *models.RSVP) error {
	if rsvp.Status != models.RSVPStatusPending {
		return ErrInvalidTransition
	}
	rsvp.Status = models.RSVPStatusDeclined
	return nil
}

func findFoodItem(event *models.Event, id uint) *models.FoodItem {
	for i := range event.FoodItems {
		if event.FoodItems[i].ID == id {
			return &event.FoodItems[i]
		}
	}
	return nil
}
