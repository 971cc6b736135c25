package engine

import (
	"time"

	"github.com/supperclub-dev/supperclub/internal/models"
)

// FoodItemInput describes one requested contribution on an event.
type FoodItemInput struct {
	Name           string
	Description    string
	QuantityNeeded int
}

// CreateEventInput carries a host's new-event request.
type CreateEventInput struct {
	Title           string
	Description     string
	EventDate       time.Time
	LocationName    string
	LocationAddress string
	LocationNotes   string
	MaxGuests       int
	ReservedSpots   int
	MinGuests       int
	RSVPDeadline    time.Time
	IsPublic        bool
	FoodItems       []FoodItemInput
}

// CreateEvent validates the host's trust score, dates and capacity bounds and
// returns a new Open event with its food items attached. The confirmation
// deadline is derived from the event date.
func CreateEvent(host models.User, input CreateEventInput, cfg Config, now time.Time) (*models.Event, error) {
	if !CanHost(host, cfg) {
		return nil, ErrHostTrustTooLow
	}
	if !input.EventDate.After(now) {
		return nil, ErrInvalidDates
	}
	if !input.RSVPDeadline.Before(input.EventDate) {
		return nil, ErrInvalidDates
	}
	if input.MaxGuests < 1 || input.ReservedSpots < 0 || input.ReservedSpots > input.MaxGuests {
		return nil, ErrInvalidDates
	}

	minGuests := input.MinGuests
	if minGuests < 1 {
		minGuests = 1
	}

	event := &models.Event{
		Title:                input.Title,
		Description:          input.Description,
		EventDate:            input.EventDate,
		LocationName:         input.LocationName,
		LocationAddress:      input.LocationAddress,
		LocationNotes:        input.LocationNotes,
		MaxGuests:            input.MaxGuests,
		ReservedSpots:        input.ReservedSpots,
		MinGuests:            minGuests,
		RSVPDeadline:         input.RSVPDeadline,
		ConfirmationDeadline: input.EventDate.AddDate(0, 0, -cfg.MinDaysBeforeEventToConfirm),
		Status:               models.EventStatusOpen,
		IsPublic:             input.IsPublic,
		HostID:               host.ID,
	}
	for _, fi := range input.FoodItems {
		event.FoodItems = append(event.FoodItems, newFoodItem(fi))
	}
	return event, nil
}

// ConfirmEvent moves an Open event to Confirmed once quorum is met.
// The event must be loaded with its RSVPs.
func ConfirmEvent(event *models.Event) error {
	if event.Status != models.EventStatusOpen {
		return ErrInvalidTransition
	}
	if !CanBeConfirmed(*event, event.RSVPs) {
		return ErrQuorumNotMet
	}
	event.Status = models.EventStatusConfirmed
	return nil
}

// CancelEvent cancels the event and cascades to its active RSVPs: every
// Pending or Confirmed RSVP is force-cancelled and any food claim it held is
// released, so claim counts do not stay inflated after cancellation. The
// cancelled RSVPs are returned for the caller to persist alongside the event
// and its food items.
func CancelEvent(event *models.Event) ([]*models.RSVP, error) {
	if event.Status == models.EventStatusCompleted || event.Status == models.EventStatusCancelled {
		return nil, ErrInvalidTransition
	}
	event.Status = models.EventStatusCancelled

	var cancelled []*models.RSVP
	for i := range event.RSVPs {
		r := &event.RSVPs[i]
		if r.Status != models.RSVPStatusPending && r.Status != models.RSVPStatusConfirmed {
			continue
		}
		r.Status = models.RSVPStatusCancelled
		if r.FoodItemID != nil {
			if item := findFoodItem(event, *r.FoodItemID); item != nil {
				ReleaseFoodItem(item)
			}
		}
		cancelled = append(cancelled, r)
	}
	return cancelled, nil
}

// CompleteEvent marks a Confirmed event as held and credits the host. The
// status guard makes the host credit apply exactly once per event.
func CompleteEvent(event *models.Event, host *models.User, cfg Config) error {
	if event.Status != models.EventStatusConfirmed {
		return ErrInvalidTransition
	}
	event.Status = models.EventStatusCompleted
	OnEventCompleted(host, cfg)
	return nil
}

// AddFoodItem appends a new requested contribution to the event's list.
func AddFoodItem(event *models.Event, input FoodItemInput) *models.FoodItem {
	item := newFoodItem(input)
	item.EventID = event.ID
	event.FoodItems = append(event.FoodItems, item)
	return &event.FoodItems[len(event.FoodItems)-1]
}

// EventIsTerminal reports whether the event can no longer change state.
func EventIsTerminal(status models.EventStatus) bool {
	return status == models.EventStatusCompleted || status == models.EventStatusCancelled
}

func newFoodItem(input FoodItemInput) models.FoodItem {
	quantity := input.QuantityNeeded
	if quantity < 1 {
		quantity = 1
	}
	return models.FoodItem{
		Name:           input.Name,
		Description:    input.Description,
		QuantityNeeded: quantity,
	}
}
