package engine

import "github.com/supperclub-dev/supperclub/internal/models"

// Capacity queries are pure functions over the current RSVP set. They are
// re-evaluated on every capacity-sensitive transition rather than cached,
// because RSVP statuses change under concurrent requests.

// AvailableSpots returns how many public seats remain. Pending RSVPs hold a
// seat just like confirmed ones; declined, cancelled and no-show RSVPs never
// count. Never negative.
func AvailableSpots(event models.Event, rsvps []models.RSVP) int {
	held := 0
	for _, r := range rsvps {
		if r.Status == models.RSVPStatusPending || r.Status == models.RSVPStatusConfirmed {
			held++
		}
	}
	spots := event.MaxGuests - event.ReservedSpots - held
	if spots < 0 {
		return 0
	}
	return spots
}

// ConfirmedGuestCount returns the number of host-confirmed RSVPs.
func ConfirmedGuestCount(rsvps []models.RSVP) int {
	count := 0
	for _, r := range rsvps {
		if r.Status == models.RSVPStatusConfirmed {
			count++
		}
	}
	return count
}

// CanBeConfirmed reports whether the event has met its quorum.
func CanBeConfirmed(event models.Event, rsvps []models.RSVP) bool {
	return ConfirmedGuestCount(rsvps) >= event.MinGuests
}

// ReservedSlotUsage counts reserved (host-invited) RSVPs that still occupy a
// reserved seat. Used to cap invite creation at Event.ReservedSpots.
func ReservedSlotUsage(rsvps []models.RSVP) int {
	count := 0
	for _, r := range rsvps {
		if r.IsReserved && r.Status != models.RSVPStatusCancelled && r.Status != models.RSVPStatusDeclined {
			count++
		}
	}
	return count
}
