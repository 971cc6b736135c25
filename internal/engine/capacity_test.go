package engine

import (
	"testing"
	"time"

	"github.com/supperclub-dev/supperclub/internal/models"
)

func TestAvailableSpots(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name          string
		maxGuests     int
		reservedSpots int
		statuses      []models.RSVPStatus
		want          int
	}{
		{
			name:      "no RSVPs",
			maxGuests: 6,
			want:      6,
		},
		{
			name:          "reserved spots reduce public capacity",
			maxGuests:     6,
			reservedSpots: 2,
			want:          4,
		},
		{
			name:      "pending and confirmed both hold seats",
			maxGuests: 6,
			statuses:  []models.RSVPStatus{models.RSVPStatusPending, models.RSVPStatusConfirmed},
			want:      4,
		},
		{
			name:      "terminal statuses free their seats",
			maxGuests: 4,
			statuses: []models.RSVPStatus{
				models.RSVPStatusCancelled,
				models.RSVPStatusDeclined,
				models.RSVPStatusNoShow,
				models.RSVPStatusAttended,
			},
			want: 4,
		},
		{
			name:          "never negative",
			maxGuests:     2,
			reservedSpots: 2,
			statuses:      []models.RSVPStatus{models.RSVPStatusConfirmed},
			want:          0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := openEvent(tt.maxGuests, tt.reservedSpots, 1, now)
			var rsvps []models.RSVP
			for i, status := range tt.statuses {
				rsvps = append(rsvps, rsvpWith(uint(i+1), uint(i+2), status))
			}

			if got := AvailableSpots(event, rsvps); got != tt.want {
				t.Errorf("AvailableSpots() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAvailableSpotsNeverExceedsPublicCapacity(t *testing.T) {
	now := time.Now().UTC()
	event := openEvent(6, 2, 1, now)

	rsvps := []models.RSVP{rsvpWith(1, 2, models.RSVPStatusCancelled)}

	if got, limit := AvailableSpots(event, rsvps), event.MaxGuests-event.ReservedSpots; got > limit {
		t.Errorf("AvailableSpots() = %d, exceeds max public capacity %d", got, limit)
	}
}

func TestConfirmedGuestCountAndQuorum(t *testing.T) {
	now := time.Now().UTC()
	event := openEvent(6, 1, 4, now)

	rsvps := []models.RSVP{
		rsvpWith(1, 2, models.RSVPStatusConfirmed),
		rsvpWith(2, 3, models.RSVPStatusConfirmed),
		rsvpWith(3, 4, models.RSVPStatusConfirmed),
		rsvpWith(4, 5, models.RSVPStatusPending),
	}

	if got := ConfirmedGuestCount(rsvps); got != 3 {
		t.Errorf("ConfirmedGuestCount() = %d, want 3", got)
	}
	if CanBeConfirmed(event, rsvps) {
		t.Error("CanBeConfirmed() = true with 3 confirmed, quorum is 4")
	}

	rsvps[3].Status = models.RSVPStatusConfirmed

	if !CanBeConfirmed(event, rsvps) {
		t.Error("CanBeConfirmed() = false with 4 confirmed, quorum is 4")
	}
}

func TestReservedSlotUsage(t *testing.T) {
	pending := rsvpWith(1, 2, models.RSVPStatusPending)
	pending.IsReserved = true
	confirmed := rsvpWith(2, 3, models.RSVPStatusConfirmed)
	confirmed.IsReserved = true
	declined := rsvpWith(3, 4, models.RSVPStatusDeclined)
	declined.IsReserved = true
	public := rsvpWith(4, 5, models.RSVPStatusPending)

	rsvps := []models.RSVP{pending, confirmed, declined, public}

	if got := ReservedSlotUsage(rsvps); got != 2 {
		t.Errorf("ReservedSlotUsage() = %d, want 2", got)
	}
}

// The scenario from the capacity design: maxGuests=6, reservedSpots=1,
// minGuests=4, four confirmed singles. A fifth guest bringing a plus-one must
// be rejected because only one public seat remains.
func TestCapacityScenarioFourConfirmedThenPartyOfTwo(t *testing.T) {
	now := time.Now().UTC()
	event := openEvent(6, 1, 4, now)

	for i := 0; i < 4; i++ {
		event.RSVPs = append(event.RSVPs, rsvpWith(uint(i+1), uint(i+2), models.RSVPStatusConfirmed))
	}

	if got := ConfirmedGuestCount(event.RSVPs); got != 4 {
		t.Fatalf("ConfirmedGuestCount() = %d, want 4", got)
	}
	if !CanBeConfirmed(event, event.RSVPs) {
		t.Fatal("CanBeConfirmed() = false, want true")
	}
	if err := ConfirmEvent(&event); err != nil {
		t.Fatalf("ConfirmEvent() error = %v", err)
	}
	if event.Status != models.EventStatusConfirmed {
		t.Fatalf("event status = %q, want confirmed", event.Status)
	}

	if got := AvailableSpots(event, event.RSVPs); got != 1 {
		t.Fatalf("AvailableSpots() = %d, want 1", got)
	}

	// Status guard fires first on a confirmed event, but capacity alone also
	// rejects a party of two with one seat left.
	if AvailableSpots(event, event.RSVPs) >= 2 {
		t.Error("a guest_count=2 RSVP should not fit")
	}
}
