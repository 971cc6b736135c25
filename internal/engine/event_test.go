package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/supperclub-dev/supperclub/internal/models"
)

func validEventInput(now time.Time) CreateEventInput {
	return CreateEventInput{
		Title:        "Pasta night",
		EventDate:    now.AddDate(0, 0, 7),
		LocationName: "My place",
		MaxGuests:    6,
		MinGuests:    2,
		RSVPDeadline: now.AddDate(0, 0, 6),
		IsPublic:     true,
	}
}

func TestCreateEvent(t *testing.T) {
	cfg := testConfig()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid input opens the event", func(t *testing.T) {
		input := validEventInput(now)
		input.FoodItems = []FoodItemInput{
			{Name: "Wine", QuantityNeeded: 2},
			{Name: "Dessert"},
		}

		event, err := CreateEvent(testUser(1, 100), input, cfg, now)
		if err != nil {
			t.Fatalf("CreateEvent() error = %v", err)
		}
		if event.Status != models.EventStatusOpen {
			t.Errorf("Status = %q, want open", event.Status)
		}
		wantDeadline := input.EventDate.AddDate(0, 0, -cfg.MinDaysBeforeEventToConfirm)
		if !event.ConfirmationDeadline.Equal(wantDeadline) {
			t.Errorf("ConfirmationDeadline = %v, want %v", event.ConfirmationDeadline, wantDeadline)
		}
		if len(event.FoodItems) != 2 {
			t.Fatalf("len(FoodItems) = %d, want 2", len(event.FoodItems))
		}
		if event.FoodItems[1].QuantityNeeded != 1 {
			t.Errorf("omitted quantity = %d, want default 1", event.FoodItems[1].QuantityNeeded)
		}
	})

	t.Run("min guests defaults to one", func(t *testing.T) {
		input := validEventInput(now)
		input.MinGuests = 0

		event, err := CreateEvent(testUser(1, 100), input, cfg, now)
		if err != nil {
			t.Fatalf("CreateEvent() error = %v", err)
		}
		if event.MinGuests != 1 {
			t.Errorf("MinGuests = %d, want 1", event.MinGuests)
		}
	})

	t.Run("low trust host is rejected", func(t *testing.T) {
		_, err := CreateEvent(testUser(1, 40), validEventInput(now), cfg, now)
		if !errors.Is(err, ErrHostTrustTooLow) {
			t.Fatalf("error = %v, want ErrHostTrustTooLow", err)
		}
	})

	t.Run("attendance can lift a host over the bar", func(t *testing.T) {
		host := testUser(1, 40)
		OnAttended(&host, cfg)

		if _, err := CreateEvent(host, validEventInput(now), cfg, now); err != nil {
			t.Fatalf("error after attendance credit = %v, want nil", err)
		}
	})

	t.Run("invalid dates and capacity", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*CreateEventInput)
		}{
			{"event in the past", func(in *CreateEventInput) { in.EventDate = now.AddDate(0, 0, -1) }},
			{"deadline after event", func(in *CreateEventInput) { in.RSVPDeadline = in.EventDate.Add(time.Hour) }},
			{"deadline equals event", func(in *CreateEventInput) { in.RSVPDeadline = in.EventDate }},
			{"zero capacity", func(in *CreateEventInput) { in.MaxGuests = 0 }},
			{"negative reserved spots", func(in *CreateEventInput) { in.ReservedSpots = -1 }},
			{"reserved spots exceed capacity", func(in *CreateEventInput) { in.ReservedSpots = 7 }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				input := validEventInput(now)
				tt.mutate(&input)
				_, err := CreateEvent(testUser(1, 100), input, cfg, now)
				if !errors.Is(err, ErrInvalidDates) {
					t.Errorf("error = %v, want ErrInvalidDates", err)
				}
			})
		}
	})
}

func TestConfirmEvent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("quorum met", func(t *testing.T) {
		event := openEvent(6, 0, 2, now)
		event.RSVPs = []models.RSVP{
			rsvpWith(1, 2, models.RSVPStatusConfirmed),
			rsvpWith(2, 3, models.RSVPStatusConfirmed),
		}

		if err := ConfirmEvent(&event); err != nil {
			t.Fatalf("ConfirmEvent() error = %v", err)
		}
		if event.Status != models.EventStatusConfirmed {
			t.Errorf("Status = %q, want confirmed", event.Status)
		}
	})

	t.Run("pending guests do not count toward quorum", func(t *testing.T) {
		event := openEvent(6, 0, 2, now)
		event.RSVPs = []models.RSVP{
			rsvpWith(1, 2, models.RSVPStatusPending),
			rsvpWith(2, 3, models.RSVPStatusConfirmed),
		}

		if err := ConfirmEvent(&event); !errors.Is(err, ErrQuorumNotMet) {
			t.Fatalf("error = %v, want ErrQuorumNotMet", err)
		}
		if event.Status != models.EventStatusOpen {
			t.Errorf("Status = %q, want still open", event.Status)
		}
	})

	t.Run("only open events confirm", func(t *testing.T) {
		event := openEvent(6, 0, 1, now)
		event.Status = models.EventStatusCancelled
		if err := ConfirmEvent(&event); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("error = %v, want ErrInvalidTransition", err)
		}
	})
}

func TestCancelEvent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("cascades to active RSVPs and releases claims", func(t *testing.T) {
		event := openEvent(6, 0, 1, now)
		event.FoodItems = []models.FoodItem{foodItem(3, 2, 2)}
		itemID := uint(3)

		claimer := rsvpWith(1, 2, models.RSVPStatusConfirmed)
		claimer.FoodItemID = &itemID
		event.RSVPs = []models.RSVP{
			claimer,
			rsvpWith(2, 3, models.RSVPStatusPending),
			rsvpWith(3, 4, models.RSVPStatusDeclined),
		}

		cancelled, err := CancelEvent(&event)
		if err != nil {
			t.Fatalf("CancelEvent() error = %v", err)
		}
		if event.Status != models.EventStatusCancelled {
			t.Errorf("Status = %q, want cancelled", event.Status)
		}
		if len(cancelled) != 2 {
			t.Fatalf("len(cancelled) = %d, want 2", len(cancelled))
		}
		for _, r := range cancelled {
			if r.Status != models.RSVPStatusCancelled {
				t.Errorf("RSVP %d status = %q, want cancelled", r.ID, r.Status)
			}
		}
		if event.RSVPs[2].Status != models.RSVPStatusDeclined {
			t.Errorf("declined RSVP status = %q, want untouched", event.RSVPs[2].Status)
		}
		if event.FoodItems[0].QuantityClaimed != 1 {
			t.Errorf("QuantityClaimed = %d, want 1 after releasing the cancelled claim", event.FoodItems[0].QuantityClaimed)
		}
	})

	t.Run("terminal events stay put", func(t *testing.T) {
		event := openEvent(6, 0, 1, now)
		if _, err := CancelEvent(&event); err != nil {
			t.Fatalf("first cancel error = %v", err)
		}
		if _, err := CancelEvent(&event); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("second cancel error = %v, want ErrInvalidTransition", err)
		}
		if err := ConfirmEvent(&event); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("confirm after cancel error = %v, want ErrInvalidTransition", err)
		}
	})
}

func TestCompleteEvent(t *testing.T) {
	cfg := testConfig()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("credits the host exactly once", func(t *testing.T) {
		event := openEvent(6, 0, 1, now)
		event.Status = models.EventStatusConfirmed
		host := testUser(1, 100)

		if err := CompleteEvent(&event, &host, cfg); err != nil {
			t.Fatalf("CompleteEvent() error = %v", err)
		}
		if event.Status != models.EventStatusCompleted {
			t.Errorf("Status = %q, want completed", event.Status)
		}
		if host.TrustScore != 110 || host.EventsHosted != 1 || host.SuccessfulEvents != 1 {
			t.Errorf("host = (trust %d, hosted %d, successful %d), want (110, 1, 1)",
				host.TrustScore, host.EventsHosted, host.SuccessfulEvents)
		}

		if err := CompleteEvent(&event, &host, cfg); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("second complete error = %v, want ErrInvalidTransition", err)
		}
		if host.TrustScore != 110 {
			t.Errorf("TrustScore = %d, want unchanged 110", host.TrustScore)
		}
	})

	t.Run("open events cannot complete", func(t *testing.T) {
		event := openEvent(6, 0, 1, now)
		host := testUser(1, 100)
		if err := CompleteEvent(&event, &host, cfg); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("error = %v, want ErrInvalidTransition", err)
		}
	})
}

func TestAddFoodItem(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	event := openEvent(6, 0, 1, now)

	item := AddFoodItem(&event, FoodItemInput{Name: "Bread", QuantityNeeded: 3})

	if item.EventID != event.ID {
		t.Errorf("EventID = %d, want %d", item.EventID, event.ID)
	}
	if len(event.FoodItems) != 1 || event.FoodItems[0].Name != "Bread" {
		t.Errorf("FoodItems = %+v, want the added item", event.FoodItems)
	}
}

func TestEventIsTerminal(t *testing.T) {
	tests := []struct {
		status models.EventStatus
		want   bool
	}{
		{models.EventStatusDraft, false},
		{models.EventStatusOpen, false},
		{models.EventStatusConfirmed, false},
		{models.EventStatusCancelled, true},
		{models.EventStatusCompleted, true},
	}
	for _, tt := range tests {
		if got := EventIsTerminal(tt.status); got != tt.want {
			t.Errorf("EventIsTerminal(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
