package engine

import (
	"errors"
	"testing"
)

func TestClaimFoodItem(t *testing.T) {
	t.Run("claim increments by one regardless of party size", func(t *testing.T) {
		item := foodItem(1, 2, 0)

		if err := ClaimFoodItem(&item); err != nil {
			t.Fatalf("ClaimFoodItem() error = %v", err)
		}
		if item.QuantityClaimed != 1 {
			t.Errorf("QuantityClaimed = %d, want 1", item.QuantityClaimed)
		}
	})

	t.Run("claim on fully claimed item fails", func(t *testing.T) {
		item := foodItem(1, 1, 1)

		err := ClaimFoodItem(&item)
		if !errors.Is(err, ErrFoodItemFullyClaimed) {
			t.Fatalf("ClaimFoodItem() error = %v, want ErrFoodItemFullyClaimed", err)
		}
		if item.QuantityClaimed != 1 {
			t.Errorf("QuantityClaimed = %d, want unchanged 1", item.QuantityClaimed)
		}
	})
}

func TestReleaseFoodItem(t *testing.T) {
	t.Run("release decrements", func(t *testing.T) {
		item := foodItem(1, 2, 2)

		ReleaseFoodItem(&item)

		if item.QuantityClaimed != 1 {
			t.Errorf("QuantityClaimed = %d, want 1", item.QuantityClaimed)
		}
	})

	t.Run("double release floors at zero", func(t *testing.T) {
		item := foodItem(1, 2, 1)

		ReleaseFoodItem(&item)
		ReleaseFoodItem(&item)
		ReleaseFoodItem(&item)

		if item.QuantityClaimed != 0 {
			t.Errorf("QuantityClaimed = %d, want 0", item.QuantityClaimed)
		}
	})
}

func TestClaimReleaseCycle(t *testing.T) {
	// A single-unit item: claimed, blocked for the next guest, freed again
	// after the claimer cancels.
	item := foodItem(1, 1, 0)

	if err := ClaimFoodItem(&item); err != nil {
		t.Fatalf("first claim error = %v", err)
	}
	if !IsFullyClaimed(item) {
		t.Fatal("IsFullyClaimed() = false after claiming the only unit")
	}
	if err := ClaimFoodItem(&item); !errors.Is(err, ErrFoodItemFullyClaimed) {
		t.Fatalf("second claim error = %v, want ErrFoodItemFullyClaimed", err)
	}

	ReleaseFoodItem(&item)

	if item.QuantityClaimed != 0 {
		t.Fatalf("QuantityClaimed = %d after release, want 0", item.QuantityClaimed)
	}
	if err := ClaimFoodItem(&item); err != nil {
		t.Fatalf("re-claim after release error = %v", err)
	}
}

func TestRemainingNeeded(t *testing.T) {
	tests := []struct {
		name    string
		needed  int
		claimed int
		want    int
	}{
		{"untouched", 3, 0, 3},
		{"partially claimed", 3, 2, 1},
		{"fully claimed", 3, 3, 0},
		{"over-claimed clamps to zero", 3, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := foodItem(1, tt.needed, tt.claimed)
			if got := RemainingNeeded(item); got != tt.want {
				t.Errorf("RemainingNeeded() = %d, want %d", got, tt.want)
			}
		})
	}
}
