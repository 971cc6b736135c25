package engine

import "github.com/supperclub-dev/supperclub/internal/models"

// Claim records one RSVP's commitment to bring the item. The increment is
// always 1 regardless of the RSVP's guest count. Concurrent claims on the last
// remaining unit must be serialized by the caller's transaction.
func ClaimFoodItem(item *models.FoodItem) error {
	if IsFullyClaimed(*item) {
		return ErrFoodItemFullyClaimed
	}
	item.QuantityClaimed++
	return nil
}

// ReleaseFoodItem undoes one claim, flooring at zero so a repeated cancel can
// never drive the count negative.
func ReleaseFoodItem(item *models.FoodItem) {
	if item.QuantityClaimed > 0 {
		item.QuantityClaimed--
	}
}

// IsFullyClaimed reports whether the item needs no further claims.
func IsFullyClaimed(item models.FoodItem) bool {
	return item.QuantityClaimed >= item.QuantityNeeded
}

// RemainingNeeded returns how many claims the item still needs, never negative.
func RemainingNeeded(item models.FoodItem) int {
	remaining := item.QuantityNeeded - item.QuantityClaimed
	if remaining < 0 {
		return 0
	}
	return remaining
}
