package distribution

import (
	"github.com/google/uuid"

	"github.com/dividircl/backend/internal/models"
)

// SplitItem decomposes one multi-quantity item into quantity unit items,
// each with the same name and unit price and its own copy of the owner set,
// so owners can then be reassigned per unit. Every new item gets a fresh ID.
//
// The monetary total is invariant: with owners unchanged, the sum of the
// unit items' contributions equals the original item's.
//
// Returns nil when quantity <= 1; callers treat that as a no-op.
func SplitItem(item *models.Item) []models.Item {
	if item.Quantity <= 1 {
		return nil
	}

	units := make([]models.Item, item.Quantity)
	for i := range units {
		units[i] = models.Item{
			ID:        uuid.New().String(),
			Name:      item.Name,
			Quantity:  1,
			UnitPrice: item.UnitPrice,
			Owners:    append([]string(nil), item.Owners...),
		}
	}
	return units
}
