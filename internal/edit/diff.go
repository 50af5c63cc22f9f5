package edit

import "github.com/dividircl/backend/internal/models"

// ItemChange records an updated item: its ID plus the full new state.
type ItemChange struct {
	ID   string
	Item models.Item
}

// PendingChangeSet describes what differs between the working receipt and
// the last-saved one. Nil/empty fields mean "unchanged".
type PendingChangeSet struct {
	PlaceName      *string
	TipPercent     *float64
	People         []string
	UpdatedItems   []ItemChange
	NewItems       []models.Item
	DeletedItemIDs []string
}

// HasChanges reports whether anything needs saving.
func (cs *PendingChangeSet) HasChanges() bool {
	return cs.PlaceName != nil || cs.TipPercent != nil || cs.People != nil ||
		len(cs.UpdatedItems) > 0 || len(cs.NewItems) > 0 || len(cs.DeletedItemIDs) > 0
}

// Fields lists the changed field names, for structured logging.
func (cs *PendingChangeSet) Fields() []string {
	var fields []string
	if cs.PlaceName != nil {
		fields = append(fields, "placeName")
	}
	if cs.TipPercent != nil {
		fields = append(fields, "tipPercent")
	}
	if cs.People != nil {
		fields = append(fields, "people")
	}
	if len(cs.UpdatedItems) > 0 {
		fields = append(fields, "items")
	}
	if len(cs.NewItems) > 0 {
		fields = append(fields, "newItems")
	}
	if len(cs.DeletedItemIDs) > 0 {
		fields = append(fields, "deletedItems")
	}
	return fields
}

// Diff computes the pending change set between the working receipt and the
// last-saved state. Items are matched by ID: present only in current means
// new, present only in lastSaved means deleted, present in both with
// different fields means updated.
func Diff(current, lastSaved *models.Receipt) PendingChangeSet {
	var cs PendingChangeSet

	if current.PlaceName != lastSaved.PlaceName {
		name := current.PlaceName
		cs.PlaceName = &name
	}
	if current.TipPercent != lastSaved.TipPercent {
		tip := current.TipPercent
		cs.TipPercent = &tip
	}
	if !equalStrings(current.People, lastSaved.People) {
		cs.People = append([]string(nil), current.People...)
	}

	saved := make(map[string]*models.Item, len(lastSaved.Items))
	for i := range lastSaved.Items {
		saved[lastSaved.Items[i].ID] = &lastSaved.Items[i]
	}

	seen := make(map[string]bool, len(current.Items))
	for i := range current.Items {
		item := &current.Items[i]
		seen[item.ID] = true
		prev, ok := saved[item.ID]
		if !ok {
			cs.NewItems = append(cs.NewItems, *item)
			continue
		}
		if !equalItems(item, prev) {
			cs.UpdatedItems = append(cs.UpdatedItems, ItemChange{ID: item.ID, Item: *item})
		}
	}

	for i := range lastSaved.Items {
		if !seen[lastSaved.Items[i].ID] {
			cs.DeletedItemIDs = append(cs.DeletedItemIDs, lastSaved.Items[i].ID)
		}
	}

	return cs
}

func equalItems(a, b *models.Item) bool {
	return a.Name == b.Name &&
		a.Quantity == b.Quantity &&
		a.UnitPrice == b.UnitPrice &&
		equalStrings(a.Owners, b.Owners)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
