// Package edit implements the receipt edit operations as pure functions:
// every operation takes a receipt and returns a new one, leaving the input
// untouched. Callers keep the last-saved receipt around and use Diff to
// derive the pending change set for saving.
//
// Edits never fail destructively. Invalid input is normalized at this
// boundary instead of rejected: blank values are ignored, a non-numeric or
// zero quantity falls back to 1, a non-numeric price falls back to 0, people
// names are trimmed and blank ones dropped.
package edit

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dividircl/backend/internal/distribution"
	"github.com/dividircl/backend/internal/models"
)

// Field names an editable item field for UpdateItemField.
type Field string

const (
	FieldName      Field = "name"
	FieldUnitPrice Field = "unitPrice"
	FieldQuantity  Field = "quantity"
)

// ParseQuantity parses the leading integer of a quantity input: an optional
// sign followed by digits, anything after them ignored ("2x" is 2, "2.7" is
// 2). Inputs with no leading digits, or that parse to zero, fall back to 1.
func ParseQuantity(s string) int {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	end := i
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == i {
		return 1
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n == 0 {
		return 1
	}
	return n
}

// ParsePrice parses a unit-price input, falling back to 0 for anything
// non-numeric.
func ParsePrice(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// RenamePlace sets the receipt's place name.
func RenamePlace(r *models.Receipt, name string) *models.Receipt {
	out := r.Clone()
	out.PlaceName = name
	return out
}

// SetTipPercent sets the tip rate from a whole-number percentage, clamped to
// [0, 100] and stored as a fraction.
func SetTipPercent(r *models.Receipt, wholePercent float64) *models.Receipt {
	if wholePercent < 0 {
		wholePercent = 0
	}
	if wholePercent > 100 {
		wholePercent = 100
	}
	out := r.Clone()
	out.TipPercent = wholePercent / 100
	return out
}

// UpdateItemField applies one raw field edit to an item. Blank input and
// unknown item IDs are no-ops.
func UpdateItemField(r *models.Receipt, itemID string, field Field, value string) *models.Receipt {
	if strings.TrimSpace(value) == "" {
		return r.Clone()
	}

	out := r.Clone()
	for i := range out.Items {
		if out.Items[i].ID != itemID {
			continue
		}
		switch field {
		case FieldName:
			out.Items[i].Name = value
		case FieldUnitPrice:
			out.Items[i].UnitPrice = ParsePrice(value)
		case FieldQuantity:
			out.Items[i].Quantity = ParseQuantity(value)
		}
		break
	}
	return out
}

// ItemDraft is user input for a new receipt line.
type ItemDraft struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

// AddItems appends new items from drafts. Drafts with blank names are
// dropped, quantity is clamped to at least 1, price to at least 0, and each
// item starts unowned (shared) with a fresh ID.
func AddItems(r *models.Receipt, drafts []ItemDraft) *models.Receipt {
	out := r.Clone()
	for _, draft := range drafts {
		name := strings.TrimSpace(draft.Name)
		if name == "" {
			continue
		}
		quantity := draft.Quantity
		if quantity < 1 {
			quantity = 1
		}
		price := draft.UnitPrice
		if price < 0 {
			price = 0
		}
		out.Items = append(out.Items, models.Item{
			ID:        uuid.New().String(),
			Name:      name,
			Quantity:  quantity,
			UnitPrice: price,
		})
	}
	return out
}

// RemoveItem deletes an item by ID. Unknown IDs are a no-op.
func RemoveItem(r *models.Receipt, itemID string) *models.Receipt {
	out := r.Clone()
	items := out.Items[:0]
	for _, item := range out.Items {
		if item.ID != itemID {
			items = append(items, item)
		}
	}
	out.Items = items
	return out
}

// ToggleOwner adds the person to the item's owner set, or removes them if
// already present.
func ToggleOwner(r *models.Receipt, itemID, person string) *models.Receipt {
	out := r.Clone()
	for i := range out.Items {
		if out.Items[i].ID != itemID {
			continue
		}
		owners := out.Items[i].Owners
		removed := owners[:0]
		found := false
		for _, owner := range owners {
			if owner == person && !found {
				found = true
				continue
			}
			removed = append(removed, owner)
		}
		if found {
			out.Items[i].Owners = removed
		} else {
			out.Items[i].Owners = append(owners, person)
		}
		break
	}
	return out
}

// SetPeople replaces the participant list. Names are trimmed and blank ones
// dropped; people removed from the receipt are also scrubbed from every
// item's owner set.
func SetPeople(r *models.Receipt, people []string) *models.Receipt {
	valid := make([]string, 0, len(people))
	for _, person := range people {
		if trimmed := strings.TrimSpace(person); trimmed != "" {
			valid = append(valid, trimmed)
		}
	}

	keep := make(map[string]bool, len(valid))
	for _, person := range valid {
		keep[person] = true
	}

	out := r.Clone()
	out.People = valid
	for i := range out.Items {
		owners := out.Items[i].Owners[:0]
		for _, owner := range out.Items[i].Owners {
			if keep[owner] {
				owners = append(owners, owner)
			}
		}
		out.Items[i].Owners = owners
	}
	return out
}

// SplitItem replaces a multi-quantity item with per-unit items (see
// distribution.SplitItem). The original is removed and the unit items are
// appended at the end, matching how the splitter UI orders them. Quantity
// <= 1 and unknown IDs are no-ops.
func SplitItem(r *models.Receipt, itemID string) *models.Receipt {
	out := r.Clone()
	for i := range out.Items {
		if out.Items[i].ID != itemID {
			continue
		}
		units := distribution.SplitItem(&out.Items[i])
		if units == nil {
			return out
		}
		out.Items = append(append(out.Items[:i], out.Items[i+1:]...), units...)
		return out
	}
	return out
}
