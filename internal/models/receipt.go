package models

// Receipt represents one processed bill to be split among named participants.
type Receipt struct {
	// ID is the unique identifier for the receipt (UUID format).
	ID string

	// UserEmail is the email of the account that owns this receipt.
	// All fetches and edits are scoped to it.
	UserEmail string

	// PlaceName is the restaurant or venue name shown on the receipt.
	PlaceName string

	// TipPercent is the surcharge rate applied uniformly to every item,
	// stored as a fraction in [0, 1] (0.10 for 10%).
	TipPercent float64

	// Items are the receipt lines, in display order.
	Items []Item

	// People are the participant names splitting this receipt, in display
	// order. Uniqueness is enforced by the editing UI, not here.
	People []string

	// CreatedAt is the Unix timestamp when the receipt was created.
	CreatedAt int64
}

// Item represents a single line on a receipt.
type Item struct {
	// ID is the unique identifier for the item (UUID format), stable
	// across edits.
	ID string

	// Name is the display label (e.g. "Pizza"). Distinct items may share a
	// name; per-person amounts accumulate under it.
	Name string

	// Quantity is the positive unit count for this line.
	Quantity int

	// UnitPrice is the non-negative price per unit, currency-agnostic.
	UnitPrice float64

	// Owners are the participants responsible for this item. An empty set
	// means "shared across everyone on the receipt", not "owned by nobody".
	Owners []string
}

// Clone returns a deep copy of the receipt. Edit operations work on clones
// so callers keep an unmodified last-saved state to diff against.
func (r *Receipt) Clone() *Receipt {
	clone := *r
	clone.People = append([]string(nil), r.People...)
	clone.Items = make([]Item, len(r.Items))
	for i, item := range r.Items {
		clone.Items[i] = item
		clone.Items[i].Owners = append([]string(nil), item.Owners...)
	}
	return &clone
}
