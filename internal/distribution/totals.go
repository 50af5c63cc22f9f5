// Package distribution implements the bill-splitting engine: per-person
// totals with proportional tip, reconciliation against the receipt's
// authoritative total, and the shareable plain-text summary.
//
// Every function here is a pure, read-only derivation of a Receipt; nothing
// mutates its input and nothing errors on a well-formed receipt. Amounts are
// plain float64 with no rounding during accumulation; rounding happens only
// at display time, and Validate exists to flag accumulated drift.
package distribution

import "github.com/dividircl/backend/internal/models"

// PersonTotal is one participant's tip-inclusive share of a receipt.
type PersonTotal struct {
	// Individual maps item name to the amount this person owes for items
	// they explicitly own. Amounts from same-named items accumulate under
	// one key; the formatter re-derives line-level detail from the receipt.
	Individual map[string]float64

	// Shared is this person's even share of items with no explicit owners.
	Shared float64
}

// Total returns the person's full tip-inclusive amount.
func (pt *PersonTotal) Total() float64 {
	sum := pt.Shared
	for _, amount := range pt.Individual {
		sum += amount
	}
	return sum
}

// Totals holds the per-person breakdown for a receipt. It preserves the
// order entries were created in (receipt people first, then any owners
// encountered that were missing from the people list) so that iteration and
// formatting are deterministic.
type Totals struct {
	order    []string
	byPerson map[string]*PersonTotal
}

// People returns the participant names in deterministic display order.
func (t *Totals) People() []string {
	return t.order
}

// Get returns the breakdown for one person, or nil if they have none.
func (t *Totals) Get(name string) *PersonTotal {
	return t.byPerson[name]
}

// Sum returns the grand total across every person, the figure Validate
// reconciles against the receipt total.
func (t *Totals) Sum() float64 {
	var sum float64
	for _, name := range t.order {
		sum += t.byPerson[name].Total()
	}
	return sum
}

func (t *Totals) entry(name string) *PersonTotal {
	if pt, ok := t.byPerson[name]; ok {
		return pt
	}
	pt := &PersonTotal{Individual: make(map[string]float64)}
	t.byPerson[name] = pt
	t.order = append(t.order, name)
	return pt
}

// ComputeTotals derives the per-person breakdown for a receipt.
//
// Each item's tip-inclusive total is quantity * unitPrice * (1 + tipPercent).
// Items with owners split it evenly across the listed owners; duplicate
// entries in the owner list each receive a full fractional share (so a
// duplicated owner is credited twice; see Validate for the safety net). Items without owners split evenly across every person on the
// receipt into the Shared pool. Owners missing from the people list get an
// entry on demand.
func ComputeTotals(r *models.Receipt) *Totals {
	totals := &Totals{byPerson: make(map[string]*PersonTotal)}
	for _, person := range r.People {
		totals.entry(person)
	}

	for _, item := range r.Items {
		itemTotal := float64(item.Quantity) * item.UnitPrice
		withTip := itemTotal + itemTotal*r.TipPercent

		if len(item.Owners) == 0 {
			if len(r.People) == 0 {
				continue
			}
			share := withTip / float64(len(r.People))
			for _, person := range r.People {
				totals.entry(person).Shared += share
			}
			continue
		}

		share := withTip / float64(len(item.Owners))
		for _, owner := range item.Owners {
			totals.entry(owner).Individual[item.Name] += share
		}
	}

	return totals
}
