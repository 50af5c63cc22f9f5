package distribution

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dividircl/backend/internal/models"
)

// FormatPrice renders a monetary amount for display: rounded to the nearest
// whole unit, thousands grouped with "." and prefixed with "$", the Chilean
// money convention ("$2.000").
//
// The grouping is explicit rather than CLDR-driven on purpose: share text is
// a byte-exact contract and locale data changes grouping of 4-digit numbers
// between releases.
func FormatPrice(value float64) string {
	n := int64(math.Round(value))
	sign := ""
	if n < 0 {
		// The sign sits inside the currency prefix ("$-1.500"), matching
		// how the share text has always rendered.
		sign = "-"
		n = -n
	}
	return "$" + sign + groupThousands(strconv.FormatInt(n, 10))
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatShareText renders the deterministic plain-text summary meant to be
// copied to the clipboard or sent through a share link:
//
//	*<place>*
//
//	Subtotal: $...
//	Propina (N%): $...
//	Total: $...
//
//	*Distribución:*
//
//	<person>: <base> (+<tip>): <total>
//	<item> <base> (+<tip>): <amount>      (per owned item)
//	Items compartidos: <base> + <tip> propina = <shared>  (when shared > 0)
//
//	_Creado en dividir.cl_
//
// Per-person base and tip are decomposed backward from the tip-inclusive
// total (total / (1 + tipPercent)); since the tip rate is receipt-level this
// matches the forward computation. Output is byte-identical across calls for
// the same receipt.
func FormatShareText(r *models.Receipt, totals *Totals) string {
	summary := Summarize(r)

	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n\n", r.PlaceName)
	fmt.Fprintf(&b, "Subtotal: %s\n", FormatPrice(summary.Subtotal))
	fmt.Fprintf(&b, "Propina (%d%%): %s\n", int(math.Round(r.TipPercent*100)), FormatPrice(summary.TipAmount))
	fmt.Fprintf(&b, "Total: %s\n\n", FormatPrice(summary.Total))
	b.WriteString("*Distribución:*\n")

	for _, person := range totals.People() {
		pt := totals.Get(person)
		personTotal := pt.Total()
		base := personTotal / (1 + r.TipPercent)
		tip := personTotal - base
		fmt.Fprintf(&b, "\n%s: %s (+%s): %s",
			person, FormatPrice(base), FormatPrice(tip), FormatPrice(personTotal))

		// Line-level detail comes from the receipt, not the accumulator:
		// same-named items merge in Individual but print one line each.
		for _, name := range ownedItemNames(r, person) {
			for _, item := range r.Items {
				if item.Name != name || !hasOwner(&item, person) {
					continue
				}
				amount := float64(item.Quantity) * item.UnitPrice * (1 + r.TipPercent) / float64(len(item.Owners))
				itemBase := amount / (1 + r.TipPercent)
				itemTip := amount - itemBase
				fmt.Fprintf(&b, "\n%s %s (+%s): %s",
					item.Name, FormatPrice(itemBase), FormatPrice(itemTip), FormatPrice(amount))
			}
		}

		if pt.Shared > 0 {
			sharedBase := pt.Shared / (1 + r.TipPercent)
			sharedTip := pt.Shared - sharedBase
			fmt.Fprintf(&b, "\nItems compartidos: %s + %s propina = %s",
				FormatPrice(sharedBase), FormatPrice(sharedTip), FormatPrice(pt.Shared))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n_Creado en dividir.cl_")
	return b.String()
}

// ownedItemNames returns the distinct names of items the person owns, in
// first-occurrence order.
func ownedItemNames(r *models.Receipt, person string) []string {
	var names []string
	seen := make(map[string]bool)
	for i := range r.Items {
		item := &r.Items[i]
		if !hasOwner(item, person) || seen[item.Name] {
			continue
		}
		seen[item.Name] = true
		names = append(names, item.Name)
	}
	return names
}

func hasOwner(item *models.Item, person string) bool {
	for _, owner := range item.Owners {
		if owner == person {
			return true
		}
	}
	return false
}
