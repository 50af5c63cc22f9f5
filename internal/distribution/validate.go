package distribution

import "github.com/dividircl/backend/internal/models"

// epsilon is the reconciliation tolerance: one cent of whatever currency the
// receipt is in.
const epsilon = 0.01

// Summary holds the receipt's authoritative figures, recomputed from the
// items independently of any per-person allocation.
type Summary struct {
	Subtotal  float64
	TipAmount float64
	Total     float64
}

// Summarize computes subtotal, tip and total straight from the receipt.
func Summarize(r *models.Receipt) Summary {
	var subtotal float64
	for _, item := range r.Items {
		subtotal += float64(item.Quantity) * item.UnitPrice
	}
	tip := subtotal * r.TipPercent
	return Summary{
		Subtotal:  subtotal,
		TipAmount: tip,
		Total:     subtotal + tip,
	}
}

// ValidationResult reports whether the per-person totals reconcile with the
// receipt total. The three figures are meaningful only when HasDiscrepancy
// is set; the wire layer omits them otherwise.
type ValidationResult struct {
	HasDiscrepancy  bool
	ReceiptTotal    float64
	PersonTotalsSum float64
	Difference      float64
}

// Validate compares the receipt's authoritative total against the sum of all
// person totals. A difference beyond one cent is reported as a discrepancy
// with the contributing figures for diagnostic display. This is advisory
// only: it never blocks or corrects, it feeds a warning banner.
func Validate(r *models.Receipt, totals *Totals) ValidationResult {
	receiptTotal := Summarize(r).Total
	personTotalsSum := totals.Sum()

	difference := receiptTotal - personTotalsSum
	if difference < 0 {
		difference = -difference
	}

	if difference > epsilon {
		return ValidationResult{
			HasDiscrepancy:  true,
			ReceiptTotal:    receiptTotal,
			PersonTotalsSum: personTotalsSum,
			Difference:      difference,
		}
	}
	return ValidationResult{}
}
