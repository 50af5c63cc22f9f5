package distribution

import (
	"math"
	"testing"

	"github.com/dividircl/backend/internal/models"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name           string
		receipt        *models.Receipt
		wantDiscrepant bool
	}{
		{
			// Unowned items on a receipt with nobody to share them leave
			// the whole subtotal unallocated.
			name: "difference just above tolerance flags discrepancy",
			receipt: &models.Receipt{
				Items: []models.Item{
					{Name: "Propina sugerida", Quantity: 1, UnitPrice: 0.011},
				},
			},
			wantDiscrepant: true,
		},
		{
			name: "difference just below tolerance passes",
			receipt: &models.Receipt{
				Items: []models.Item{
					{Name: "Propina sugerida", Quantity: 1, UnitPrice: 0.009},
				},
			},
			wantDiscrepant: false,
		},
		{
			name: "fully allocated receipt reconciles",
			receipt: &models.Receipt{
				TipPercent: 0.10,
				People:     []string{"Ana", "Beto"},
				Items: []models.Item{
					{Name: "Pizza", Quantity: 2, UnitPrice: 12990, Owners: []string{"Ana", "Beto"}},
					{Name: "Bebida", Quantity: 3, UnitPrice: 1990},
				},
			},
			wantDiscrepant: false,
		},
		{
			name:           "empty receipt reconciles",
			receipt:        &models.Receipt{TipPercent: 0.10},
			wantDiscrepant: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeTotals(tt.receipt)
			result := Validate(tt.receipt, totals)

			if result.HasDiscrepancy != tt.wantDiscrepant {
				t.Fatalf("HasDiscrepancy = %v, want %v", result.HasDiscrepancy, tt.wantDiscrepant)
			}

			if !tt.wantDiscrepant {
				// The no-discrepancy variant carries no figures.
				if result.ReceiptTotal != 0 || result.PersonTotalsSum != 0 || result.Difference != 0 {
					t.Errorf("no-discrepancy result carries figures: %+v", result)
				}
				return
			}

			want := Summarize(tt.receipt).Total
			if math.Abs(result.ReceiptTotal-want) > 1e-9 {
				t.Errorf("ReceiptTotal = %v, want %v", result.ReceiptTotal, want)
			}
			if result.PersonTotalsSum != 0 {
				t.Errorf("PersonTotalsSum = %v, want 0", result.PersonTotalsSum)
			}
			if math.Abs(result.Difference-want) > 1e-9 {
				t.Errorf("Difference = %v, want %v", result.Difference, want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	receipt := &models.Receipt{
		TipPercent: 0.10,
		Items: []models.Item{
			{Name: "Pizza", Quantity: 2, UnitPrice: 1000},
			{Name: "Jugo", Quantity: 1, UnitPrice: 500},
		},
	}

	summary := Summarize(receipt)
	if math.Abs(summary.Subtotal-2500) > 1e-9 {
		t.Errorf("Subtotal = %v, want 2500", summary.Subtotal)
	}
	if math.Abs(summary.TipAmount-250) > 1e-9 {
		t.Errorf("TipAmount = %v, want 250", summary.TipAmount)
	}
	if math.Abs(summary.Total-2750) > 1e-9 {
		t.Errorf("Total = %v, want 2750", summary.Total)
	}
}
