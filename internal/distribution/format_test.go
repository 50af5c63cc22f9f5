package distribution

import (
	"testing"

	"github.com/dividircl/backend/internal/models"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "$0"},
		{0.4, "$0"},
		{200, "$200"},
		{999, "$999"},
		{999.5, "$1.000"},
		{1000, "$1.000"},
		{2200, "$2.200"},
		{12990.4, "$12.990"},
		{1234567, "$1.234.567"},
		{-1500, "$-1.500"},
	}

	for _, tt := range tests {
		if got := FormatPrice(tt.value); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatShareText(t *testing.T) {
	receipt := &models.Receipt{
		PlaceName:  "Café Test",
		TipPercent: 0.10,
		People:     []string{"Ana", "Beto"},
		Items: []models.Item{
			{ID: "i1", Name: "Pizza", Quantity: 2, UnitPrice: 1000, Owners: []string{"Ana", "Beto"}},
		},
	}

	want := "*Café Test*\n" +
		"\n" +
		"Subtotal: $2.000\n" +
		"Propina (10%): $200\n" +
		"Total: $2.200\n" +
		"\n" +
		"*Distribución:*\n" +
		"\n" +
		"Ana: $1.000 (+$100): $1.100\n" +
		"Pizza $1.000 (+$100): $1.100\n" +
		"\n" +
		"Beto: $1.000 (+$100): $1.100\n" +
		"Pizza $1.000 (+$100): $1.100\n" +
		"\n" +
		"_Creado en dividir.cl_"

	totals := ComputeTotals(receipt)
	got := FormatShareText(receipt, totals)
	if got != want {
		t.Errorf("share text mismatch:\ngot:\n%s\n\nwant:\n%s", got, want)
	}

	// Byte-identical across repeated calls.
	if again := FormatShareText(receipt, totals); again != got {
		t.Error("share text differs between calls")
	}
	if again := FormatShareText(receipt, ComputeTotals(receipt)); again != got {
		t.Error("share text differs with recomputed totals")
	}
}

func TestFormatShareText_SharedPool(t *testing.T) {
	receipt := &models.Receipt{
		PlaceName:  "Bar Uno",
		TipPercent: 0,
		People:     []string{"Ana", "Beto"},
		Items: []models.Item{
			{ID: "i1", Name: "Empanada", Quantity: 1, UnitPrice: 3000, Owners: []string{"Ana"}},
			{ID: "i2", Name: "Pisco Sour", Quantity: 2, UnitPrice: 4500},
		},
	}

	want := "*Bar Uno*\n" +
		"\n" +
		"Subtotal: $12.000\n" +
		"Propina (0%): $0\n" +
		"Total: $12.000\n" +
		"\n" +
		"*Distribución:*\n" +
		"\n" +
		"Ana: $7.500 (+$0): $7.500\n" +
		"Empanada $3.000 (+$0): $3.000\n" +
		"Items compartidos: $4.500 + $0 propina = $4.500\n" +
		"\n" +
		"Beto: $4.500 (+$0): $4.500\n" +
		"Items compartidos: $4.500 + $0 propina = $4.500\n" +
		"\n" +
		"_Creado en dividir.cl_"

	got := FormatShareText(receipt, ComputeTotals(receipt))
	if got != want {
		t.Errorf("share text mismatch:\ngot:\n%s\n\nwant:\n%s", got, want)
	}
}

func TestFormatShareText_SameNamedItemsPrintPerLine(t *testing.T) {
	// Amounts merge in the accumulator but each receipt line prints.
	receipt := &models.Receipt{
		PlaceName:  "La Fuente",
		TipPercent: 0,
		People:     []string{"Ana"},
		Items: []models.Item{
			{ID: "i1", Name: "Cerveza", Quantity: 1, UnitPrice: 3500, Owners: []string{"Ana"}},
			{ID: "i2", Name: "Cerveza", Quantity: 1, UnitPrice: 3500, Owners: []string{"Ana"}},
		},
	}

	want := "*La Fuente*\n" +
		"\n" +
		"Subtotal: $7.000\n" +
		"Propina (0%): $0\n" +
		"Total: $7.000\n" +
		"\n" +
		"*Distribución:*\n" +
		"\n" +
		"Ana: $7.000 (+$0): $7.000\n" +
		"Cerveza $3.500 (+$0): $3.500\n" +
		"Cerveza $3.500 (+$0): $3.500\n" +
		"\n" +
		"_Creado en dividir.cl_"

	got := FormatShareText(receipt, ComputeTotals(receipt))
	if got != want {
		t.Errorf("share text mismatch:\ngot:\n%s\n\nwant:\n%s", got, want)
	}
}
