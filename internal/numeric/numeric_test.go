package numeric

import (
	"encoding/json"
	"testing"
)

func TestValueUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind Kind
		want     float64
	}{
		{"plain integer", `5`, KindPlain, 5},
		{"plain float", `2.5`, KindPlain, 2.5},
		{"plain zero", `0`, KindPlain, 0},
		{"int tagged", `{"$numberInt": "12"}`, KindIntTagged, 12},
		{"double tagged", `{"$numberDouble": "0.19"}`, KindDoubleTagged, 0.19},
		{"double tagged integer string", `{"$numberDouble": "1500"}`, KindDoubleTagged, 1500},
		{"int tag wins over double", `{"$numberInt": "3", "$numberDouble": "9.9"}`, KindIntTagged, 3},
		{"malformed int resolves to zero", `{"$numberInt": "abc"}`, KindIntTagged, 0},
		{"malformed double resolves to zero", `{"$numberDouble": "xyz"}`, KindDoubleTagged, 0},
		{"unknown object resolves to zero", `{"$numberDecimal": "5"}`, KindPlain, 0},
		{"string resolves to zero", `"12"`, KindPlain, 0},
		{"null resolves to zero", `null`, KindPlain, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			if err := json.Unmarshal([]byte(tt.input), &v); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", tt.input, err)
			}
			if v.Kind() != tt.wantKind {
				t.Errorf("Kind = %v, want %v", v.Kind(), tt.wantKind)
			}
			if v.Float64() != tt.want {
				t.Errorf("Float64 = %v, want %v", v.Float64(), tt.want)
			}
		})
	}
}

func TestValueMarshalIsAlwaysPlain(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`{"$numberInt": "7"}`), &v); err != nil {
		t.Fatal(err)
	}

	out, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "7" {
		t.Errorf("Marshal = %s, want 7", out)
	}

	out, err = json.Marshal(FromFloat64(0.1))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "0.1" {
		t.Errorf("Marshal = %s, want 0.1", out)
	}
}
