// Package numeric normalizes the backend's tagged numeric encodings.
//
// The persistence/OCR backend sometimes delivers numbers as Mongo
// extended-JSON wrappers ({"$numberInt": "5"} or {"$numberDouble": "5.5"})
// instead of plain JSON numbers. Value accepts either form and resolves to a
// plain float64; anything that matches neither encoding resolves to 0 rather
// than failing. This adapter lives entirely at the wire boundary; the
// distribution engine only ever sees plain numbers.
package numeric

import (
	"encoding/json"
	"strconv"
)

// Kind identifies which encoding a Value was decoded from.
type Kind int

const (
	// KindPlain is an ordinary JSON number (or an unrecognized encoding
	// resolved leniently to zero).
	KindPlain Kind = iota
	// KindIntTagged is a {"$numberInt": "..."} wrapper.
	KindIntTagged
	// KindDoubleTagged is a {"$numberDouble": "..."} wrapper.
	KindDoubleTagged
)

// Value is a number that may arrive plain or tagged. The zero Value is a
// plain 0.
type Value struct {
	kind  Kind
	value float64
}

// FromFloat64 wraps a plain number.
func FromFloat64(f float64) Value {
	return Value{kind: KindPlain, value: f}
}

// Kind reports the encoding the value arrived in.
func (v Value) Kind() Kind { return v.kind }

// Float64 returns the normalized numeric value.
func (v Value) Float64() float64 { return v.value }

// Int returns the normalized value truncated to an integer.
func (v Value) Int() int { return int(v.value) }

type tagged struct {
	Int    *string `json:"$numberInt"`
	Double *string `json:"$numberDouble"`
}

// UnmarshalJSON accepts a plain JSON number or a tagged wrapper. The int tag
// wins when both are present, matching the upstream reader. Malformed
// payloads decode to a plain 0.
func (v *Value) UnmarshalJSON(data []byte) error {
	var plain float64
	if err := json.Unmarshal(data, &plain); err == nil {
		*v = Value{kind: KindPlain, value: plain}
		return nil
	}

	var tag tagged
	if err := json.Unmarshal(data, &tag); err != nil {
		*v = Value{}
		return nil
	}

	switch {
	case tag.Int != nil:
		n, err := strconv.ParseInt(*tag.Int, 10, 64)
		if err != nil {
			*v = Value{kind: KindIntTagged}
			return nil
		}
		*v = Value{kind: KindIntTagged, value: float64(n)}
	case tag.Double != nil:
		f, err := strconv.ParseFloat(*tag.Double, 64)
		if err != nil {
			*v = Value{kind: KindDoubleTagged}
			return nil
		}
		*v = Value{kind: KindDoubleTagged, value: f}
	default:
		*v = Value{}
	}
	return nil
}

// MarshalJSON always writes a plain number; tagged forms are an input quirk,
// never an output format.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value)
}
