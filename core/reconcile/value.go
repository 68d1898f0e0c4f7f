package reconcile

import "encoding/json"

// Value is a single field of a row. The zero Value is absent (SQL NULL or a
// field the source did not provide).
type Value struct {
	// String is the textual content. Meaningless when Valid is false.
	String string
	// Valid is false when the value is absent.
	Valid bool
}

// Text returns a present value holding s.
func Text(s string) Value {
	return Value{String: s, Valid: true}
}

// Null returns an absent value.
func Null() Value {
	return Value{}
}

// IsBlank reports whether the value is absent or the empty string.
func (v Value) IsBlank() bool {
	return !v.Valid || v.String == ""
}

// MarshalJSON encodes absent values as null and present values as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.String)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Null()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*v = Text(s)
	return nil
}

// Equal compares two field values.
//
// Absent and empty are the same value. When both sides carry text the
// comparison is byte-for-byte: no trimming, case folding or collation, so a
// whitespace-only edit is reported as a change.
func Equal(a, b Value) bool {
	blankA := a.IsBlank()
	blankB := b.IsBlank()
	if blankA || blankB {
		return blankA && blankB
	}
	return a.String == b.String
}
