package table

import "fmt"

// ValueKind defines the storage type for cell values.
type ValueKind string

const (
	KindInteger ValueKind = "integer"
	KindText    ValueKind = "text"
	KindMissing ValueKind = "missing"
)

// Value is a typed cell value. The kind is decided once per cell; a missing
// value is distinct from empty text.
type Value struct {
	Kind    ValueKind `json:"kind"`
	IntVal  *int64    `json:"int_val,omitempty"`
	TextVal *string   `json:"text_val,omitempty"`
}

// NewIntValue creates an integer value.
func NewIntValue(n int64) Value {
	return Value{Kind: KindInteger, IntVal: &n}
}

// NewTextValue creates a text value. Text may be empty; emptiness is a
// standardization concern, not a construction one.
func NewTextValue(s string) Value {
	return Value{Kind: KindText, TextVal: &s}
}

// NewMissingValue creates the distinguished null marker.
func NewMissingValue() Value {
	return Value{Kind: KindMissing}
}

// IsMissing reports whether the value is the null marker.
func (v Value) IsMissing() bool { return v.Kind == KindMissing }

// Int returns the integer payload when the value is an integer.
func (v Value) Int() (int64, bool) {
	if v.Kind == KindInteger && v.IntVal != nil {
		return *v.IntVal, true
	}
	return 0, false
}

// Text returns the text payload when the value is text.
func (v Value) Text() (string, bool) {
	if v.Kind == KindText && v.TextVal != nil {
		return *v.TextVal, true
	}
	return "", false
}

// String returns a display representation of the value.
func (v Value) String() string {
	switch v.Kind {
	case KindInteger:
		if v.IntVal != nil {
			return fmt.Sprintf("%d", *v.IntVal)
		}
	case KindText:
		if v.TextVal != nil {
			return *v.TextVal
		}
	case KindMissing:
		return "<missing>"
	}
	return "<invalid>"
}
