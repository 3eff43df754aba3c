package models

import (
	"encoding/json"
	"strconv"
)

// FieldValueKind discriminates the variants of a FieldValue.
type FieldValueKind int

const (
	// FieldValueAbsent marks a metadata field with no value at all,
	// which is distinct from an empty string.
	FieldValueAbsent FieldValueKind = iota
	// FieldValueString marks a string-valued field.
	FieldValueString
	// FieldValueInt marks an integer-valued field (slide count).
	FieldValueInt
)

// FieldValue is a tagged union holding a metadata field value that is either
// a string, an integer, or absent. It marshals to a JSON string, number, or
// null respectively so downstream consumers keep exact semantics.
type FieldValue struct {
	Kind FieldValueKind
	Str  string
	Int  int
}

// AbsentValue returns the absent variant.
func AbsentValue() FieldValue {
	return FieldValue{Kind: FieldValueAbsent}
}

// StringValue returns a string-valued FieldValue.
func StringValue(s string) FieldValue {
	return FieldValue{Kind: FieldValueString, Str: s}
}

// IntValue returns an integer-valued FieldValue.
func IntValue(n int) FieldValue {
	return FieldValue{Kind: FieldValueInt, Int: n}
}

// OptionalStringValue maps a nil pointer to the absent variant and anything
// else to a string value.
func OptionalStringValue(s *string) FieldValue {
	if s == nil {
		return AbsentValue()
	}
	return StringValue(*s)
}

// Equal reports whether two field values have the same kind and payload.
func (v FieldValue) Equal(other FieldValue) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case FieldValueString:
		return v.Str == other.Str
	case FieldValueInt:
		return v.Int == other.Int
	default:
		return true
	}
}

// String renders the value for human-readable reports.
func (v FieldValue) String() string {
	switch v.Kind {
	case FieldValueString:
		return v.Str
	case FieldValueInt:
		return strconv.Itoa(v.Int)
	default:
		return "<absent>"
	}
}

// MarshalJSON emits a string, a number, or null depending on the variant.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case FieldValueString:
		return json.Marshal(v.Str)
	case FieldValueInt:
		return json.Marshal(v.Int)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a string, a number, or null.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = AbsentValue()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = StringValue(s)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = IntValue(n)
	return nil
}
