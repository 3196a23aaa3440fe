package luqyfile

import "strconv"

// ValueKind discriminates the payload carried by a Value.
type ValueKind int

const (
	KindMissing ValueKind = iota
	KindFloat
	KindString
)

// Value is one header cell: a float quantity, a categorical string, or
// explicitly missing. Missing is distinct from NaN so a genuine NaN reading
// can never be mistaken for an absent cell.
type Value struct {
	kind ValueKind
	num  float64
	str  string
}

// Missing returns the absent-cell marker.
func Missing() Value { return Value{} }

// FloatValue wraps a numeric quantity.
func FloatValue(v float64) Value { return Value{kind: KindFloat, num: v} }

// StringValue wraps a categorical value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// Kind reports which payload the value carries.
func (v Value) Kind() ValueKind { return v.kind }

// IsMissing reports whether the cell had no usable value.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Float returns the numeric payload when present.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindFloat
}

// Text returns the string payload when present.
func (v Value) Text() (string, bool) {
	return v.str, v.kind == KindString
}

// String renders the value for display and logging.
func (v Value) String() string {
	switch v.kind {
	case KindFloat:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return v.str
	default:
		return ""
	}
}
