package jsonschema

// NumberValidator accepts a Number event and checks minimum/maximum
// (inclusive or exclusive), multipleOf, and (for integer-only schemas) that
// the parsed value has no fractional part.
//
// Grounded on the teacher's evaluateMinimum/evaluateMaximum/evaluateMultipleOf
// (minimum.go, maximum.go, multipleOf.go), adapted from "compare a decoded
// *Rat against the schema" to "parse the event's borrowed text into a
// Number and compare".
type NumberValidator struct {
	Minimum          *Number
	ExclusiveMinimum bool
	Maximum          *Number
	ExclusiveMaximum bool
	MultipleOf       *Number
	IntegerOnly      bool
}

func (v *NumberValidator) Check(ev Event, st *ValidationState) bool {
	st.Pop()
	if ev.Kind != EventNumber {
		st.Fail(ErrNotNumber, "expected number, got "+ev.JSONType())
		return false
	}

	n := NewNumber(ev.Text)
	if n == nil {
		st.Fail(ErrNotNumber, "malformed number literal")
		return false
	}

	if v.IntegerOnly && !n.IsInteger() {
		st.Fail(ErrNotIntegerNumber, "expected an integer")
		return false
	}

	if v.Minimum != nil {
		cmp := n.Cmp(v.Minimum)
		if cmp < 0 || (v.ExclusiveMinimum && cmp == 0) {
			st.Fail(ErrNumberTooSmall, n.String()+" is below the minimum "+v.Minimum.String())
			return false
		}
	}

	if v.Maximum != nil {
		cmp := n.Cmp(v.Maximum)
		if cmp > 0 || (v.ExclusiveMaximum && cmp == 0) {
			st.Fail(ErrNumberTooLarge, n.String()+" is above the maximum "+v.Maximum.String())
			return false
		}
	}

	if v.MultipleOf != nil && !n.MultipleOf(v.MultipleOf) {
		st.Fail(ErrNumberNotMultiple, n.String()+" is not a multiple of "+v.MultipleOf.String())
		return false
	}

	return true
}
