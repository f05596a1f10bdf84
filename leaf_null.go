package jsonschema

// NullValidator accepts exactly one Null event. Grounded on the teacher's
// evaluateType scalar-type check (type.go), specialized to the event model:
// the null-ness check degenerates from "compare a decoded type string" to
// "is the event a Null token" since there is nothing else to inspect.
//
// NullValidator is immortal: the package keeps a single shared instance
// (nullValidator) since it carries no per-schema state.
type NullValidator struct{}

var nullValidator = &NullValidator{}

func (v *NullValidator) Check(ev Event, st *ValidationState) bool {
	st.Pop()
	if ev.Kind != EventNull {
		st.Fail(ErrNotNull, "expected null, got "+ev.JSONType())
		return false
	}
	return true
}
