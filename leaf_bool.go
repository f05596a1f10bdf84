package jsonschema

// BooleanValidator accepts any Bool event. A schema that pins the value to
// a single boolean constant goes through EnumValidator instead (enum.go),
// which already covers every scalar kind including booleans.
type BooleanValidator struct{}

func (v *BooleanValidator) Check(ev Event, st *ValidationState) bool {
	st.Pop()
	if ev.Kind != EventBool {
		st.Fail(ErrNotBoolean, "expected boolean, got "+ev.JSONType())
		return false
	}
	return true
}
